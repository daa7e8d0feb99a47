package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/switchboard/internal/presentation/catalog"
	"github.com/aretw0/switchboard/internal/tools"
)

// gen-catalog regenerates the tool reference document from the compiled
// catalog, so docs never drift from what the server actually serves.
func main() {
	target := "docs/TOOLS.md"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating tool reference in: %s\n", target)

	doc := catalog.GenerateMarkdown(tools.Definitions())
	if err := os.WriteFile(target, []byte(doc), 0644); err != nil {
		panic(err)
	}

	fmt.Println("Done. Verify contents in", target)
}
