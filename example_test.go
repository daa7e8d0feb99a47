package switchboard_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/pkg/adapters/memory"
)

// ExampleNew demonstrates dispatching a tool call against injected
// in-memory providers, without touching the host filesystem or disk.
// This is useful for testing and embedded scenarios.
func ExampleNew() {
	// 1. Build the providers. The map-backed filesystem registers
	// parent directories automatically.
	fsys := memory.NewFS()
	fsys.AddFile("docs/readme.md", []byte("# switchboard"))
	fsys.AddDir("docs/archive")

	// 2. Initialize the Server with the custom providers.
	// No database path needed ("") because we are providing a store.
	srv, err := switchboard.New("",
		switchboard.WithStore(memory.NewStore()),
		switchboard.WithFileSystem(fsys),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer srv.Close()

	// 3. Dispatch a call the way a transport would.
	res, err := srv.Dispatch(context.Background(), "list_files", map[string]any{
		"directory_path": "docs",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Text)
	// Output:
	// Contents of 'docs':
	//
	// [DIR] archive/
	// [FILE] readme.md
}
