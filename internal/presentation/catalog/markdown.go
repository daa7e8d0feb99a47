// Package catalog renders the tool table as human-readable documents.
package catalog

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/schema"
)

// GenerateMarkdown produces a markdown document from a list of tool
// definitions: one section per tool, arguments as a table. The output
// feeds both the `tools` command (through glamour) and the generated
// reference document.
func GenerateMarkdown(defs []domain.ToolDefinition) string {
	var sb strings.Builder
	sb.WriteString("# Switchboard Tools\n\n")

	for _, def := range defs {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", def.Name, def.Description)

		if len(def.Schema) == 0 {
			sb.WriteString("No arguments.\n\n")
			continue
		}

		sb.WriteString("| Argument | Type | Required | Default | Description |\n")
		sb.WriteString("|---|---|---|---|---|\n")
		for _, f := range def.Schema {
			required := "no"
			if f.Required {
				required = "yes"
			}
			desc := f.Description
			if len(f.Allowed) > 0 {
				desc = fmt.Sprintf("%s (one of: %s)", desc, strings.Join(f.Allowed, ", "))
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
				f.Key, f.Kind, required, defaultCell(f), desc)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// defaultCell renders the declared default, leaving the cell empty when
// the field has none so zero substitution stays implicit.
func defaultCell(f schema.Field) string {
	if f.Default == nil {
		return ""
	}
	return fmt.Sprintf("%v", f.Default)
}
