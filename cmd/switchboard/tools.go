package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/switchboard/internal/presentation/catalog"
	"github.com/aretw0/switchboard/internal/presentation/tui"
	"github.com/aretw0/switchboard/internal/tools"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tool catalog",
	Long:  `Prints every tool the server exposes, with its arguments, in catalog order.`,
	Run: func(cmd *cobra.Command, args []string) {
		doc := catalog.GenerateMarkdown(tools.Definitions())

		out, err := tui.NewRenderer()(doc)
		if err != nil {
			// Fall back to the raw document rather than failing the listing.
			out = doc
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
