package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/switchboard/internal/cli"
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a single tool and print its result",
	Long: `Dispatches one tool call against the configured database, outside any
MCP session. Useful for smoke tests and scripted maintenance.

Arguments are passed as a JSON object:

  switchboard call search_customers --args '{"search_term": "acme"}'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetString("args")

		var toolArgs map[string]any
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &toolArgs); err != nil {
				fmt.Printf("Error parsing --args JSON: %v\n", err)
				os.Exit(1)
			}
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		rt, err := cli.Build(cfg, cli.BuildOptions{})
		if err != nil {
			fmt.Printf("Error initializing switchboard: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()

		res, err := rt.Server.Dispatch(context.Background(), args[0], toolArgs)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(res.Text)
		if res.IsError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().String("args", "", "Tool arguments as a JSON object")
}
