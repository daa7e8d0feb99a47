package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/switchboard/internal/cli"
	"github.com/aretw0/switchboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "switchboard",
	Short: "Switchboard is an MCP tool server for CRM and filesystem access",
	Long: `Switchboard exposes a fixed catalog of CRM and filesystem tools to MCP
clients over stdio or SSE, backed by a local SQLite database.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: switchboard.yaml when present)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (overrides the configuration)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the configuration)")
}

// loadConfig resolves the configuration file, then lays the persistent
// flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cli.LoadConfig(path, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("db") {
		cfg.Store.Path, _ = cmd.Flags().GetString("db")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
