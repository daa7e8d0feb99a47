package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/switchboard/internal/cli"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample CRM data",
	Long: `Inserts the built-in demonstration customers into the configured database.
Safe to repeat: customers whose email already exists are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
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

		res, err := rt.Server.Dispatch(context.Background(), "populate_sample_data", nil)
		if err != nil {
			fmt.Printf("Error seeding database: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(res.Text)
		if res.IsError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
