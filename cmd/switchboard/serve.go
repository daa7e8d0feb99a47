package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/switchboard"
	httpadapter "github.com/aretw0/switchboard/internal/adapters/http"
	"github.com/aretw0/switchboard/internal/cli"
	"github.com/aretw0/switchboard/internal/presentation/tui"
	"github.com/aretw0/switchboard/pkg/adapters/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the Switchboard tool catalog as an MCP server.
This allows AI agents (like Claude Desktop) to call the CRM and filesystem tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		if cmd.Flags().Changed("transport") {
			cfg.Transport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("port") {
			cfg.SSE.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("base-url") {
			cfg.SSE.BaseURL, _ = cmd.Flags().GetString("base-url")
		}
		if cmd.Flags().Changed("metrics") {
			cfg.SSE.Metrics, _ = cmd.Flags().GetBool("metrics")
		}

		// Metrics need a scrape endpoint, which only the SSE mode has.
		metricsOn := cfg.Transport == "sse" && cfg.SSE.Metrics

		rt, err := cli.Build(cfg, cli.BuildOptions{Metrics: metricsOn})
		if err != nil {
			fmt.Printf("Error initializing switchboard: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()

		if term.IsTerminal(int(os.Stderr.Fd())) {
			tui.PrintBanner(strings.TrimSpace(switchboard.Version))
		}

		srv := mcp.NewServer(rt.Server, mcp.WithLogger(rt.Logger))

		switch cfg.Transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			rt.Logger.Info("Starting Switchboard MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				rt.Logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			rt.Logger.Info("Starting Switchboard MCP Server (SSE)", "port", cfg.SSE.Port)

			sigCtx := cli.NewSignalContext(context.Background())
			defer sigCtx.Cancel()

			sseOpts := []mcp.SSEOption{
				mcp.WithOpsHandler(httpadapter.NewHandler(opsOptions(rt))),
			}
			if cfg.SSE.BaseURL != "" {
				sseOpts = append(sseOpts, mcp.WithSSEBaseURL(cfg.SSE.BaseURL))
			}

			if err := srv.ServeSSE(sigCtx, cfg.SSE.Port, sseOpts...); err != nil {
				rt.Logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
			if sig := sigCtx.Signal(); sig != nil {
				rt.Logger.Info("MCP Server stopped gracefully", "signal", sig.String())
			} else {
				rt.Logger.Info("MCP Server stopped gracefully")
			}
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", cfg.Transport)
		}
	},
}

// opsOptions exposes the metrics handler to the health router when the
// factory enabled instrumentation.
func opsOptions(rt *cli.Runtime) httpadapter.Options {
	opts := httpadapter.Options{}
	if rt.Metrics != nil {
		opts.Metrics = rt.Metrics.Handler()
	}
	return opts
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "", "Transport protocol to use: 'stdio' or 'sse'")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (only for SSE)")
	serveCmd.Flags().String("base-url", "", "Base URL advertised to SSE clients")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics under /metrics (only for SSE)")
}
