// Package mcp exposes a Dispatcher as a Model Context Protocol server
// over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/pkg/ports"
)

// CatalogURI identifies the resource mirroring the tool catalog.
const CatalogURI = "switchboard://catalog"

// Server wraps a Dispatcher and speaks the Model Context Protocol.
type Server struct {
	dispatcher ports.Dispatcher
	logger     *slog.Logger
	mcpServer  *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for transport-level events. Logs go to
// the logger's own writer, never to stdout, so stdio framing stays clean.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates an MCP server exposing every tool the dispatcher
// knows, plus the catalog resource.
func NewServer(dispatcher ports.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: dispatcher,
		logger:     slog.Default(),
		mcpServer:  server.NewMCPServer("switchboard", strings.TrimSpace(switchboard.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// SSEOption configures the SSE transport.
type SSEOption func(*sseConfig)

type sseConfig struct {
	baseURL string
	ops     http.Handler
}

// WithSSEBaseURL overrides the base URL advertised to SSE clients.
func WithSSEBaseURL(baseURL string) SSEOption {
	return func(c *sseConfig) { c.baseURL = baseURL }
}

// WithOpsHandler mounts a handler for every path the MCP transport does
// not own, such as health and metrics endpoints.
func WithOpsHandler(h http.Handler) SSEOption {
	return func(c *sseConfig) { c.ops = h }
}

// ServeSSE starts the server on the given port using SSE and blocks
// until the context is canceled or the listener fails. Shutdown drains
// in-flight requests for up to five seconds.
func (s *Server) ServeSSE(ctx context.Context, port int, opts ...SSEOption) error {
	addr := fmt.Sprintf(":%d", port)
	cfg := sseConfig{baseURL: fmt.Sprintf("http://localhost:%d", port)}
	for _, opt := range opts {
		opt(&cfg)
	}

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(cfg.baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", s.cors(sseServer.SSEHandler()))
	mux.Handle("/message", s.cors(sseServer.MessageHandler()))
	if cfg.ops != nil {
		mux.Handle("/", cfg.ops)
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr, "base_url", cfg.baseURL)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("cors middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, def := range s.dispatcher.Tools() {
		raw, _ := json.Marshal(def.Schema)
		tool := mcp.NewToolWithRawSchema(def.Name, def.Description, raw)
		s.mcpServer.AddTool(tool, toolHandler(s.dispatcher, def.Name))
	}
}

// toolHandler adapts one dispatch to the MCP tool contract. Tool
// failures become error-flagged content blocks; only protocol faults
// surface as Go errors and reach the client as JSON-RPC failures.
func toolHandler(d ports.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := d.Dispatch(ctx, name, request.GetArguments())
		if err != nil {
			return nil, err
		}
		if res.IsError {
			return mcp.NewToolResultError(res.Text), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Tool Catalog",
		mcp.WithMIMEType("application/json"),
	), s.readCatalog)
}

func (s *Server) readCatalog(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.MarshalIndent(s.dispatcher.Tools(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
