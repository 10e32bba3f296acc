package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/tripwizard/internal/logging"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const summaryURI = "tripwizard://summary"

// Aggregator is the part of the trip aggregator the MCP server needs.
type Aggregator interface {
	LoadAll(ctx context.Context)
	GetAll() domain.Snapshot
}

// Server exposes a read-only view of a wizard session as an MCP Server.
type Server struct {
	aggregator Aggregator
	catalog    ports.Catalog
	logger     *slog.Logger
	mcpServer  *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithCatalog adds the catalog listing tools.
func WithCatalog(c ports.Catalog) Option {
	return func(s *Server) {
		s.catalog = c
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(agg Aggregator, version string, opts ...Option) *Server {
	s := &Server{
		aggregator: agg,
		logger:     logging.NewNop(),
		mcpServer:  server.NewMCPServer("tripwizard-mcp", version),
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

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: trip_summary
	summaryTool := mcp.NewTool("trip_summary",
		mcp.WithDescription("Reload the wizard session and return the trip summary with its cost breakdown."),
		mcp.WithOutputSchema[domain.Snapshot](),
	)
	s.mcpServer.AddTool(summaryTool, mcp.NewStructuredToolHandler(s.handleSummary))

	if s.catalog == nil {
		return
	}

	// TOOL: list_destinations
	s.mcpServer.AddTool(mcp.NewTool("list_destinations",
		mcp.WithDescription("List the destinations the wizard offers."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := s.catalog.Destinations(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list destinations failed: %v", err)), nil
		}
		return jsonResult(list)
	})

	// TOOL: list_guides
	s.mcpServer.AddTool(mcp.NewTool("list_guides",
		mcp.WithDescription("List the local guides the wizard offers."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := s.catalog.Guides(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list guides failed: %v", err)), nil
		}
		return jsonResult(list)
	})
}

func (s *Server) handleSummary(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Snapshot, error) {
	s.aggregator.LoadAll(ctx)
	snap := s.aggregator.GetAll()
	s.logger.Debug("MCP trip_summary served", "costs_ok", snap.Costs.OK())
	return snap, nil
}

func (s *Server) registerResources() {
	// EXPOSE: tripwizard://summary
	s.mcpServer.AddResource(mcp.NewResource(summaryURI, "Trip Summary",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := s.summaryJSON(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      summaryURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}

func (s *Server) summaryJSON(ctx context.Context) (string, error) {
	s.aggregator.LoadAll(ctx)
	data, err := json.Marshal(s.aggregator.GetAll())
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	return string(data), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
