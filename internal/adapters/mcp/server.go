// Package mcp exposes the query surface as MCP tools over stdio, so
// editor agents can ask for definitions without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tyfind/tyfind/internal/ports"
	"github.com/tyfind/tyfind/internal/version"
)

// Server manages the MCP server lifecycle.
type Server struct {
	finder ports.Finder
	mcp    *server.MCPServer
}

// NewServer builds a stdio MCP server with all query tools registered.
func NewServer(finder ports.Finder) *Server {
	mcpServer := server.NewMCPServer(
		"tyfind",
		version.Version,
		server.WithToolCapabilities(true),
	)

	AddDefinitionTool(mcpServer, finder)
	AddSymbolTool(mcpServer, finder)
	AddHoverTool(mcpServer, finder)
	AddReferencesTool(mcpServer, finder)
	AddWorkspaceSymbolsTool(mcpServer, finder)
	AddDocumentSymbolsTool(mcpServer, finder)

	return &Server{finder: finder, mcp: mcpServer}
}

// Serve blocks on stdio until the client disconnects or a shutdown
// signal arrives.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("mcp server: %w", err)
		}
	}()

	select {
	case <-sigCh:
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
