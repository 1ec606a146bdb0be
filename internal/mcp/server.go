// ABOUTME: MCP server setup for the health document store.
// ABOUTME: Wraps the MCP server with resolver and store access.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/vitalog/internal/resolver"
	"github.com/harperreed/vitalog/internal/store"
)

// Server wraps the MCP server with health data access.
type Server struct {
	mcpServer *mcp.Server
	res       *resolver.Resolver
	store     store.Store
}

// NewServer creates a new MCP server over the given store.
func NewServer(st store.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vitalog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		res:       resolver.New(st),
		store:     st,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
