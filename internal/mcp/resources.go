// ABOUTME: MCP resource implementations for the health document.
// ABOUTME: Provides health://records and health://sleep read-only resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// health://records - the full health document
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "health://records",
		Name:        "Health Records",
		Description: "The full health document: sleep, insulin, medication, and exercise records",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	// health://sleep - the weekly sleep map only
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "health://sleep",
		Name:        "Sleep Week",
		Description: "Hours slept per weekday",
		MIMEType:    "application/json",
	}, s.handleSleepResource)
}

// Resource handlers

func (s *Server) handleRecordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc := s.store.Load()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "health://records",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

func (s *Server) handleSleepResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc := s.store.Load()

	data, err := json.MarshalIndent(doc.Sleep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sleep data: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "health://sleep",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
