package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/beltic/credcheck/internal/adapters/outbound/history"
)

const (
	configURI  = "credcheck://config"
	historyURI = "credcheck://history"
)

// registerResources registers all credcheck MCP resources on the given server.
func registerResources(s *server.MCPServer, opts Options) {
	// 1. credcheck://config - effective sweep configuration
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Sweep Configuration",
			mcplib.WithResourceDescription("The suites credcheck validates, after defaults are applied"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(opts),
	)

	// 2. credcheck://history - recorded runs
	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Validation History",
			mcplib.WithResourceDescription("Pass and fail counts of runs recorded with --record"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(opts),
	)
}

func handleConfigResource(opts Options) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := opts.Config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonContents(configURI, cfg)
	}
}

func handleHistoryResource(opts Options) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New(opts.FS).Load()
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonContents(historyURI, entries)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
