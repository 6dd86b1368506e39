package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/beltic/credcheck/internal/adapters/outbound/engine"
	"github.com/beltic/credcheck/internal/application"
	"github.com/beltic/credcheck/internal/domain"
)

// registerTools registers all credcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, opts Options) {
	// 1. credcheck_validate
	s.AddTool(
		mcplib.NewTool("credcheck_validate",
			mcplib.WithDescription("Run the configured validation sweeps and return the run summary as JSON"),
			mcplib.WithString("suite", mcplib.Description("Only run the suite with this label")),
		),
		handleValidate(opts),
	)

	// 2. credcheck_validate_file
	s.AddTool(
		mcplib.NewTool("credcheck_validate_file",
			mcplib.WithDescription("Validate one credential against one schema and return every violation"),
			mcplib.WithString("schema",
				mcplib.Required(),
				mcplib.Description("Schema path relative to the project root"),
			),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Credential path relative to the project root"),
			),
		),
		handleValidateFile(opts),
	)

	// 3. credcheck_strip_comments
	s.AddTool(
		mcplib.NewTool("credcheck_strip_comments",
			mcplib.WithDescription("Remove top-level $comment keys from JSON fixtures matching a glob pattern"),
			mcplib.WithString("pattern", mcplib.Description("Glob relative to the project root (default: "+application.DefaultStripPattern+")")),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would change without writing files")),
		),
		handleStripComments(opts),
	)
}

func newSweepService(opts Options) *application.SweepService {
	return application.NewSweepService(opts.FS, engine.New(opts.FS), nil, opts.Logger)
}

func handleValidate(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := opts.Config.Load(opts.ConfigPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		sweeps := newSweepService(opts)
		if label := request.GetString("suite", ""); label != "" {
			var selected []domain.SweepSpec
			for _, spec := range cfg.Suites {
				if spec = sweeps.Labelled(spec); spec.Label == label {
					selected = append(selected, spec)
				}
			}
			if len(selected) == 0 {
				return errorResult(fmt.Sprintf("no suite labelled %q", label)), nil
			}
			cfg.Suites = selected
		}

		svc := application.NewValidateService(sweeps, nil, nil, opts.Logger)
		summary, err := svc.Run(ctx, cfg, ".")
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

func handleValidateFile(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		schema, err := request.RequireString("schema")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		exp, err := application.NewExplainService(newSweepService(opts)).Explain(schema, file)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(exp)
	}
}

func handleStripComments(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pattern := request.GetString("pattern", application.DefaultStripPattern)
		dryRun := request.GetBool("dry_run", false)

		report, err := application.NewStripService(opts.FS, opts.Logger).Strip(pattern, dryRun)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
