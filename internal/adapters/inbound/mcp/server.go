package mcp

import (
	"github.com/go-kit/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/beltic/credcheck/internal/domain"
)

// Options configures the MCP server.
type Options struct {
	// FS is rooted at the project; schema and credential paths are relative to it.
	FS afero.Fs
	// Config loads the sweep configuration from ConfigPath on every request.
	Config     domain.ConfigLoader
	ConfigPath string
	Version    string
	Logger     log.Logger
}

// NewCredcheckMCPServer creates a new MCP server with all credcheck tools and
// resources registered.
func NewCredcheckMCPServer(opts Options) *server.MCPServer {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}

	s := server.NewMCPServer(
		"credcheck",
		opts.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, opts)
	registerResources(s, opts)

	return s
}
