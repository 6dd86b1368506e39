package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	mcpadapter "github.com/beltic/credcheck/internal/adapters/inbound/mcp"
	"github.com/beltic/credcheck/internal/adapters/outbound/config"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the credcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start credcheck MCP server (stdio)",
		Long:  "Start the credcheck MCP server using stdio transport. This allows AI coding assistants to validate credentials and inspect the sweep configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			configPath, err := p.configFile(opts)
			if err != nil {
				return err
			}

			s := mcpadapter.NewCredcheckMCPServer(mcpadapter.Options{
				FS:         p.fs,
				Config:     config.New(afero.NewOsFs()),
				ConfigPath: configPath,
				Version:    version,
				Logger:     p.logger,
			})
			return server.ServeStdio(s)
		},
	}
}
