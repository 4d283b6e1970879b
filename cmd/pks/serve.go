// Package main provides the entry point for the pks CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	pksmcp "github.com/pksworks/pks/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"mcp"},
		Short:   "Run as MCP server (stdio transport)",
		Long: `Run pks as a Model Context Protocol (MCP) server over stdio.

This exposes project initialization as MCP tools that any MCP-capable
agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "pks": {
        "command": "pks",
        "args": ["serve"]
      }
    }
  }

Available tools: init, templates, validate_name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := pksmcp.NewServer(buildVersion(), newService())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
