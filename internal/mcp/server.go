// Package mcp provides a Model Context Protocol server for pks. It exposes
// the initializer pipeline as MCP tools so any MCP-capable agent can
// scaffold and inspect projects.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pksworks/pks/internal/initializer"
)

// NewServer creates an MCP server with all pks tools registered.
func NewServer(version string, svc *initializer.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pks",
		Version: version,
	}, nil)
	registerTools(server, svc)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that create files.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all pks tools to the server.
func registerTools(server *mcp.Server, svc *initializer.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "init",
		Description: "Initialize a new project from a template. Runs the full initializer pipeline and returns the run summary.",
		Annotations: writeAnnotations(),
	}, handleInit(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "templates",
		Description: "List available project templates, including built-ins and any templates installed on disk.",
		Annotations: readOnlyAnnotations(),
	}, handleTemplates(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_name",
		Description: "Check whether a project name is valid (length, reserved names, filesystem characters).",
		Annotations: readOnlyAnnotations(),
	}, handleValidateName())
}
