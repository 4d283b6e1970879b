package units

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pksworks/pks/internal/initializer"
	"github.com/pksworks/pks/internal/template"
)

// agentGuide is the AGENTS.md content, rendered through placeholder
// substitution like any other template text.
const agentGuide = `# {{ProjectName}} agent guide

{{Description}}

This project was generated from the {{Template}} template on {{Date}}.

## MCP

An MCP server configuration is provided in .mcp.json. Agent environments
that honor it can drive the pks toolchain directly.

## Conventions

- Build with ` + "`dotnet build`" + `; test with ` + "`dotnet test`" + `.
- Keep generated files out of version control (see .gitignore).
`

// AgentUnit wires the project for MCP-capable coding agents: an .mcp.json
// server entry plus an AGENTS.md orientation file. Later units can detect
// the wiring through run metadata.
type AgentUnit struct{}

// NewAgentUnit creates the agent unit.
func NewAgentUnit() *AgentUnit {
	return &AgentUnit{}
}

func (u *AgentUnit) ID() string   { return "agent" }
func (u *AgentUnit) Name() string { return "Agent wiring" }
func (u *AgentUnit) Description() string {
	return "Generates MCP server configuration and an agent guide"
}
func (u *AgentUnit) Order() int { return 65 }

// ShouldApply gates on the agentic flag.
func (u *AgentUnit) ShouldApply(_ context.Context, run *initializer.Context) (bool, error) {
	return run.Enabled("agentic"), nil
}

// mcpConfig is the .mcp.json document shape.
type mcpConfig struct {
	Servers map[string]mcpServer `json:"mcpServers"`
}

type mcpServer struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

func (u *AgentUnit) Execute(_ context.Context, run *initializer.Context) (*initializer.Result, error) {
	cfg := mcpConfig{
		Servers: map[string]mcpServer{
			"pks": {Command: "pks", Args: []string{"serve"}},
		},
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding mcp config: %w", err)
	}

	configPath := filepath.Join(run.TargetDirectory, ".mcp.json")
	if err := os.WriteFile(configPath, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing .mcp.json: %w", err)
	}

	guidePath := filepath.Join(run.TargetDirectory, "AGENTS.md")
	guide := template.Substitute(agentGuide, run.Vars())
	if err := os.WriteFile(guidePath, []byte(guide), 0o644); err != nil {
		return nil, fmt.Errorf("writing AGENTS.md: %w", err)
	}

	run.SetMetadata(MetaAgentEnabled, true)
	run.SetMetadata(MetaAgentConfig, configPath)

	res := initializer.NewSuccess("generated agent wiring")
	res.AddFile(configPath)
	res.AddFile(guidePath)
	return res, nil
}

func (u *AgentUnit) Options() []initializer.Option {
	return []initializer.Option{
		{
			Name:        "agentic",
			Description: "Generate MCP configuration for agent environments",
			Type:        initializer.OptionFlag,
			Default:     false,
		},
	}
}
