package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pksworks/pks/internal/initializer"
)

// --- Init tool ---

// InitInput is the input for the init tool.
type InitInput struct {
	Name          string `json:"name"                    jsonschema:"project name"`
	Template      string `json:"template,omitempty"      jsonschema:"template identifier (default console)"`
	Target        string `json:"target,omitempty"        jsonschema:"target directory (default ./<name>)"`
	Description   string `json:"description,omitempty"   jsonschema:"project description used in templates"`
	Force         bool   `json:"force,omitempty"         jsonschema:"initialize into a non-empty directory"`
	Devcontainer  bool   `json:"devcontainer,omitempty"  jsonschema:"generate a devcontainer configuration"`
	GitHubActions bool   `json:"github_actions,omitempty" jsonschema:"generate a GitHub Actions workflow"`
	Agentic       bool   `json:"agentic,omitempty"       jsonschema:"generate MCP configuration for agents"`
}

// UnitOutcome is one unit result in the init output.
type UnitOutcome struct {
	Success  bool     `json:"success"            jsonschema:"whether the unit succeeded"`
	Message  string   `json:"message,omitempty"  jsonschema:"unit summary message"`
	Files    []string `json:"files,omitempty"    jsonschema:"files the unit created or modified"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"unit warnings"`
	Errors   []string `json:"errors,omitempty"   jsonschema:"unit errors"`
}

// InitOutput is the output for the init tool.
type InitOutput struct {
	RunID        string        `json:"run_id"                  jsonschema:"unique run identifier"`
	Success      bool          `json:"success"                 jsonschema:"whether the whole run succeeded"`
	Error        string        `json:"error,omitempty"         jsonschema:"top-level error when the run failed before units executed"`
	Target       string        `json:"target"                  jsonschema:"target directory"`
	FilesCreated int           `json:"files_created"           jsonschema:"distinct files created"`
	Warnings     int           `json:"warnings"                jsonschema:"warning count across units"`
	Errors       int           `json:"errors"                  jsonschema:"error count across units"`
	DurationMS   int64         `json:"duration_ms"             jsonschema:"run duration in milliseconds"`
	Results      []UnitOutcome `json:"results,omitempty"       jsonschema:"per-unit outcomes in execution order"`
	Planning     []string      `json:"planning_warnings,omitempty" jsonschema:"units excluded during planning"`
}

func handleInit(svc *initializer.Service) mcp.ToolHandlerFor[InitInput, InitOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InitInput) (*mcp.CallToolResult, InitOutput, error) {
		template := input.Template
		if template == "" {
			template = "console"
		}
		target := input.Target
		if target == "" {
			target = "./" + input.Name
		}

		options := map[string]any{"non-interactive": true}
		if input.Description != "" {
			options["description"] = input.Description
		}
		if input.Devcontainer {
			options["devcontainer"] = true
		}
		if input.GitHubActions {
			options["github-actions"] = true
		}
		if input.Agentic {
			options["agentic"] = true
		}

		run := initializer.NewContext(input.Name, template, target, input.Force, options)
		sum := svc.InitializeProject(ctx, run)

		out := InitOutput{
			RunID:        sum.RunID,
			Success:      sum.Success,
			Error:        sum.ErrorMessage,
			Target:       sum.TargetDirectory,
			FilesCreated: sum.FilesCreated(),
			Warnings:     sum.WarningsCount(),
			Errors:       sum.ErrorsCount(),
			DurationMS:   sum.Duration().Milliseconds(),
			Planning:     sum.Warnings,
		}
		for _, r := range sum.Results {
			out.Results = append(out.Results, UnitOutcome{
				Success:  r.Success,
				Message:  r.Message,
				Files:    r.AffectedFiles,
				Warnings: r.Warnings,
				Errors:   r.Errors,
			})
		}
		return nil, out, nil
	}
}

// --- Templates tool ---

// TemplatesInput is the input for the templates tool (no parameters).
type TemplatesInput struct{}

// TemplateEntry is one template in the templates output.
type TemplateEntry struct {
	Name        string   `json:"name"                  jsonschema:"template identifier"`
	DisplayName string   `json:"display_name"          jsonschema:"human-readable name"`
	Description string   `json:"description,omitempty" jsonschema:"template description"`
	Tags        []string `json:"tags,omitempty"        jsonschema:"template tags"`
	Version     string   `json:"version,omitempty"     jsonschema:"template version"`
	BuiltIn     bool     `json:"built_in,omitempty"    jsonschema:"whether the template ships with pks"`
}

// TemplatesOutput is the output for the templates tool.
type TemplatesOutput struct {
	Templates []TemplateEntry `json:"templates" jsonschema:"available templates sorted by display name"`
}

func handleTemplates(svc *initializer.Service) mcp.ToolHandlerFor[TemplatesInput, TemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TemplatesInput) (*mcp.CallToolResult, TemplatesOutput, error) {
		var out TemplatesOutput
		for _, info := range svc.AvailableTemplates() {
			out.Templates = append(out.Templates, TemplateEntry{
				Name:        info.Name,
				DisplayName: info.DisplayName,
				Description: info.Description,
				Tags:        info.Tags,
				Version:     info.Version,
				BuiltIn:     info.BuiltIn,
			})
		}
		return nil, out, nil
	}
}

// --- Validate name tool ---

// ValidateNameInput is the input for the validate_name tool.
type ValidateNameInput struct {
	Name string `json:"name" jsonschema:"candidate project name"`
}

// ValidateNameOutput is the output for the validate_name tool.
type ValidateNameOutput struct {
	Valid  bool   `json:"valid"            jsonschema:"whether the name is acceptable"`
	Reason string `json:"reason,omitempty" jsonschema:"why the name was rejected"`
}

func handleValidateName() mcp.ToolHandlerFor[ValidateNameInput, ValidateNameOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ValidateNameInput) (*mcp.CallToolResult, ValidateNameOutput, error) {
		if err := initializer.ValidateProjectName(input.Name); err != nil {
			return nil, ValidateNameOutput{Valid: false, Reason: err.Error()}, nil
		}
		return nil, ValidateNameOutput{Valid: true}, nil
	}
}
