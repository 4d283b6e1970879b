package units

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pksworks/pks/internal/initializer"
)

// DevcontainerUnit writes a devcontainer definition so the project opens
// ready-to-build in container-backed editors. Critical: when requested, a
// broken devcontainer leaves the project unusable for its intended flow.
type DevcontainerUnit struct{}

// NewDevcontainerUnit creates the devcontainer unit.
func NewDevcontainerUnit() *DevcontainerUnit {
	return &DevcontainerUnit{}
}

func (u *DevcontainerUnit) ID() string   { return "devcontainer" }
func (u *DevcontainerUnit) Name() string { return "Devcontainer" }
func (u *DevcontainerUnit) Description() string {
	return "Generates a .devcontainer configuration for the project"
}
func (u *DevcontainerUnit) Order() int { return 20 }

// ShouldApply gates on the devcontainer flag.
func (u *DevcontainerUnit) ShouldApply(_ context.Context, run *initializer.Context) (bool, error) {
	return run.Enabled("devcontainer"), nil
}

// devcontainerSpec is the subset of the devcontainer schema pks emits.
type devcontainerSpec struct {
	Name              string           `json:"name"`
	Image             string           `json:"image"`
	PostCreateCommand string           `json:"postCreateCommand,omitempty"`
	Customizations    map[string]vsext `json:"customizations,omitempty"`
}

type vsext struct {
	Extensions []string `json:"extensions,omitempty"`
}

func (u *DevcontainerUnit) Execute(_ context.Context, run *initializer.Context) (*initializer.Result, error) {
	spec := devcontainerSpec{
		Name:              run.ProjectName,
		Image:             "mcr.microsoft.com/devcontainers/dotnet:8.0",
		PostCreateCommand: "dotnet restore",
		Customizations: map[string]vsext{
			"vscode": {Extensions: []string{"ms-dotnettools.csdevkit"}},
		},
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding devcontainer spec: %w", err)
	}

	dir := filepath.Join(run.TargetDirectory, ".devcontainer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating .devcontainer directory: %w", err)
	}
	path := filepath.Join(dir, "devcontainer.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing devcontainer.json: %w", err)
	}

	res := initializer.NewSuccess("generated devcontainer configuration")
	res.AddFile(path)
	return res, nil
}

func (u *DevcontainerUnit) Options() []initializer.Option {
	return []initializer.Option{
		{
			Name:        "devcontainer",
			Description: "Generate a devcontainer configuration",
			Type:        initializer.OptionFlag,
			Default:     false,
		},
	}
}
