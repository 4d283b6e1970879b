package units

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pksworks/pks/internal/initializer"
)

// WorkflowUnit generates a GitHub Actions CI workflow that restores,
// builds, and tests the project. Non-critical: a missing workflow does not
// invalidate the scaffolded project.
type WorkflowUnit struct{}

// NewWorkflowUnit creates the workflow unit.
func NewWorkflowUnit() *WorkflowUnit {
	return &WorkflowUnit{}
}

func (u *WorkflowUnit) ID() string   { return "workflow" }
func (u *WorkflowUnit) Name() string { return "CI workflow" }
func (u *WorkflowUnit) Description() string {
	return "Generates a GitHub Actions workflow for build and test"
}
func (u *WorkflowUnit) Order() int { return 60 }

// ShouldApply gates on the github-actions flag.
func (u *WorkflowUnit) ShouldApply(_ context.Context, run *initializer.Context) (bool, error) {
	return run.Enabled("github-actions"), nil
}

// ciWorkflow is the emitted workflow document.
type ciWorkflow struct {
	Name string              `yaml:"name"`
	On   map[string]branches `yaml:"on"`
	Jobs map[string]ciJob    `yaml:"jobs"`
}

type branches struct {
	Branches []string `yaml:"branches"`
}

type ciJob struct {
	RunsOn string   `yaml:"runs-on"`
	Steps  []ciStep `yaml:"steps"`
}

type ciStep struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
}

func (u *WorkflowUnit) Execute(_ context.Context, run *initializer.Context) (*initializer.Result, error) {
	wf := ciWorkflow{
		Name: run.ProjectName + " CI",
		On: map[string]branches{
			"push":         {Branches: []string{"main"}},
			"pull_request": {Branches: []string{"main"}},
		},
		Jobs: map[string]ciJob{
			"build": {
				RunsOn: "ubuntu-latest",
				Steps: []ciStep{
					{Uses: "actions/checkout@v4"},
					{
						Name: "Setup .NET",
						Uses: "actions/setup-dotnet@v4",
						With: map[string]string{"dotnet-version": "8.0.x"},
					},
					{Name: "Restore", Run: "dotnet restore"},
					{Name: "Build", Run: "dotnet build --no-restore"},
					{Name: "Test", Run: "dotnet test --no-build"},
				},
			},
		},
	}

	data, err := yaml.Marshal(wf)
	if err != nil {
		return nil, fmt.Errorf("encoding workflow: %w", err)
	}

	dir := filepath.Join(run.TargetDirectory, ".github", "workflows")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating workflows directory: %w", err)
	}
	path := filepath.Join(dir, "ci.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing ci.yaml: %w", err)
	}

	run.SetMetadata(MetaWorkflowPath, path)

	res := initializer.NewSuccess("generated GitHub Actions workflow")
	res.AddFile(path)
	return res, nil
}

func (u *WorkflowUnit) Options() []initializer.Option {
	return []initializer.Option{
		{
			Name:        "github-actions",
			Description: "Generate a GitHub Actions CI workflow",
			Type:        initializer.OptionFlag,
			Default:     false,
		},
	}
}
