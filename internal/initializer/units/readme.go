package units

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pksworks/pks/internal/initializer"
	"github.com/pksworks/pks/internal/template"
)

// readmeBody is the fallback README rendered when the scaffold did not
// provide one.
const readmeBody = `# {{ProjectName}}

{{Description}}

Generated from the {{Template}} template on {{Date}}.
`

// ReadmeUnit guarantees the project ends the run with a README. It runs
// last so it can honor what earlier units recorded in metadata: the agent
// section appears only when agent wiring was generated, and a repository
// link appears when an integration unit recorded one.
type ReadmeUnit struct{}

// NewReadmeUnit creates the readme unit.
func NewReadmeUnit() *ReadmeUnit {
	return &ReadmeUnit{}
}

func (u *ReadmeUnit) ID() string   { return "readme" }
func (u *ReadmeUnit) Name() string { return "README" }
func (u *ReadmeUnit) Description() string {
	return "Writes a README.md when the template did not provide one"
}
func (u *ReadmeUnit) Order() int { return 70 }

// ShouldApply always accepts; the execute step is a no-op when the
// scaffold already wrote a README.
func (u *ReadmeUnit) ShouldApply(_ context.Context, _ *initializer.Context) (bool, error) {
	return true, nil
}

func (u *ReadmeUnit) Execute(_ context.Context, run *initializer.Context) (*initializer.Result, error) {
	path := filepath.Join(run.TargetDirectory, "README.md")
	if _, err := os.Stat(path); err == nil {
		return initializer.NewSuccess("README.md already present"), nil
	}

	var b strings.Builder
	b.WriteString(template.Substitute(readmeBody, run.Vars()))

	if enabled, _ := run.MetadataBool(MetaAgentEnabled); enabled {
		b.WriteString("\n## Agents\n\nThis project is agent-ready: see AGENTS.md and .mcp.json.\n")
	}
	if url, ok := run.MetadataString(MetaRepositoryURL); ok && url != "" {
		b.WriteString(fmt.Sprintf("\n## Repository\n\n%s\n", url))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("writing README.md: %w", err)
	}

	res := initializer.NewSuccess("generated README.md")
	res.AddFile(path)
	return res, nil
}

func (u *ReadmeUnit) Options() []initializer.Option {
	return nil
}
