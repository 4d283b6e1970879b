package units

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pksworks/pks/internal/initializer"
	"github.com/pksworks/pks/internal/template"
)

// ScaffoldUnit renders the selected template's source tree into the target
// directory. It runs first and is critical: without a scaffold there is
// nothing for later units to build on.
type ScaffoldUnit struct {
	templatesDir string
}

// NewScaffoldUnit creates a scaffold unit over a templates base directory.
func NewScaffoldUnit(templatesDir string) *ScaffoldUnit {
	return &ScaffoldUnit{templatesDir: templatesDir}
}

func (u *ScaffoldUnit) ID() string          { return "scaffold" }
func (u *ScaffoldUnit) Name() string        { return "Project scaffold" }
func (u *ScaffoldUnit) Description() string { return "Renders the project template into the target directory" }
func (u *ScaffoldUnit) Order() int          { return 10 }

// ShouldApply confirms the template has a source directory. A missing
// directory excludes the unit with a warning instead of failing at execute
// time.
func (u *ScaffoldUnit) ShouldApply(_ context.Context, run *initializer.Context) (bool, error) {
	dir := u.sourceDir(run)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false, fmt.Errorf("template %q has no source directory under %s", run.Template, u.templatesDir)
	}
	return true, nil
}

// Execute renders the template tree. Partial writes before a failure remain
// on disk and are reported in the result's affected files.
func (u *ScaffoldUnit) Execute(_ context.Context, run *initializer.Context) (*initializer.Result, error) {
	r := &template.Renderer{
		Source: u.sourceDir(run),
		Vars:   run.Vars(),
	}
	written, err := r.Render(run.TargetDirectory)
	if err != nil {
		res := initializer.NewFailure(fmt.Sprintf("rendering template %q: %v", run.Template, err))
		res.AffectedFiles = written
		return res, nil
	}

	res := initializer.NewSuccess(fmt.Sprintf("rendered %d files from template %q", len(written), run.Template))
	res.AffectedFiles = written
	return res, nil
}

// Options contributes the shared description option used in placeholder
// substitution.
func (u *ScaffoldUnit) Options() []initializer.Option {
	return []initializer.Option{
		{
			Name:        "description",
			ShortName:   "d",
			Description: "Project description used in rendered templates",
			Type:        initializer.OptionString,
		},
	}
}

func (u *ScaffoldUnit) sourceDir(run *initializer.Context) string {
	return filepath.Join(u.templatesDir, run.Template)
}
