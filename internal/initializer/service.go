package initializer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service is the orchestration entry point for a full initialization run.
type Service struct {
	registry     *Registry
	templatesDir string
}

// NewService creates a service over a registry and a templates base
// directory (used by AvailableTemplates).
func NewService(registry *Registry, templatesDir string) *Service {
	return &Service{registry: registry, templatesDir: templatesDir}
}

// Registry exposes the underlying registry so the command layer can build
// its flag surface from AllOptions.
func (s *Service) Registry() *Registry {
	return s.registry
}

// InitializeProject runs the full pipeline for one context and returns a
// Summary. It never returns an error: validation failures produce a failed
// summary with no unit results, and anything that escapes orchestration
// itself is caught at this boundary and folded in the same way.
func (s *Service) InitializeProject(ctx context.Context, run *Context) (sum *Summary) {
	sum = &Summary{
		RunID:           uuid.NewString(),
		ProjectName:     run.ProjectName,
		Template:        run.Template,
		TargetDirectory: run.TargetDirectory,
		StartTime:       time.Now(),
	}
	defer func() {
		if p := recover(); p != nil {
			sum.Success = false
			sum.ErrorMessage = fmt.Sprintf("initialization failed: %v", p)
		}
		sum.EndTime = time.Now()
	}()

	if err := ValidateProjectName(run.ProjectName); err != nil {
		sum.ErrorMessage = err.Error()
		return sum
	}
	if err := ValidateTargetDirectory(run.TargetDirectory, run.Force); err != nil {
		sum.ErrorMessage = err.Error()
		return sum
	}
	if err := EnsureTargetDirectory(run.TargetDirectory); err != nil {
		sum.ErrorMessage = err.Error()
		return sum
	}

	results, warnings := s.registry.ExecuteAll(ctx, run)
	sum.Results = results
	sum.Warnings = append(s.registry.Diagnostics(), warnings...)

	sum.Success = true
	for _, r := range results {
		if !r.Success {
			sum.Success = false
			break
		}
	}
	return sum
}
