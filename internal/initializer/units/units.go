// Package units provides the built-in initializer units wired into the pks
// init pipeline. Each unit is one pluggable step: scaffold rendering,
// devcontainer generation, CI workflow generation, agent wiring, and README
// backfill.
package units

import "github.com/pksworks/pks/internal/initializer"

// Metadata keys units use to communicate within a run.
const (
	// MetaAgentEnabled marks that agent wiring was generated this run.
	MetaAgentEnabled = "agent.enabled"
	// MetaAgentConfig is the path of the generated MCP config file.
	MetaAgentConfig = "agent.config"
	// MetaRepositoryURL is an optional repository URL recorded by an
	// integration unit for the README to link.
	MetaRepositoryURL = "repository.url"
	// MetaWorkflowPath is the path of the generated CI workflow.
	MetaWorkflowPath = "workflow.path"
)

// BuiltIn returns the standard unit set for a templates base directory, in
// registration order. The command layer registers these at startup; there
// is no runtime discovery.
func BuiltIn(templatesDir string) []initializer.Unit {
	return []initializer.Unit{
		NewScaffoldUnit(templatesDir),
		NewDevcontainerUnit(),
		NewWorkflowUnit(),
		NewAgentUnit(),
		NewReadmeUnit(),
	}
}
