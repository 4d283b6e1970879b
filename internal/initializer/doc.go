// Package initializer implements the project initialization pipeline for pks.
//
// The pipeline is built from pluggable units. Each unit has an identity, an
// execution order, an applicability predicate, and an execution method that
// reports a structured result. A Registry holds the known units, filters them
// for a given run, and executes the applicable subset in ascending order.
// The Service is the single orchestration entry point: it validates the
// target directory and project name, delegates to the Registry, and folds
// everything into a Summary for the command layer to render.
//
// # Units
//
// A unit implements the Unit interface:
//
//	type Unit interface {
//		ID() string
//		Name() string
//		Description() string
//		Order() int
//		ShouldApply(ctx context.Context, run *Context) (bool, error)
//		Execute(ctx context.Context, run *Context) (*Result, error)
//		Options() []Option
//	}
//
// Units with Order below CriticalOrder are critical: their failure stops the
// remaining pipeline for the run. Non-critical failures are recorded and
// execution continues.
//
// # Failure boundaries
//
// A predicate that returns an error excludes the unit with a warning; it
// never aborts planning. An Execute that returns an error (or panics) is
// converted into a failure Result by the Registry. The Service itself never
// returns an error: orchestration failures become a failed Summary.
//
// # Per-run state
//
// Units are stateless across runs. All cross-unit communication within one
// run goes through the Context metadata map; the options map is read-only
// caller input.
package initializer
