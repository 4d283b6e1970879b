package initializer

import "context"

// CriticalOrder is the order threshold below which a unit is critical.
// A critical unit's failure aborts the remaining pipeline for the run.
const CriticalOrder = 50

// Unit is the contract for one pluggable initialization step.
//
// Implementations must be stateless across runs: all per-run state lives in
// the run Context's metadata or the unit's local execution scope. ID values
// are compared case-insensitively and must be unique across the registered
// set.
type Unit interface {
	// ID is the unique, case-insensitive lookup key.
	ID() string

	// Name is the display name used in warnings and summaries.
	Name() string

	// Description explains what the unit does.
	Description() string

	// Order is the execution sort key; lower runs first, ties break by Name.
	Order() int

	// ShouldApply decides whether the unit participates in this run.
	// An error excludes the unit with a warning; it never aborts planning.
	ShouldApply(ctx context.Context, run *Context) (bool, error)

	// Execute performs the unit's work and reports a Result. A returned
	// error is converted into a failure Result by the Registry.
	Execute(ctx context.Context, run *Context) (*Result, error)

	// Options lists the command-line options this unit contributes.
	Options() []Option
}

// Critical reports whether a unit's failure aborts the rest of the run.
func Critical(u Unit) bool {
	return u.Order() < CriticalOrder
}
