package initializer

import (
	"cmp"
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
)

// Factory constructs a unit, typically closing over collaborators the unit
// needs (a templates directory, a settings loader). A factory that fails is
// skipped with a diagnostic rather than failing registry construction; the
// embedding application should treat a non-empty Diagnostics list as a
// startup configuration problem.
type Factory func() (Unit, error)

// Registry holds the universe of known units, computes the applicable
// subset for a run, and executes that subset in order.
//
// Registration does not check ID uniqueness; duplicate IDs are a caller
// error. Registry is not safe for concurrent use.
type Registry struct {
	units     []Unit
	factories []Factory
	diags     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a constructed unit. Registration order is preserved and
// breaks ties when order and name are both equal.
func (r *Registry) Register(u Unit) {
	r.units = append(r.units, u)
}

// RegisterFactory adds a unit to be constructed lazily on first use.
func (r *Registry) RegisterFactory(f Factory) {
	r.factories = append(r.factories, f)
}

// Diagnostics returns messages for factories that could not produce a unit.
func (r *Registry) Diagnostics() []string {
	r.resolve()
	return slices.Clone(r.diags)
}

// resolve runs pending factories once, in registration order. Failed
// factories are dropped with a diagnostic.
func (r *Registry) resolve() {
	if len(r.factories) == 0 {
		return
	}
	for _, f := range r.factories {
		u, err := f()
		if err != nil {
			r.diags = append(r.diags, fmt.Sprintf("unit factory failed, skipping: %v", err))
			continue
		}
		r.units = append(r.units, u)
	}
	r.factories = nil
}

// All returns every registered unit sorted by order ascending, then name.
// The sort is stable, so equal (order, name) pairs keep registration order.
func (r *Registry) All() []Unit {
	r.resolve()
	out := slices.Clone(r.units)
	slices.SortStableFunc(out, func(a, b Unit) int {
		if c := cmp.Compare(a.Order(), b.Order()); c != 0 {
			return c
		}
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// ByID finds a unit by ID, case-insensitively.
func (r *Registry) ByID(id string) (Unit, bool) {
	for _, u := range r.All() {
		if strings.EqualFold(u.ID(), id) {
			return u, true
		}
	}
	return nil, false
}

// AllOptions returns the union of every unit's contributed options,
// deduplicated by name. The earliest-registered definition wins silently.
func (r *Registry) AllOptions() []Option {
	r.resolve()
	var out []Option
	seen := make(map[string]struct{})
	for _, u := range r.units {
		for _, o := range u.Options() {
			if _, dup := seen[o.Name]; dup {
				continue
			}
			seen[o.Name] = struct{}{}
			out = append(out, o)
		}
	}
	return out
}

// Applicable filters All down to the units whose predicate accepts the run.
// A predicate error excludes the unit and records a warning; a broken
// predicate must not abort planning.
func (r *Registry) Applicable(ctx context.Context, run *Context) ([]Unit, []string) {
	var units []Unit
	var warnings []string
	for _, u := range r.All() {
		ok, err := u.ShouldApply(ctx, run)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s excluded: %v", u.Name(), err))
			continue
		}
		if ok {
			units = append(units, u)
		}
	}
	return units, warnings
}

// ExecuteAll runs every applicable unit in order and returns the
// accumulated results plus planning warnings. Execution stops after a
// critical unit fails; the returned list is partial in that case.
func (r *Registry) ExecuteAll(ctx context.Context, run *Context) ([]*Result, []string) {
	units, warnings := r.Applicable(ctx, run)

	results := make([]*Result, 0, len(units))
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			results = append(results, NewFailure("initialization canceled: "+err.Error()))
			break
		}

		res := r.executeOne(ctx, u, run)
		results = append(results, res)

		if !res.Success && Critical(u) {
			break
		}
	}
	return results, warnings
}

// executeOne invokes a unit inside the failure boundary: errors and panics
// become failure results, never propagated exceptions.
func (r *Registry) executeOne(ctx context.Context, u Unit, run *Context) (res *Result) {
	defer func() {
		if p := recover(); p != nil {
			res = NewFailure(fmt.Sprintf("%s panicked: %v", u.Name(), p))
			res.Detail = string(debug.Stack())
		}
	}()

	out, err := u.Execute(ctx, run)
	if err != nil {
		res = NewFailure(fmt.Sprintf("%s failed: %v", u.Name(), err))
		res.Detail = fmt.Sprintf("%+v", err)
		return res
	}
	if out == nil {
		// Contract violation: a unit must explain its outcome.
		return NewFailure(u.Name() + " returned no result")
	}
	return out
}
