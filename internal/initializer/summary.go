package initializer

import (
	"path/filepath"
	"time"
)

// Summary is the per-run aggregate returned by the Service. Results appear
// in execution order, up to and including the run's termination point.
type Summary struct {
	RunID           string    `json:"run_id"`
	ProjectName     string    `json:"project_name"`
	Template        string    `json:"template"`
	TargetDirectory string    `json:"target_directory"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Success         bool      `json:"success"`

	// ErrorMessage is set when the run failed before any unit executed
	// (validation failure) or when orchestration itself broke.
	ErrorMessage string `json:"error_message,omitempty"`

	// Warnings holds planning warnings: units excluded because their
	// predicate errored, and registry diagnostics. Not counted in
	// WarningsCount, which covers unit results only.
	Warnings []string `json:"planning_warnings,omitempty"`

	Results []*Result `json:"results,omitempty"`
}

// Duration returns the wall-clock duration of the run.
func (s *Summary) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// FilesCreated counts distinct file paths across all results. Two units
// reporting the same path count once.
func (s *Summary) FilesCreated() int {
	seen := make(map[string]struct{})
	for _, r := range s.Results {
		for _, f := range r.AffectedFiles {
			seen[filepath.Clean(f)] = struct{}{}
		}
	}
	return len(seen)
}

// WarningsCount sums warnings across all unit results.
func (s *Summary) WarningsCount() int {
	n := 0
	for _, r := range s.Results {
		n += len(r.Warnings)
	}
	return n
}

// ErrorsCount sums errors across all unit results.
func (s *Summary) ErrorsCount() int {
	n := 0
	for _, r := range s.Results {
		n += len(r.Errors)
	}
	return n
}
