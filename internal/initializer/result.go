package initializer

// Result is the outcome a unit reports for one run. It is never mutated
// after the unit returns it.
//
// Contract: a failed result must carry at least one error or a message
// describing the failure. NewFailure satisfies this by construction.
type Result struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message,omitempty"`
	AffectedFiles []string `json:"affected_files,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	Errors        []string `json:"errors,omitempty"`

	// Detail carries diagnostic detail (stack trace or wrapped error chain)
	// when the failure came from an unexpected error rather than a checked
	// condition.
	Detail string `json:"detail,omitempty"`
}

// NewSuccess creates a successful result with a summary message.
func NewSuccess(message string) *Result {
	return &Result{Success: true, Message: message}
}

// NewFailure creates a failed result. The message doubles as the first
// error entry so a failure always explains itself.
func NewFailure(message string) *Result {
	return &Result{
		Success: false,
		Message: message,
		Errors:  []string{message},
	}
}

// AddFile records a file path this unit created or modified.
func (r *Result) AddFile(path string) {
	r.AffectedFiles = append(r.AffectedFiles, path)
}

// AddWarning records a non-fatal problem.
func (r *Result) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// AddError records an error message.
func (r *Result) AddError(message string) {
	r.Errors = append(r.Errors, message)
}
