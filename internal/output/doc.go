// Package output provides structured output and error handling for the pks
// CLI.
//
// The Printer is the single write path for commands. It switches between
// human-readable output (lipgloss styling, disabled when piped) and JSON
// (via the persistent --json flag) so every command works for both humans
// and automated agents.
//
// Errors carry exit codes through ExitError:
//
//	output.NewUserError("unknown template: zap")   // exit 1
//	output.NewSystemError("cannot write target")   // exit 2
//	output.NewConflictError("directory not empty") // exit 3
//
// main extracts the process exit code with GetExitCode.
package output
