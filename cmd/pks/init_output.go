// Package main provides the entry point for the pks CLI.
package main

import (
	"fmt"
	"time"

	"github.com/pksworks/pks/internal/initializer"
	"github.com/pksworks/pks/internal/output"
)

// timeResolution is the rounding applied to durations in human output.
const timeResolution = time.Millisecond

// renderInitSummary writes the run summary in the printer's mode. JSON mode
// emits the summary document; human mode shows per-unit outcomes and a
// closing line.
func renderInitSummary(printer *output.Printer, sum *initializer.Summary) error {
	if printer.IsJSON() {
		return printer.WriteJSON(initSummaryDoc(sum))
	}
	renderInitHuman(printer, sum)
	return nil
}

// initSummaryDoc shapes the summary for JSON output.
func initSummaryDoc(sum *initializer.Summary) map[string]any {
	doc := map[string]any{
		"run_id":        sum.RunID,
		"success":       sum.Success,
		"project":       sum.ProjectName,
		"template":      sum.Template,
		"target":        sum.TargetDirectory,
		"files_created": sum.FilesCreated(),
		"warnings":      sum.WarningsCount(),
		"errors":        sum.ErrorsCount(),
		"duration_ms":   sum.Duration().Milliseconds(),
		"results":       sum.Results,
	}
	if sum.ErrorMessage != "" {
		doc["error"] = sum.ErrorMessage
	}
	if len(sum.Warnings) > 0 {
		doc["planning_warnings"] = sum.Warnings
	}
	return doc
}

// renderInitHuman writes the human-readable run report.
func renderInitHuman(printer *output.Printer, sum *initializer.Summary) {
	styles := printer.Styles()

	if sum.ErrorMessage != "" {
		printer.Error(output.NewUserError(sum.ErrorMessage))
		return
	}

	printer.Section(fmt.Sprintf("Initializing %s (%s)", sum.ProjectName, sum.Template))
	for _, w := range sum.Warnings {
		printer.Warn("%s", w)
	}

	for _, r := range sum.Results {
		mark := styles.Success.Render("ok")
		if !r.Success {
			mark = styles.Error.Render("failed")
		}
		printer.Print("  %s  %s\n", mark, r.Message)
		for _, w := range r.Warnings {
			printer.Print("      %s\n", styles.Warning.Render(w))
		}
	}

	printer.Println()
	if sum.Success {
		printer.KeyValue("Target", sum.TargetDirectory)
		printer.KeyValue("Files", fmt.Sprintf("%d created", sum.FilesCreated()))
		printer.KeyValue("Duration", sum.Duration().Round(timeResolution).String())
		printer.Println()
		printer.Box("Next steps", fmt.Sprintf("cd %s\ndotnet build", sum.TargetDirectory))
		return
	}
	printer.Print("%s\n", styles.Error.Render("Initialization failed; see unit results above."))
}
