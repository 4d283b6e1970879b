// Package main provides the entry point for the pks CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pksworks/pks/internal/output"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available project templates",
		Long: `List available project templates.

Shows the built-in templates plus any templates installed under the
templates directory (PKS_TEMPLATES_DIR or <config dir>/templates). A
template.json manifest inside a template directory overrides the
generated display name and description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplates(cmd)
		},
	}
}

// runTemplates executes the templates command.
func runTemplates(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	svc := newService()
	infos := svc.AvailableTemplates()

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"templates": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := "installed"
		if info.BuiltIn {
			source = "built-in"
		}
		rows = append(rows, []string{
			info.Name,
			info.DisplayName,
			source,
			strings.Join(info.Tags, ", "),
		})
	}

	printer.Section("Templates")
	printer.Table([]string{"NAME", "DISPLAY NAME", "SOURCE", "TAGS"}, rows)
	return nil
}
