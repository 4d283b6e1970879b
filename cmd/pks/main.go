// Package main provides the entry point for the pks CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pksworks/pks/internal/config"
	"github.com/pksworks/pks/internal/envfile"
	"github.com/pksworks/pks/internal/initializer"
	"github.com/pksworks/pks/internal/initializer/units"
	"github.com/pksworks/pks/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor folds the --color persistent flag into TTY detection for the
// command's output writer.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newService assembles the initializer service over the configured
// templates directory with the built-in unit set registered.
func newService() *initializer.Service {
	templatesDir := config.TemplatesDir()
	registry := initializer.NewRegistry()
	for _, u := range units.BuiltIn(templatesDir) {
		registry.Register(u)
	}
	return initializer.NewService(registry, templatesDir)
}

// newRootCmd creates the root command for the pks CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pks",
		Short: "Project scaffolding from templates",
		Long: `pks - scaffold new projects from templates through a pluggable
initializer pipeline.

An init run validates the project name and target directory, renders the
chosen template with placeholder substitution, then executes optional
units (devcontainer, CI workflow, agent wiring, README) in order.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'pks --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for tokens that can't be exported to env.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. <config dir>/env  (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
