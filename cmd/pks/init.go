// Package main provides the entry point for the pks CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pksworks/pks/internal/config"
	"github.com/pksworks/pks/internal/initializer"
	"github.com/pksworks/pks/internal/output"
)

// initFlags holds the fixed command-line flags for the init command. Unit
// options become flags dynamically and are collected separately.
type initFlags struct {
	template       string
	target         string
	force          bool
	nonInteractive bool
}

// newInitCmd creates the init command. The flag surface is the fixed set
// plus one flag per option contributed by the registered units.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}
	svc := newService()

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Initialize a new project from a template",
		Long: `Initialize a new project from a template.

The project name is validated (length, filesystem characters, reserved
names), the target directory is created if missing, and the template is
rendered with placeholder substitution. Optional units add a devcontainer,
a CI workflow, agent wiring, and a README.

Examples:
  pks init myapp                        # Scaffold with the default template
  pks init myapp -t api                 # Use the api template
  pks init myapp --target ./src/myapp   # Explicit target directory
  pks init myapp --force                # Allow a non-empty target
  pks init myapp --agentic              # Also generate MCP agent wiring`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, svc, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template to scaffold from")
	cmd.Flags().StringVar(&flags.target, "target", "", "Target directory (default ./<name>)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Initialize into a non-empty directory")
	cmd.Flags().BoolVar(&flags.nonInteractive, "non-interactive", false, "Never prompt; fail or use defaults instead")

	registerUnitFlags(cmd, svc.Registry().AllOptions())

	return cmd
}

// registerUnitFlags turns unit-contributed options into cobra flags.
func registerUnitFlags(cmd *cobra.Command, opts []initializer.Option) {
	for _, o := range opts {
		switch o.Type {
		case initializer.OptionFlag:
			def, _ := o.Default.(bool)
			cmd.Flags().BoolP(o.Name, o.ShortName, def, o.Description)
		case initializer.OptionInt:
			def, _ := o.Default.(int)
			cmd.Flags().IntP(o.Name, o.ShortName, def, o.Description)
		case initializer.OptionStrings:
			def, _ := o.Default.([]string)
			cmd.Flags().StringSliceP(o.Name, o.ShortName, def, o.Description)
		default:
			def, _ := o.Default.(string)
			cmd.Flags().StringP(o.Name, o.ShortName, def, o.Description)
		}
	}
}

// collectUnitOptions reads back the values of unit-contributed flags. Only
// flags the user actually set are collected, so persisted settings and unit
// defaults stay in effect when a flag is absent.
func collectUnitOptions(cmd *cobra.Command, opts []initializer.Option) (map[string]any, error) {
	values := make(map[string]any)
	for _, o := range opts {
		if !cmd.Flags().Changed(o.Name) {
			if o.Required {
				return nil, output.NewUserError(fmt.Sprintf("required option --%s not provided", o.Name))
			}
			continue
		}

		var value any
		switch o.Type {
		case initializer.OptionFlag:
			value, _ = cmd.Flags().GetBool(o.Name)
		case initializer.OptionInt:
			value, _ = cmd.Flags().GetInt(o.Name)
		case initializer.OptionStrings:
			value, _ = cmd.Flags().GetStringSlice(o.Name)
		default:
			value, _ = cmd.Flags().GetString(o.Name)
		}

		if o.Validate != nil {
			if err := o.Validate(value); err != nil {
				return nil, output.NewUserError(fmt.Sprintf("invalid value for --%s: %v", o.Name, err))
			}
		}
		values[o.Name] = value
	}
	return values, nil
}

// applySettingsDefaults seeds options from persisted settings for flags the
// user did not give. Explicit flags always win.
func applySettingsDefaults(options map[string]any, settings *config.Settings) {
	seed := func(name string, enabled bool) {
		if _, set := options[name]; !set && enabled {
			options[name] = true
		}
	}
	seed("devcontainer", settings.Devcontainer)
	seed("github-actions", settings.GitHubActions)
	seed("agentic", settings.Agentic)
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, svc *initializer.Service, flags *initFlags, name string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	settings, err := config.LoadSettings()
	if err != nil {
		printer.Warn("ignoring unreadable settings: %v", err)
		settings = &config.Settings{}
	}

	options, err := collectUnitOptions(cmd, svc.Registry().AllOptions())
	if err != nil {
		printer.Error(err)
		return err
	}
	applySettingsDefaults(options, settings)
	if flags.nonInteractive {
		options["non-interactive"] = true
	}

	template, err := resolveTemplate(svc, printer, flags, settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	target := flags.target
	if target == "" {
		target = "./" + name
	}

	run := initializer.NewContext(name, template, target, flags.force, options)
	sum := svc.InitializeProject(cmd.Context(), run)

	if err := renderInitSummary(printer, sum); err != nil {
		return err
	}
	return summaryError(sum)
}

// resolveTemplate picks the template: explicit flag, then persisted
// default, then an interactive choice when a terminal is attached, then
// the console built-in.
func resolveTemplate(svc *initializer.Service, printer *output.Printer, flags *initFlags, settings *config.Settings) (string, error) {
	if flags.template != "" {
		return flags.template, nil
	}
	if settings.DefaultTemplate != "" {
		return settings.DefaultTemplate, nil
	}
	if flags.nonInteractive || printer.IsJSON() || !printer.IsTTY() {
		return "console", nil
	}
	return promptTemplate(svc)
}

// promptTemplate shows an interactive template picker.
func promptTemplate(svc *initializer.Service) (string, error) {
	infos := svc.AvailableTemplates()
	opts := make([]huh.Option[string], 0, len(infos))
	for _, info := range infos {
		label := info.DisplayName
		if info.Description != "" {
			label = fmt.Sprintf("%s - %s", info.DisplayName, info.Description)
		}
		opts = append(opts, huh.NewOption(label, info.Name))
	}

	var choice string
	err := huh.NewSelect[string]().
		Title("Choose a template").
		Options(opts...).
		Value(&choice).
		Run()
	if err != nil {
		return "", output.NewUserError(fmt.Sprintf("template selection canceled: %v", err))
	}
	return choice, nil
}

// summaryError maps a failed summary onto an exit-coded error. A non-empty
// target is a conflict; validation failures are user errors; unit failures
// during execution are system errors.
func summaryError(sum *initializer.Summary) error {
	if sum.Success {
		return nil
	}
	if sum.ErrorMessage != "" {
		if strings.Contains(sum.ErrorMessage, "not empty") {
			return output.NewConflictError(sum.ErrorMessage)
		}
		return output.NewUserError(sum.ErrorMessage)
	}
	for _, r := range sum.Results {
		if !r.Success {
			return output.NewSystemError(r.Message)
		}
	}
	return output.NewSystemError("initialization failed")
}
