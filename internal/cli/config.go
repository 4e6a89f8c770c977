package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(ref *containerRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage vassist configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(ref))
	cmd.AddCommand(newConfigTemplateCommand(ref))
	cmd.AddCommand(newConfigInitCommand(ref))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Sources in order of precedence: environment variables (and .env),
the --config file, the global config file, built-in defaults.
API keys are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := ref.c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if out.GlobalConfig.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", out.GlobalConfig.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.GlobalConfig.Path)
			}

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			_, _ = fmt.Fprint(w, out.EffectiveConfig)
			return nil
		},
	}
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template to stdout.

The template holds the built-in defaults and placeholders for the API keys.
It does not depend on existing configuration files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := ref.c.ShowConfigTemplateUseCase().Execute(cmd.Context(), usecase.ShowConfigTemplateInput{
				Config: domain.NewTemplateConfig(),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the global configuration file",
		Long: `Create $XDG_CONFIG_HOME/vassist/config.toml from the template.

An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := ref.c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Config: domain.NewTemplateConfig(),
			})
			if errors.Is(err, domain.ErrConfigExists) {
				return fmt.Errorf("%w: run 'vassist config show' to inspect it", err)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}
}
