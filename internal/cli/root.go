// Package cli provides the command-line interface for vassist.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/vassist/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupAssistant = "assistant"
	groupSetup     = "setup"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// containerRef carries the container from the persistent pre-run to subcommands.
type containerRef struct {
	c *app.Container
}

// NewRootCommand creates the root command for vassist.
// It receives the container factory for dependency injection and version for display.
func NewRootCommand(factory ContainerFactory, version string) *cobra.Command {
	var opts app.Options
	ref := &containerRef{}

	root := &cobra.Command{
		Use:   "vassist",
		Short: "Voice-driven personal assistant",
		Long: `vassist listens for a spoken command, works out what you asked for and answers out loud.

It keeps a persistent to-do list, reads the weather and top headlines, searches
Wikipedia and Google, tells the time and opens websites or applications.

Without a configured listen command, utterances are typed one per line.
Say "exit", "quit" or "stop listening" to end the session.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if factory == nil {
				return errors.New("no container factory")
			}
			opts.Stdin = cmd.InOrStdin()
			opts.Stdout = cmd.OutOrStdout()

			c, err := factory(opts)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			ref.c = c

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if ref.c == nil {
				return nil
			}
			return ref.c.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref.c.Logger.Info("assistant started")
			err := ref.c.MainLoopUseCase().Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				ref.c.Logger.Info("assistant interrupted")
				return nil
			}
			return err
		},
	}

	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file layered over the global config")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.Flags().BoolVarP(&opts.TextMode, "text", "t", false, "Type utterances instead of using the listen command")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupAssistant, Title: "Assistant Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	sayCmd := newSayCommand(ref)
	sayCmd.GroupID = groupAssistant

	tuiCmd := newTUICommand(ref)
	tuiCmd.GroupID = groupAssistant

	tasksCmd := newTasksCommand(ref)
	tasksCmd.GroupID = groupAssistant

	configCmd := newConfigCommand(ref)
	configCmd.GroupID = groupSetup

	root.AddCommand(sayCmd, tuiCmd, tasksCmd, configCmd)

	return root
}
