package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/vassist/internal/tui"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command.
func newTUICommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Chat with the assistant in a terminal UI",
		Long: `Open a full-screen chat with the assistant.

Commands are typed instead of spoken. Replies appear in the transcript and are
also read aloud when a speak command is configured. Press Esc to quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := ref.c
			transcript := tui.NewTranscript(c.Voice)
			c.SetSpeaker(transcript)

			c.Logger.Info("chat started")
			err := tui.Run(cmd.Context(), tui.Config{
				Dispatcher: c.DispatcherUseCase(),
				Greeter:    c.GreetUseCase(),
				Transcript: transcript,
			}, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
