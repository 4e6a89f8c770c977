package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// newSayCommand creates the say command.
func newSayCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "say <utterance>...",
		Short: "Handle a single utterance and exit",
		Long: `Handle a single utterance as if it had been spoken, then exit.

The arguments are joined with spaces. The greeting is skipped.`,
		Example: `  vassist say what is the weather
  vassist say "add task buy milk"
  vassist say who is Alan Turing`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref.c.DispatcherUseCase().Dispatch(cmd.Context(), strings.Join(args, " "))
			return nil
		},
	}
}
