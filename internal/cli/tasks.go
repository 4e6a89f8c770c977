package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for tasks list.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// newTasksCommand creates the tasks command.
func newTasksCommand(ref *containerRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the to-do list",
		Long:  `Read or change the persistent to-do list without starting a conversation.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newTasksListCommand(ref))
	cmd.AddCommand(newTasksAddCommand(ref))
	cmd.AddCommand(newTasksClearCommand(ref))

	return cmd
}

// newTasksListCommand creates the tasks list subcommand.
func newTasksListCommand(ref *containerRef) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the to-do list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := ref.c.ListTasksUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			switch format {
			case formatText:
				printTasks(cmd.OutOrStdout(), out.Tasks)
				return nil
			case formatYAML:
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer func() { _ = enc.Close() }()
				if err := enc.Encode(out.Tasks); err != nil {
					return fmt.Errorf("encode tasks: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatYAML)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format: text or yaml")

	return cmd
}

func printTasks(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}
	for i, t := range tasks {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, t.Text)
	}
}

// newTasksAddCommand creates the tasks add subcommand.
func newTasksAddCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "add <task>...",
		Short: "Append a task to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := ref.c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			return err
		},
	}
}

// newTasksClearCommand creates the tasks clear subcommand.
func newTasksClearCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ref.c.ClearTasksUseCase().Execute(cmd.Context())
		},
	}
}
