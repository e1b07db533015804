package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tasknest/internal/task"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Filter string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in insertion order, optionally filtered by completion.

Filter modes:
  all        every task (default)
  active     tasks not yet completed
  completed  completed tasks

Examples:
  tasknest list
  tasknest list --filter active
  tasknest list --filter completed --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "all", "filter mode (all|active|completed)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	f := newFormatter(cmd, opts.RootOptions)

	// Flag input is validated eagerly; the filter layer's silent fallback
	// to "all" is for programmatic callers, not for typos.
	mode, err := task.ParseFilterMode(opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --filter", err)
	}

	st, _, closeStore, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	tasks, err := st.GetAll(ctx)
	if err != nil {
		return reportError(f, err)
	}

	view := task.Filter(tasks, mode)
	f.VerboseLog("%d of %d task(s) selected by filter %q", len(view), len(tasks), mode)

	if f.Format == "json" {
		return f.Success(viewsOf(view))
	}
	renderTaskTable(f.Writer, view)
	return nil
}
