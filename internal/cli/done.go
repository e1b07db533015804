package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// DoneOptions holds flags for the done command.
type DoneOptions struct {
	*RootOptions
}

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DoneOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Long: `Toggle the completion flag of the task with the given id.

Running done on a completed task reopens it - the operation is its own
inverse.

Examples:
  tasknest done 0195c3e4-5a6b-7c8d-9e0f-1a2b3c4d5e6f
  tasknest done <id> --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(opts, cmd, args[0])
		},
	}

	return cmd
}

func runDone(opts *DoneOptions, cmd *cobra.Command, id string) error {
	ctx := context.Background()
	f := newFormatter(cmd, opts.RootOptions)

	st, _, closeStore, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	toggled, err := st.ToggleCompletion(ctx, id)
	if err != nil {
		return reportError(f, err)
	}

	if f.Format == "json" {
		return f.Success(viewOf(toggled))
	}
	if toggled.Completed {
		fmt.Fprintf(f.Writer, "Completed %q\n", toggled.Title)
	} else {
		fmt.Fprintf(f.Writer, "Reopened %q\n", toggled.Title)
	}
	return nil
}
