package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// RmOptions holds flags for the rm command.
type RmOptions struct {
	*RootOptions
}

// NewRmCommand creates the rm command.
func NewRmCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RmOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete the task with the given id.

Removing an id that does not exist is reported (exit code 1) but leaves
the stored snapshot untouched.

Examples:
  tasknest rm 0195c3e4-5a6b-7c8d-9e0f-1a2b3c4d5e6f`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(opts, cmd, args[0])
		},
	}

	return cmd
}

func runRm(opts *RmOptions, cmd *cobra.Command, id string) error {
	ctx := context.Background()
	f := newFormatter(cmd, opts.RootOptions)

	st, _, closeStore, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	removed, err := st.Delete(ctx, id)
	if err != nil {
		return reportError(f, err)
	}

	if !removed {
		f.Error(ErrCodeNotFound, fmt.Sprintf("task not found: %s", id))
		return NewExitError(ExitFailure, fmt.Sprintf("task not found: %s", id))
	}

	if f.Format == "json" {
		return f.Success(map[string]any{"removed": true, "id": id})
	}
	fmt.Fprintf(f.Writer, "Removed %s\n", id)
	return nil
}
