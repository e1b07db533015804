package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tasknest/internal/store"
	"tasknest/internal/task"
)

// SetOptions holds flags for the set command.
type SetOptions struct {
	*RootOptions
	Title     string
	Priority  string
	Completed bool
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update fields of a task",
		Long: `Update fields of the task with the given id.

Only flags that are explicitly set are applied; everything else keeps its
current value (shallow merge). The id and creation timestamp are never
changed.

Examples:
  tasknest set <id> --title "Buy oat milk"
  tasknest set <id> --priority low
  tasknest set <id> --completed=false --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new task title")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "new priority (high|medium|low)")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "completion flag")

	return cmd
}

func runSet(opts *SetOptions, cmd *cobra.Command, id string) error {
	ctx := context.Background()
	f := newFormatter(cmd, opts.RootOptions)

	patch, err := buildPatch(opts, cmd)
	if err != nil {
		return err
	}

	st, _, closeStore, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	updated, err := st.Update(ctx, id, patch)
	if err != nil {
		return reportError(f, err)
	}

	if f.Format == "json" {
		return f.Success(viewOf(updated))
	}
	fmt.Fprintf(f.Writer, "Updated %q (%s, completed=%v)\n", updated.Title, updated.Priority, updated.Completed)
	return nil
}

// buildPatch assembles a store.Patch from the flags the user actually set.
func buildPatch(opts *SetOptions, cmd *cobra.Command) (store.Patch, error) {
	var patch store.Patch

	if cmd.Flags().Changed("title") {
		title := strings.TrimSpace(opts.Title)
		if title == "" {
			return store.Patch{}, NewExitError(ExitCommandError, "title must not be empty")
		}
		patch.Title = &title
	}

	if cmd.Flags().Changed("priority") {
		priority, err := task.ParsePriority(opts.Priority)
		if err != nil {
			return store.Patch{}, WrapExitError(ExitCommandError, "invalid --priority", err)
		}
		patch.Priority = &priority
	}

	if cmd.Flags().Changed("completed") {
		completed := opts.Completed
		patch.Completed = &completed
	}

	if patch.Title == nil && patch.Priority == nil && patch.Completed == nil {
		return store.Patch{}, NewExitError(ExitCommandError, "nothing to update: set --title, --priority, or --completed")
	}
	return patch, nil
}
