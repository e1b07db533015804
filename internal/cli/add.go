package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tasknest/internal/task"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Priority string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task to the end of the list.

The title must be non-empty. Priority defaults to the configured
default_priority when --priority is not given.

Examples:
  tasknest add "Buy milk" --priority high
  tasknest add Walk the dog
  tasknest add "Ship release" -p low --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "task priority (high|medium|low)")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	f := newFormatter(cmd, opts.RootOptions)

	// The store does not re-validate title emptiness; that check lives here,
	// on the caller side of the boundary.
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return NewExitError(ExitCommandError, "title must not be empty")
	}

	st, cfg, closeStore, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	raw := opts.Priority
	if raw == "" {
		raw = cfg.DefaultPriority
	}
	priority, err := task.ParsePriority(raw)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --priority", err)
	}

	created, err := st.Add(ctx, title, priority)
	if err != nil {
		return reportError(f, err)
	}

	f.VerboseLog("persisted snapshot to %s backend", cfg.Backend)

	if f.Format == "json" {
		return f.Success(viewOf(created))
	}
	fmt.Fprintf(f.Writer, "Added %q (%s, %s)\n", created.Title, created.Priority, created.ID)
	return nil
}
