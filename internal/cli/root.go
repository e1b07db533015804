// Package cli implements the tasknest command tree.
//
// The CLI is a thin collaborator over the task store: it validates user
// input (the caller-side checks the store deliberately omits), invokes one
// store operation per command, and renders the result. It holds no task
// logic of its own.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasknest/internal/config"
	"tasknest/internal/slot"
	"tasknest/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string // explicit config file; empty = default location
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tasknest CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tasknest",
		Short: "tasknest - a single-user task list",
		Long: `tasknest keeps a single-user task list in a local durable slot.

Tasks carry a title, a priority tag (high|medium|low), and a completion
flag. State persists across sessions; every command reads the latest
committed snapshot and mutators rewrite it in full.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewRmCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openStore loads configuration and builds the task store over the
// configured slot backend. The returned closer releases backend resources
// (the SQLite handle; a no-op for the file backend).
func openStore(opts *RootOptions) (*store.Store, config.Config, func() error, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, config.Config{}, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	path := cfg.ResolveDataPath()
	switch cfg.Backend {
	case config.BackendSQLite:
		sl, err := slot.OpenSQLiteSlot(path)
		if err != nil {
			return nil, config.Config{}, nil, WrapExitError(ExitCommandError, "failed to open task database", err)
		}
		return store.New(sl), cfg, sl.Close, nil
	default:
		noop := func() error { return nil }
		return store.New(slot.NewFileSlot(path)), cfg, noop, nil
	}
}
