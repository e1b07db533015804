package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"tasknest/internal/task"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (task not found, corrupt snapshot)
	ExitCommandError = 2 // Command error (bad flags, config errors, storage I/O)
)

// Error codes used in the JSON error envelope.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeCorruptSnapshot = "CORRUPT_SNAPSHOT"
	ErrCodeStorage         = "STORAGE"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostic output; defaults to Writer when nil
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // NOT_FOUND, CORRUPT_SNAPSHOT, ...
	Message string `json:"message"` // human-readable message
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error envelope in JSON format. Text mode does nothing -
// the error is reported once, through the command's returned ExitError.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format != "json" {
		return nil
	}
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
		},
	})
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter so JSON output on Writer is never corrupted.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// taskView is the JSON projection of a task in CLI output. It mirrors the
// snapshot wire format so list --format json and the persisted slot agree.
type taskView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

func viewOf(t task.Task) taskView {
	return taskView{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func viewsOf(tasks []task.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, viewOf(t))
	}
	return views
}

// renderTaskTable writes the text rendering of a task sequence: one line
// per task in stored order, completed tasks marked with [x].
func renderTaskTable(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, renderTaskLine(t))
	}
}

func renderTaskLine(t task.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %-6s  %s  (%s)", mark, t.Priority, t.Title, t.ID)
}

// reportError maps a store error to the JSON error envelope plus an
// ExitError carrying the right exit code.
func reportError(f *OutputFormatter, err error) error {
	switch {
	case task.IsNotFound(err):
		f.Error(ErrCodeNotFound, err.Error())
		return WrapExitError(ExitFailure, "task lookup failed", err)
	case task.IsCorruptSnapshot(err):
		f.Error(ErrCodeCorruptSnapshot, err.Error())
		return WrapExitError(ExitFailure, "task snapshot is corrupt", err)
	default:
		f.Error(ErrCodeStorage, err.Error())
		return WrapExitError(ExitCommandError, "storage failure", err)
	}
}
