package task

import "fmt"

// FilterMode selects a derived view of the task sequence.
type FilterMode string

const (
	// FilterAll selects the full sequence in stored order.
	FilterAll FilterMode = "all"

	// FilterActive selects tasks with Completed == false.
	FilterActive FilterMode = "active"

	// FilterCompleted selects tasks with Completed == true.
	FilterCompleted FilterMode = "completed"
)

// FilterModes lists the recognized filter modes.
var FilterModes = []FilterMode{FilterAll, FilterActive, FilterCompleted}

// ParseFilterMode converts a string to a FilterMode, rejecting anything
// outside the enumerated set. Surfaces that validate mode input eagerly
// (the CLI flag parser) use this; Filter itself stays permissive.
func ParseFilterMode(s string) (FilterMode, error) {
	m := FilterMode(s)
	switch m {
	case FilterAll, FilterActive, FilterCompleted:
		return m, nil
	}
	return "", fmt.Errorf("invalid filter %q: must be one of %v", s, FilterModes)
}

// Filter returns the subsequence of tasks selected by mode, preserving
// relative order. An unrecognized mode falls back to FilterAll semantics -
// a defensive default, not an error.
//
// Filter is pure: it never mutates the input sequence or the task records,
// and always returns a freshly allocated (possibly empty, never nil) slice.
func Filter(tasks []Task, mode FilterMode) []Task {
	out := make([]Task, 0, len(tasks))
	switch mode {
	case FilterActive:
		for _, t := range tasks {
			if !t.Completed {
				out = append(out, t)
			}
		}
	case FilterCompleted:
		for _, t := range tasks {
			if t.Completed {
				out = append(out, t)
			}
		}
	default:
		out = append(out, tasks...)
	}
	return out
}
