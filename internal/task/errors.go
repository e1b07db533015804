package task

import (
	"errors"
	"fmt"
)

// NotFoundError reports that an operation referenced a task ID not present
// in the store. It is returned as a value so callers can decide how to
// react (the CLI reports it; a caller may equally no-op).
type NotFoundError struct {
	// ID is the task identifier that was looked up.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// IsNotFound returns true if the error is a task-not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// CorruptSnapshotError reports that the durable slot held bytes that could
// not be decoded as a task snapshot. The store surfaces this instead of
// silently treating the slot as empty, so corrupted state is never
// discarded by a routine read.
type CorruptSnapshotError struct {
	// Err is the underlying decode failure.
	Err error
}

// Error implements the error interface.
func (e *CorruptSnapshotError) Error() string {
	return fmt.Sprintf("corrupt task snapshot: %v", e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *CorruptSnapshotError) Unwrap() error {
	return e.Err
}

// IsCorruptSnapshot returns true if the error is a corrupt-snapshot error.
// Uses errors.As to handle wrapped errors.
func IsCorruptSnapshot(err error) bool {
	var cs *CorruptSnapshotError
	return errors.As(err, &cs)
}
