package task

import (
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the allowed priority values in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority converts a string to a Priority.
// Returns an error for anything outside the enumerated set.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q: must be one of %v", s, Priorities)
	}
	return p, nil
}

// Valid reports whether p is one of the enumerated priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is a single to-do item record.
//
// ID, Title, Priority, and CreatedAt are immutable after creation; only
// Completed changes over the task's lifetime (via the store's toggle or
// update operations). CreatedAt is record-keeping only - it does not
// participate in ordering, which is defined by position in the sequence.
type Task struct {
	ID        string
	Title     string
	Priority  Priority
	Completed bool
	CreatedAt time.Time
}

// New constructs a task with Completed unset.
//
// The title is NFC-normalized so visually identical input persists as
// identical bytes. Normalization is not validation: emptiness checks stay
// with the caller, matching the store contract.
func New(id, title string, priority Priority, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Title:     NormalizeTitle(title),
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

// NormalizeTitle returns the NFC normal form of a title.
func NormalizeTitle(title string) string {
	return norm.NFC.String(title)
}
