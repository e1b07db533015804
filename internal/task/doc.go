// Package task defines the task record model and the pure view-filter layer.
//
// A Task is the sole entity of the system: an opaque unique ID, a non-empty
// title, a priority tag, a completion flag, and a creation timestamp. Tasks
// form an ordered sequence - insertion order is the canonical display order,
// and every derived view preserves it.
//
// The package also carries the error taxonomy shared by the store and its
// callers:
//
//   - NotFoundError: an operation referenced a nonexistent task ID.
//     Always returned as a value, never used as control flow.
//   - CorruptSnapshotError: the durable slot held bytes that could not be
//     decoded as a task snapshot. Surfaced explicitly so corrupted state is
//     never silently discarded.
//
// Filtering is a pure function over a snapshot (see Filter); it holds no
// state of its own and never mutates its input.
package task
