// Package testutil provides deterministic ID and clock sources for tests
// and the scenario harness.
//
// The store's default sources (UUIDv7, wall clock) make output vary between
// runs; injecting these instead makes results byte-identical, which golden
// snapshot comparison depends on.
package testutil

import (
	"fmt"
	"time"
)

// SequentialIDs returns an ID source yielding task-001, task-002, ...
//
// Each call to SequentialIDs starts a fresh sequence, so the same scenario
// run twice produces identical IDs.
func SequentialIDs() func() string {
	seq := 0
	return func() string {
		seq++
		return fmt.Sprintf("task-%03d", seq)
	}
}

// SteppingClock returns a clock that starts at start and advances by step
// on every call. The first call returns start itself.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

// FixedClock returns a clock that always reports the same instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
