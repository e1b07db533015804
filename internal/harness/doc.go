// Package harness runs YAML-defined task-store scenarios for conformance
// testing.
//
// A scenario is a sequence of store operations (add, toggle, set, delete)
// followed by a capture of all three filtered views of the final state.
// Scenarios run against an in-memory slot with a sequential ID source and a
// fixed stepping clock, so results are fully deterministic and can be
// compared against golden files.
//
// Steps reference tasks by the ordinal of the add step that created them
// (1-based), since real IDs are assigned by the store at run time.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
