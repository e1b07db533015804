// Package store owns the canonical ordered sequence of task records and its
// persistence to a durable slot.
//
// The store is an explicit object constructed once per application instance
// and handed to collaborators - there is no package-level singleton. Between
// calls the durable slot is the single source of truth: every operation
// reloads the snapshot from the slot, and every mutation rewrites the whole
// serialized sequence. There is no in-memory cache and no partial update,
// trading performance for simplicity and crash consistency.
//
// Identity and ordering:
//
//   - Task IDs are UUIDv7 by default (injectable for tests), so rapid
//     successive adds never collide the way clock-derived IDs can.
//   - Insertion order is preserved: the sequence is ordered, not a set,
//     and stored order is the default display order.
//
// Failure paths return before writing, so the slot always holds the last
// fully committed snapshot. A malformed slot surfaces as
// task.CorruptSnapshotError rather than being silently treated as empty.
//
// The store performs no locking across its read-modify-write cycle: a
// second interleaved writer could lose updates. That is an accepted
// limitation of the single-caller model, not a guarantee.
package store
