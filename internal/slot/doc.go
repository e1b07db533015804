// Package slot provides durable slot backends for the task store.
//
// A slot is one named storage location holding the entire serialized task
// sequence as raw bytes. The store treats the slot as the single source of
// truth between calls: every read loads it, every mutation rewrites it in
// full. The slot never interprets its contents - serialization lives in the
// store layer, so every backend carries the same JSON snapshot.
//
// Backends:
//
//   - FileSlot: a single file, replaced atomically via temp-file rename so
//     a crash mid-write never leaves a torn snapshot.
//   - SQLiteSlot: a one-row key-value table in a SQLite database, WAL mode,
//     single connection.
//   - MemorySlot: in-process bytes for tests and the scenario harness.
//
// An absent slot (never written) reports ok=false from Load; that is the
// lazy-initialization case, not an error.
package slot
