package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"tasknest/internal/task"
)

// taskRecord is the wire form of one task in the snapshot: a JSON object
// with exactly these five fields. CreatedAt travels as an ISO-8601 string.
type taskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// encodeSnapshot serializes the full task sequence as a JSON array.
// An empty sequence encodes as "[]", never "null", so a written slot is
// always a valid snapshot.
func encodeSnapshot(tasks []task.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:        t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot deserializes a snapshot back into the task sequence.
//
// Empty or whitespace-only data decodes as an empty sequence (the lazily
// initialized slot). Anything else that fails to parse - malformed JSON, an
// unknown priority, an unparseable timestamp - returns
// task.CorruptSnapshotError so corrupted state is surfaced, not discarded.
func decodeSnapshot(data []byte) ([]task.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []task.Task{}, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &task.CorruptSnapshotError{Err: err}
	}

	tasks := make([]task.Task, 0, len(records))
	for i, r := range records {
		priority, err := task.ParsePriority(r.Priority)
		if err != nil {
			return nil, &task.CorruptSnapshotError{
				Err: fmt.Errorf("record %d: %w", i, err),
			}
		}

		createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
		if err != nil {
			return nil, &task.CorruptSnapshotError{
				Err: fmt.Errorf("record %d: bad createdAt: %w", i, err),
			}
		}

		tasks = append(tasks, task.Task{
			ID:        r.ID,
			Title:     r.Title,
			Priority:  priority,
			Completed: r.Completed,
			CreatedAt: createdAt,
		})
	}

	return tasks, nil
}
