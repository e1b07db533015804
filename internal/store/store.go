package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tasknest/internal/slot"
	"tasknest/internal/task"
)

// Store owns the ordered task sequence persisted in a durable slot.
// Construct with New; the zero value is not usable.
type Store struct {
	slot  slot.Slot
	newID func() string
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the default UUIDv7 ID source.
// Used by tests and the scenario harness for deterministic IDs.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces the default wall clock used to stamp CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New creates a store over the given durable slot.
func New(sl slot.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  sl,
		newID: newTaskID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newTaskID generates a fresh task identifier.
// UUIDv7 is time-ordered and collision-free under rapid successive calls,
// unlike a raw millisecond timestamp.
func newTaskID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// GetAll returns the full task sequence in insertion order.
// An absent or empty slot yields an empty sequence (never nil).
func (s *Store) GetAll(ctx context.Context) ([]task.Task, error) {
	return s.load(ctx)
}

// Add creates a task with a fresh unique ID and Completed=false, appends it
// to the end of the sequence, persists the full snapshot, and returns it.
//
// Title emptiness is not validated here - that check belongs to the caller,
// matching the scope boundary between store and UI collaborator.
func (s *Store) Add(ctx context.Context, title string, priority task.Priority) (task.Task, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return task.Task{}, err
	}

	t := task.New(s.newID(), title, priority, s.now())
	tasks = append(tasks, t)

	if err := s.save(ctx, tasks); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Patch holds the optional fields an Update may change. Nil fields are
// left untouched (shallow merge); ID and CreatedAt are never patchable.
type Patch struct {
	Title     *string
	Priority  *task.Priority
	Completed *bool
}

// Update merges the patch into the task with the given ID, persists, and
// returns the updated task. Returns task.NotFoundError - with the slot
// untouched - when no task has that ID.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (task.Task, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return task.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}

	t := tasks[i]
	if patch.Title != nil {
		t.Title = task.NormalizeTitle(*patch.Title)
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	tasks[i] = t

	if err := s.save(ctx, tasks); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// ToggleCompletion flips the Completed flag of the task with the given ID,
// persists, and returns the updated task. Returns task.NotFoundError when
// no task has that ID.
func (s *Store) ToggleCompletion(ctx context.Context, id string) (task.Task, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return task.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}

	tasks[i].Completed = !tasks[i].Completed

	if err := s.save(ctx, tasks); err != nil {
		return task.Task{}, err
	}
	return tasks[i], nil
}

// Delete removes the task with the given ID from the sequence.
// Reports whether a task was actually removed; the slot is rewritten only
// when a removal occurred.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return false, nil
	}

	tasks = append(tasks[:i], tasks[i+1:]...)

	if err := s.save(ctx, tasks); err != nil {
		return false, err
	}
	return true, nil
}

// load reads and decodes the current snapshot from the slot.
func (s *Store) load(ctx context.Context) ([]task.Task, error) {
	data, ok, err := s.slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !ok {
		return []task.Task{}, nil
	}
	return decodeSnapshot(data)
}

// save encodes the full sequence and rewrites the slot.
func (s *Store) save(ctx context.Context, tasks []task.Task) error {
	data, err := encodeSnapshot(tasks)
	if err != nil {
		return err
	}
	if err := s.slot.Store(ctx, data); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// indexOf returns the position of the task with the given ID, or -1.
func indexOf(tasks []task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
