package slot

import (
	"context"
	"sync"
)

// Slot is a single named durable location holding raw snapshot bytes.
//
// Implementations must make Store atomic with respect to crashes: after a
// failed Store the slot holds either the previous contents or the new ones,
// never a mixture. They do not coordinate concurrent writers - the store's
// read-modify-write cycle is unguarded by design.
type Slot interface {
	// Load returns the current slot contents. ok is false when the slot
	// has never been written; that is not an error.
	Load(ctx context.Context) (data []byte, ok bool, err error)

	// Store replaces the slot contents with data.
	Store(ctx context.Context, data []byte) error
}

// MemorySlot is an in-process Slot for tests and the scenario harness.
// The zero value is an absent (never written) slot ready for use.
type MemorySlot struct {
	mu      sync.Mutex
	data    []byte
	written bool
}

// NewMemorySlot creates an empty, absent memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load implements Slot.
func (s *MemorySlot) Load(ctx context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.written {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

// Store implements Slot.
func (s *MemorySlot) Store(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.written = true
	return nil
}
