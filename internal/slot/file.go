package slot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot stores the snapshot in a single file.
//
// Writes go through a temp file in the same directory followed by a rename,
// so a crash during Store leaves either the old snapshot or the new one on
// disk. The parent directory is created on first write.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file slot at the given path.
// The file is not touched until the first Store.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Path returns the file path backing this slot.
func (s *FileSlot) Path() string {
	return s.path
}

// Load implements Slot. A missing file is an absent slot, not an error.
func (s *FileSlot) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot file: %w", err)
	}
	return data, true, nil
}

// Store implements Slot via write-temp-then-rename.
func (s *FileSlot) Store(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}
