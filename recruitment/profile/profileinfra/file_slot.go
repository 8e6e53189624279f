package profileinfra

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/medjobb/recruitment/profile"
)

// FileSlot keeps the profile in one JSON file
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot at path. The directory is created on first write.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Path is where the profile is stored
func (s *FileSlot) Path() string {
	return s.path
}

// Read returns the file content
func (s *FileSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, profile.ErrSlotEmpty()
		}
		return nil, profile.ErrSlotUnavailable().
			WithDetail("path", s.path).
			WithCause(err)
	}
	return data, nil
}

// Write replaces the file atomically: temp file in the same directory, then rename
func (s *FileSlot) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return s.unavailable(err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return s.unavailable(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return s.unavailable(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return s.unavailable(err)
	}
	if err := tmp.Close(); err != nil {
		return s.unavailable(err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return s.unavailable(err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return s.unavailable(err)
	}
	return nil
}

// Clear deletes the file
func (s *FileSlot) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s.unavailable(err)
	}
	return nil
}

func (s *FileSlot) unavailable(err error) error {
	return profile.ErrSlotUnavailable().
		WithDetail("path", s.path).
		WithCause(fmt.Errorf("file slot: %w", err))
}
