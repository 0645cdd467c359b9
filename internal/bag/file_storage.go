package bag

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps the bag in a single JSON file, the durable local storage
// for a bag that lives on one machine.
type FileStorage struct {
	path string
}

// NewFileStorage stores the bag under dir as "appleBag.json".
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StorageKey+".json")}
}

func (f *FileStorage) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read bag file: %w", err)
	}
	return data, nil
}

func (f *FileStorage) Save(_ context.Context, data []byte) error {
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write bag file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
