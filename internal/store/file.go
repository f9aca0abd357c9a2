package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"packrat/internal/models"
)

// File persists the collection as JSON files in a directory: one file for
// the items slot and one marker file for the seed flag. Writes go through
// a temp file plus rename so readers never observe a partial collection.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile returns a file-backed store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) itemsPath() string {
	return filepath.Join(f.dir, ItemsSlot+".json")
}

func (f *File) seededPath() string {
	return filepath.Join(f.dir, SeededSlot)
}

// ReadAll loads the collection. A missing or corrupt file is an empty
// collection, not an error.
func (f *File) ReadAll(_ context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.itemsPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading items file: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		// Malformed payload reads as no data.
		return nil, nil
	}
	return items, nil
}

// WriteAll atomically replaces the collection file.
func (f *File) WriteAll(_ context.Context, items []models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if items == nil {
		items = []models.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, "items-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing items: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.itemsPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing items file: %w", err)
	}
	return nil
}

// Seeded reports whether the seed marker file exists.
func (f *File) Seeded(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, err := os.Stat(f.seededPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking seed marker: %w", err)
	}
	return true, nil
}

// MarkSeeded creates the seed marker file.
func (f *File) MarkSeeded(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.seededPath(), []byte("1"), 0o644); err != nil {
		return fmt.Errorf("writing seed marker: %w", err)
	}
	return nil
}

// Close is a no-op; files are closed per operation.
func (f *File) Close() error {
	return nil
}
