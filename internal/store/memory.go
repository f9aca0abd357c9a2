package store

import (
	"context"
	"sync"

	"packrat/internal/models"
)

// Memory is an in-process Store. Useful for tests and as the zero-setup
// default backend.
type Memory struct {
	mu     sync.RWMutex
	items  []models.Item
	seeded bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadAll returns a copy of the stored collection.
func (m *Memory) ReadAll(_ context.Context) ([]models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

// WriteAll replaces the stored collection.
func (m *Memory) WriteAll(_ context.Context, items []models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]models.Item, len(items))
	copy(m.items, items)
	return nil
}

// Seeded reports whether the seed flag has been set.
func (m *Memory) Seeded(_ context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seeded, nil
}

// MarkSeeded sets the seed flag permanently.
func (m *Memory) MarkSeeded(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeded = true
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error {
	return nil
}
