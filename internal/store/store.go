// Package store persists the item collection as one whole-collection slot
// plus a seed flag, behind pluggable backends. Reads and writes always move
// the full collection; there is no row-level update.
package store

import (
	"context"

	"packrat/internal/models"
)

// Slot names shared by every backend. A backend maps these onto whatever
// its medium offers (keys, rows, files).
const (
	ItemsSlot  = "collection.items.v1"
	SeededSlot = "collection.seeded.v1"
)

// Store is the persistence boundary for the catalog.
//
// ReadAll returns the persisted collection. A corrupt payload is treated as
// "no data" and yields an empty collection with a nil error; only genuine
// backend failures (connection loss, I/O errors) are returned.
// WriteAll replaces the entire collection; no partial write is observable
// through this interface.
type Store interface {
	ReadAll(ctx context.Context) ([]models.Item, error)
	WriteAll(ctx context.Context, items []models.Item) error
	Seeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
	Close() error
}
