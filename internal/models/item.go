package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQuantity is the quantity assumed when input is missing or unusable.
const DefaultQuantity = 1

// Item is a cataloged physical object in the collection.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	CreatedAt   int64     `json:"createdAt"` // epoch milliseconds
	Advanced    *Advanced `json:"advanced,omitempty"`
	Assets      []Asset   `json:"assets,omitempty"`
}

// NewID returns a fresh opaque item identifier.
func NewID() string {
	return uuid.New().String()
}

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Created returns the item's creation time.
func (i *Item) Created() time.Time {
	return time.UnixMilli(i.CreatedAt)
}

// Asset records metadata about a binary attachment. The binary itself is
// handled elsewhere; the catalog only keeps the descriptive record.
type Asset struct {
	ID       string         `json:"id"`
	FilePath string         `json:"file_path"`
	MimeType string         `json:"mime_type,omitempty"`
	Bytes    int64          `json:"bytes"`
	Checksum string         `json:"checksum,omitempty"`
	EXIF     map[string]any `json:"exif,omitempty"`
	OCR      map[string]any `json:"ocr,omitempty"`
	Primary  bool           `json:"is_primary"`
}
