package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"packrat/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS catalog_slots (
	slot TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

// SQLite is the embedded backend: the same slot layout as Postgres, stored
// in a local database file with no server to run.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database file at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// modernc sqlite serializes access through a single connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating slot table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) readSlot(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM catalog_slots WHERE slot = ?`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", slot, err)
	}
	return payload, nil
}

func (s *SQLite) writeSlot(ctx context.Context, slot string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_slots (slot, payload) VALUES (?, ?)
		ON CONFLICT (slot) DO UPDATE SET payload = excluded.payload`,
		slot, payload)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	return nil
}

// ReadAll loads the collection slot; corrupt payloads read as empty.
func (s *SQLite) ReadAll(ctx context.Context) ([]models.Item, error) {
	payload, err := s.readSlot(ctx, ItemsSlot)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}
	var items []models.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// WriteAll replaces the collection slot.
func (s *SQLite) WriteAll(ctx context.Context, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	return s.writeSlot(ctx, ItemsSlot, payload)
}

// Seeded reports whether the seed slot is present.
func (s *SQLite) Seeded(ctx context.Context) (bool, error) {
	payload, err := s.readSlot(ctx, SeededSlot)
	if err != nil {
		return false, err
	}
	return payload != nil, nil
}

// MarkSeeded writes the seed slot.
func (s *SQLite) MarkSeeded(ctx context.Context) error {
	return s.writeSlot(ctx, SeededSlot, []byte("1"))
}

// Close closes the database file.
func (s *SQLite) Close() error {
	return s.db.Close()
}
