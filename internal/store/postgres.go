package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"packrat/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS catalog_slots (
	slot TEXT PRIMARY KEY,
	payload BYTEA NOT NULL
)`

// Postgres persists the collection in a single-row-per-slot table, keeping
// the whole-collection contract: every write replaces the full payload.
type Postgres struct {
	db *sql.DB
}

// NewPostgres connects to Postgres and ensures the slot table exists.
func NewPostgres(databaseURL string) (*Postgres, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating slot table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) readSlot(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT payload FROM catalog_slots WHERE slot = $1`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", slot, err)
	}
	return payload, nil
}

func (p *Postgres) writeSlot(ctx context.Context, slot string, payload []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO catalog_slots (slot, payload)
		VALUES ($1, $2)
		ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload`,
		slot, payload)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	return nil
}

// ReadAll loads the collection slot. Missing or undecodable payloads read
// as an empty collection.
func (p *Postgres) ReadAll(ctx context.Context) ([]models.Item, error) {
	payload, err := p.readSlot(ctx, ItemsSlot)
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
func (p *Postgres) WriteAll(ctx context.Context, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	return p.writeSlot(ctx, ItemsSlot, payload)
}

// Seeded reports whether the seed slot is present.
func (p *Postgres) Seeded(ctx context.Context) (bool, error) {
	payload, err := p.readSlot(ctx, SeededSlot)
	if err != nil {
		return false, err
	}
	return payload != nil, nil
}

// MarkSeeded writes the seed slot.
func (p *Postgres) MarkSeeded(ctx context.Context) error {
	return p.writeSlot(ctx, SeededSlot, []byte("1"))
}

// Close releases the database connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
