package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"packrat/internal/models"
)

// Redis persists the collection in two Redis keys, one per slot.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis using a URL (redis://host:port/db).
func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// ReadAll loads the collection from the items key. A missing key or a
// payload that fails to decode is an empty collection.
func (r *Redis) ReadAll(ctx context.Context) ([]models.Item, error) {
	data, err := r.client.Get(ctx, ItemsSlot).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading items key: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// WriteAll replaces the items key with the serialized collection.
func (r *Redis) WriteAll(ctx context.Context, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	if err := r.client.Set(ctx, ItemsSlot, data, 0).Err(); err != nil {
		return fmt.Errorf("writing items key: %w", err)
	}
	return nil
}

// Seeded reports whether the seed key exists.
func (r *Redis) Seeded(ctx context.Context) (bool, error) {
	n, err := r.client.Exists(ctx, SeededSlot).Result()
	if err != nil {
		return false, fmt.Errorf("checking seed key: %w", err)
	}
	return n > 0, nil
}

// MarkSeeded sets the seed key.
func (r *Redis) MarkSeeded(ctx context.Context) error {
	if err := r.client.Set(ctx, SeededSlot, "1", 0).Err(); err != nil {
		return fmt.Errorf("writing seed key: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
