// Package catalog implements item-level CRUD over the whole-collection
// store, with automatic classification when no category is supplied.
package catalog

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"packrat/internal/classify"
	"packrat/internal/models"
	"packrat/internal/store"
)

var validate = validator.New()

// Draft is the input for creating an item. Zero Quantity is coerced to 1;
// an empty Category is filled in by the classifier.
type Draft struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Quantity    int      `json:"quantity"`
	Category    string   `json:"category"`
}

// Patch carries partial updates. Nil pointer fields are left unchanged.
// A nil Tags slice is unchanged; an empty non-nil slice clears the tags.
// Advanced merges field-by-field into the item's existing record.
type Patch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Advanced    *models.Advanced `json:"advanced,omitempty"`
}

// Engine is the catalog engine: synchronous read-modify-write operations
// over the full collection. It never presents UI and only logs through the
// provided structured logger.
type Engine struct {
	store      store.Store
	classifier *classify.Classifier
	logger     *zap.Logger
}

// New builds an engine over the given store and classifier. A nil logger
// keeps the engine silent.
func New(s store.Store, c *classify.Classifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: s, classifier: c, logger: logger}
}

// Classifier exposes the engine's classifier for collaborators such as the
// local categorization provider.
func (e *Engine) Classifier() *classify.Classifier {
	return e.classifier
}

// readAll applies the read degradation policy: storage read failures log a
// warning and read as an empty collection, never an error.
func (e *Engine) readAll(ctx context.Context) []models.Item {
	items, err := e.store.ReadAll(ctx)
	if err != nil {
		e.logger.Warn("collection_read_failed_treating_as_empty", zap.Error(err))
		return nil
	}
	return items
}

// writeAll persists the full collection, surfacing failures as StorageError.
func (e *Engine) writeAll(ctx context.Context, items []models.Item) error {
	if err := e.store.WriteAll(ctx, items); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

// Create validates and normalizes draft, classifies it when no category is
// given, assigns identity and creation time, and persists it.
func (e *Engine) Create(ctx context.Context, draft Draft) (models.Item, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := validate.Struct(draft); err != nil {
		return models.Item{}, &ValidationError{Field: "name", Reason: "name required"}
	}

	tags := NormalizeTags(draft.Tags)
	category := strings.TrimSpace(draft.Category)
	if category == "" {
		category = e.classifier.Classify(draft.Name, tags)
	}

	item := models.Item{
		ID:          models.NewID(),
		Name:        draft.Name,
		Description: strings.TrimSpace(draft.Description),
		Tags:        tags,
		Quantity:    ClampQuantity(draft.Quantity),
		Category:    category,
		CreatedAt:   models.NowMillis(),
	}

	items := append(e.readAll(ctx), item)
	if err := e.writeAll(ctx, items); err != nil {
		return models.Item{}, err
	}

	e.logger.Debug("item_created",
		zap.String("item_id", item.ID),
		zap.String("category", item.Category),
	)
	return item, nil
}

// Get returns the item with the given id.
func (e *Engine) Get(ctx context.Context, id string) (models.Item, error) {
	for _, item := range e.readAll(ctx) {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, &NotFoundError{ID: id}
}

// Update merges patch into the item with the given id and persists the
// collection. The Advanced sub-record merges key-by-key rather than being
// replaced wholesale.
func (e *Engine) Update(ctx context.Context, id string, patch Patch) (models.Item, error) {
	items := e.readAll(ctx)
	idx := indexOf(items, id)
	if idx < 0 {
		return models.Item{}, &NotFoundError{ID: id}
	}

	item := items[idx]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.Item{}, &ValidationError{Field: "name", Reason: "name required"}
		}
		item.Name = name
	}
	if patch.Description != nil {
		item.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Tags != nil {
		item.Tags = NormalizeTags(patch.Tags)
	}
	if patch.Quantity != nil {
		item.Quantity = ClampQuantity(*patch.Quantity)
	}
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if category == "" {
			return models.Item{}, &ValidationError{Field: "category", Reason: "category cannot be empty"}
		}
		item.Category = category
	}
	if patch.Advanced != nil {
		if item.Advanced == nil {
			item.Advanced = &models.Advanced{}
		} else {
			item.Advanced = item.Advanced.Clone()
		}
		item.Advanced.Merge(patch.Advanced)
	}

	items[idx] = item
	if err := e.writeAll(ctx, items); err != nil {
		return models.Item{}, err
	}

	e.logger.Debug("item_updated", zap.String("item_id", id))
	return item, nil
}

// Delete removes the item with the given id and persists the collection.
func (e *Engine) Delete(ctx context.Context, id string) error {
	items := e.readAll(ctx)
	idx := indexOf(items, id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := e.writeAll(ctx, items); err != nil {
		return err
	}

	e.logger.Debug("item_deleted", zap.String("item_id", id))
	return nil
}

// List returns all items, optionally filtered by a case-insensitive
// substring match on name.
func (e *Engine) List(ctx context.Context, query string) ([]models.Item, error) {
	items := e.readAll(ctx)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}

	var matched []models.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// AddAsset attaches asset metadata to an item. Binary handling happens
// outside the engine; only the record is stored.
func (e *Engine) AddAsset(ctx context.Context, id string, asset models.Asset) (models.Item, error) {
	items := e.readAll(ctx)
	idx := indexOf(items, id)
	if idx < 0 {
		return models.Item{}, &NotFoundError{ID: id}
	}

	if asset.ID == "" {
		asset.ID = models.NewID()
	}
	if strings.TrimSpace(asset.FilePath) == "" {
		return models.Item{}, &ValidationError{Field: "file_path", Reason: "file path required"}
	}

	item := items[idx]
	item.Assets = append(append([]models.Asset(nil), item.Assets...), asset)
	items[idx] = item
	if err := e.writeAll(ctx, items); err != nil {
		return models.Item{}, err
	}

	e.logger.Debug("asset_recorded",
		zap.String("item_id", id),
		zap.String("asset_id", asset.ID),
	)
	return item, nil
}

func indexOf(items []models.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
