package catalog

import (
	"context"

	"go.uber.org/zap"

	"packrat/internal/models"
)

// sampleDrafts are the illustrative items written on first-ever use. Each
// gets its category from the classifier, same as user-entered items.
var sampleDrafts = []Draft{
	{Name: "Toothbrush", Description: "Soft bristles", Tags: []string{"bathroom", "hygiene"}, Quantity: 2},
	{Name: "Chef Knife", Description: "8-inch stainless", Tags: []string{"kitchen", "knife"}, Quantity: 1},
	{Name: "USB-C Charger", Description: "65W fast charge", Tags: []string{"electronics", "charger"}, Quantity: 1},
}

// SeedIfNeeded populates the store with the sample collection on first use
// and sets the seed flag permanently. Once the flag is set the call is a
// no-op, so repeated startups never duplicate the samples.
func (e *Engine) SeedIfNeeded(ctx context.Context) error {
	seeded, err := e.store.Seeded(ctx)
	if err != nil {
		return &StorageError{Op: "seed check", Err: err}
	}
	if seeded {
		return nil
	}

	items := make([]models.Item, 0, len(sampleDrafts))
	for _, draft := range sampleDrafts {
		items = append(items, models.Item{
			ID:          models.NewID(),
			Name:        draft.Name,
			Description: draft.Description,
			Tags:        NormalizeTags(draft.Tags),
			Quantity:    ClampQuantity(draft.Quantity),
			Category:    e.classifier.Classify(draft.Name, draft.Tags),
			CreatedAt:   models.NowMillis(),
		})
	}

	if err := e.writeAll(ctx, items); err != nil {
		return err
	}
	if err := e.store.MarkSeeded(ctx); err != nil {
		return &StorageError{Op: "seed mark", Err: err}
	}

	e.logger.Info("collection_seeded", zap.Int("items", len(items)))
	return nil
}
