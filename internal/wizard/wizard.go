// Package wizard drives the multi-step item creation flow: Enter,
// Categorize, Review, Save. It owns the draft being collected and talks to
// the catalog engine only at the final commit.
package wizard

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"packrat/internal/catalog"
	"packrat/internal/classify"
	"packrat/internal/models"
	"packrat/internal/services/categorize"
)

// Step identifies the wizard's current state. Steps are linear; Back
// decrements with a floor at StepEnter.
type Step int

const (
	StepEnter Step = iota + 1
	StepCategorize
	StepReview
	StepSave
)

// String returns the step label shown in the step indicator.
func (s Step) String() string {
	switch s {
	case StepEnter:
		return "Enter"
	case StepCategorize:
		return "Categorize"
	case StepReview:
		return "Review"
	case StepSave:
		return "Save"
	default:
		return "Unknown"
	}
}

// Summary is the read-only view shown at the Review step.
type Summary struct {
	Name        string
	Description string
	Tags        string
	Quantity    int
	Category    string
}

// Wizard collects item fields across the four steps and commits through
// the engine. It is a single-user, single-flow object: one wizard per
// in-progress creation.
type Wizard struct {
	engine   *catalog.Engine
	provider categorize.Provider
	logger   *zap.Logger

	step        Step
	name        string
	description string
	tagsRaw     string
	tags        []string
	quantity    int
	category    string
	confidence  float64
	overridden  bool
}

// New returns a wizard at a fresh Enter step. The provider produces the
// category suggestion on entry to Categorize; wrap remote providers in
// categorize.Fallback so suggestion can never fail.
func New(engine *catalog.Engine, provider categorize.Provider, logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Wizard{engine: engine, provider: provider, logger: logger}
	w.reset()
	return w
}

func (w *Wizard) reset() {
	w.step = StepEnter
	w.name = ""
	w.description = ""
	w.tagsRaw = ""
	w.tags = nil
	w.quantity = models.DefaultQuantity
	w.category = ""
	w.confidence = 0
	w.overridden = false
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// SetName records the name field.
func (w *Wizard) SetName(name string) {
	w.name = name
}

// SetDescription records the description field.
func (w *Wizard) SetDescription(description string) {
	w.description = description
}

// SetTags records raw tag text and re-parses it into normalized tags, as
// happens on every edit of the tag field.
func (w *Wizard) SetTags(raw string) {
	w.tagsRaw = raw
	w.tags = catalog.ParseTags(raw)
}

// Tags returns the normalized tags parsed so far.
func (w *Wizard) Tags() []string {
	return w.tags
}

// SetQuantity parses raw quantity input, clamping to a positive integer.
func (w *Wizard) SetQuantity(raw string) {
	w.quantity = catalog.ParseQuantity(raw)
}

// SetCategory overwrites the suggested category with the user's text.
// Subsequent step transitions keep the override.
func (w *Wizard) SetCategory(category string) {
	w.category = category
	w.overridden = true
}

// Category returns the current category text.
func (w *Wizard) Category() string {
	return w.category
}

// Confidence returns the confidence of the last suggestion.
func (w *Wizard) Confidence() float64 {
	return w.confidence
}

// LowConfidence reports whether the last suggestion should prompt the user
// to confirm the category.
func (w *Wizard) LowConfidence() bool {
	return w.confidence < classify.ConfidenceThreshold
}

// Next advances one step. The Enter to Categorize transition validates the
// name and triggers categorization; other transitions have no side effect.
// At StepSave, Next is a no-op: commit happens through Save.
func (w *Wizard) Next(ctx context.Context) error {
	switch w.step {
	case StepEnter:
		if strings.TrimSpace(w.name) == "" {
			return &catalog.ValidationError{Field: "name", Reason: "name required"}
		}
		w.step = StepCategorize
		w.Categorize(ctx)
	case StepCategorize:
		w.step = StepReview
	case StepReview:
		w.step = StepSave
	case StepSave:
		// Terminal step; Save commits.
	}
	return nil
}

// Categorize invokes the provider and records its suggestion. A manual
// category override from a previous pass is kept; calling Categorize is
// the explicit way to ask for a fresh suggestion, so it clears nothing
// else. Providers wrapped in Fallback make this call infallible.
func (w *Wizard) Categorize(ctx context.Context) {
	suggestion, err := w.provider.Suggest(ctx, w.name, w.tags)
	if err != nil {
		// Only possible with a bare provider; keep whatever we had.
		w.logger.Debug("categorization_suggestion_failed", zap.Error(err))
		return
	}
	w.confidence = suggestion.Confidence
	if !w.overridden {
		w.category = suggestion.Category
	}
	if w.LowConfidence() {
		w.logger.Debug("low_confidence_suggestion",
			zap.String("category", suggestion.Category),
			zap.Float64("confidence", suggestion.Confidence),
		)
	}
}

// Back moves one step backwards, never below Enter, and never discards
// entered values.
func (w *Wizard) Back() {
	if w.step > StepEnter {
		w.step--
	}
}

// Cancel aborts the flow and discards the draft. Nothing is persisted.
func (w *Wizard) Cancel() {
	w.reset()
}

// Summary returns the read-only review of all collected fields.
func (w *Wizard) Summary() Summary {
	return Summary{
		Name:        w.name,
		Description: w.description,
		Tags:        strings.Join(w.tags, ", "),
		Quantity:    w.quantity,
		Category:    w.category,
	}
}

// Save commits the draft through the engine. On success the wizard resets
// to a fresh Enter step and returns the created item. On failure it stays
// at StepSave with every field intact so the user can retry.
func (w *Wizard) Save(ctx context.Context) (models.Item, error) {
	item, err := w.engine.Create(ctx, catalog.Draft{
		Name:        w.name,
		Description: w.description,
		Tags:        w.tags,
		Quantity:    w.quantity,
		Category:    w.category,
	})
	if err != nil {
		return models.Item{}, err
	}
	w.reset()
	return item, nil
}
