package handlers

import (
	"net/http"

	"packrat/internal/aggregate"
	"packrat/internal/catalog"
)

// CategoryHandler serves the grouped browse view.
type CategoryHandler struct {
	engine          *catalog.Engine
	subjectPriority []string
}

// NewCategoryHandler creates a category handler. subjectPriority feeds the
// subject-derived grouping strategy.
func NewCategoryHandler(engine *catalog.Engine, subjectPriority []string) *CategoryHandler {
	return &CategoryHandler{engine: engine, subjectPriority: subjectPriority}
}

// CategorySummary is one tile of the browse view.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ListCategories groups the collection and returns per-group counts.
// ?by=subject selects the subject-derived strategy; the default groups on
// the category field.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.List(r.Context(), "")
	if err != nil {
		respondEngineError(w, err)
		return
	}

	var strategy aggregate.Strategy = aggregate.ByCategory{}
	if r.URL.Query().Get("by") == "subject" {
		strategy = aggregate.BySubject{Priority: h.subjectPriority}
	}

	groups := aggregate.Run(items, strategy)
	summaries := make([]CategorySummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, CategorySummary{Name: g.Name, Count: len(g.Items)})
	}
	respondJSON(w, http.StatusOK, summaries)
}
