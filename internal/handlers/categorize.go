package handlers

import (
	"encoding/json"
	"net/http"

	"packrat/internal/services/categorize"
)

// CategorizeHandler serves the categorization endpoint the wizard's remote
// provider speaks to.
type CategorizeHandler struct {
	provider categorize.Provider
}

// NewCategorizeHandler creates a categorize handler over any provider.
func NewCategorizeHandler(provider categorize.Provider) *CategorizeHandler {
	return &CategorizeHandler{provider: provider}
}

// CategorizeRequest is the endpoint's input shape.
type CategorizeRequest struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// Categorize suggests a category for the posted name and tags.
func (h *CategorizeHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	var req CategorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	suggestion, err := h.provider.Suggest(r.Context(), req.Name, req.Tags)
	if err != nil {
		respondJSONError(w, http.StatusBadGateway, "Bad Gateway", "Categorization unavailable")
		return
	}
	respondJSON(w, http.StatusOK, suggestion)
}
