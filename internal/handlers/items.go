package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"packrat/internal/catalog"
	"packrat/internal/models"
)

// ItemHandler serves the item REST resource.
type ItemHandler struct {
	engine *catalog.Engine
}

// NewItemHandler creates an item handler over the engine.
func NewItemHandler(engine *catalog.Engine) *ItemHandler {
	return &ItemHandler{engine: engine}
}

// RegisterRoutes registers item routes on the given router. The router
// should already carry the /items prefix.
func (h *ItemHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListItems).Methods("GET")
	r.HandleFunc("", h.CreateItem).Methods("POST")
	r.HandleFunc("/{id}", h.GetItem).Methods("GET")
	r.HandleFunc("/{id}", h.UpdateItem).Methods("PUT")
	r.HandleFunc("/{id}", h.DeleteItem).Methods("DELETE")
	r.HandleFunc("/{id}/assets", h.AddAsset).Methods("POST")
}

// ListItems lists items, optionally filtered by ?q= name substring.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondEngineError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

// CreateItem creates an item from a draft body.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	item, err := h.engine.Create(r.Context(), draft)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// GetItem returns a single item by id.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.engine.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// UpdateItem merges a patch into an item.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var patch catalog.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	item, err := h.engine.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddAsset records attachment metadata on an item. The binary itself is
// not handled here.
func (h *ItemHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	item, err := h.engine.AddAsset(r.Context(), mux.Vars(r)["id"], asset)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}
