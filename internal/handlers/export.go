package handlers

import (
	"net/http"

	"packrat/internal/catalog"
	"packrat/internal/export"
)

// ExportHandler serves collection exports.
type ExportHandler struct {
	engine *catalog.Engine
}

// NewExportHandler creates an export handler over the engine.
func NewExportHandler(engine *catalog.Engine) *ExportHandler {
	return &ExportHandler{engine: engine}
}

// DublinCore streams the collection as Dublin Core XML.
func (h *ExportHandler) DublinCore(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.List(r.Context(), "")
	if err != nil {
		respondEngineError(w, err)
		return
	}

	body, err := export.DublinCoreXML(items)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Export failed")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="collection-dublin-core.xml"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		// Client went away mid-stream; nothing to do.
		return
	}
}
