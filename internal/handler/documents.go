package handler

import (
	"log/slog"
	"net/http"

	models "classeur/internal/domain/models/catalog"
	"classeur/internal/httputil"
	"classeur/internal/service"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(catalog *service.CatalogService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{catalog: catalog, logger: logger}
}

// HealthCheck reports liveness.
// GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListDocuments returns the documents at exactly the given folder path
// (sub-folder documents are not included).
// GET /api/documents?path=...
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	docs := h.catalog.ListDocuments(path)
	if docs == nil {
		docs = []models.Document{}
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"path":      path,
		"documents": docs,
	})
}

// ImportDocuments indexes a batch of file metadata under a folder path.
// POST /api/documents/import
func (h *DocumentHandler) ImportDocuments(w http.ResponseWriter, r *http.Request) {
	var req service.ImportRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	docs, err := h.catalog.ImportDocuments(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"imported":  len(docs),
		"documents": docs,
	})
}

// GetDocument returns one document by id.
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	doc, err := h.catalog.GetDocument(id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// UpdateDocument applies a classification patch (category, tags, favorite,
// bookmark) to one document.
// PATCH /api/documents/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	var patch models.Classification
	if err := httputil.ParseJSON(w, r, &patch); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.catalog.UpdateDocument(r.Context(), id, patch)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument removes one document by id.
// DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	if err := h.catalog.DeleteDocument(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
