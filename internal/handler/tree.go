package handler

import (
	"log/slog"
	"net/http"

	"classeur/internal/httputil"
	"classeur/internal/service"
)

// TreeHandler handles HTTP requests for the catalog tree
type TreeHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(catalog *service.CatalogService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{catalog: catalog, logger: logger}
}

// GetTree returns the nested folder/document tree
// GET /api/tree
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.catalog.Tree())
}
