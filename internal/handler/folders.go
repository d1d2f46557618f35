package handler

import (
	"log/slog"
	"net/http"

	"classeur/internal/httputil"
	"classeur/internal/service"
)

// FolderHandler handles folder HTTP requests. Folders are addressed by
// their " > "-joined path, carried in the body or the path query parameter
// rather than the URL path.
type FolderHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(catalog *service.CatalogService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{catalog: catalog, logger: logger}
}

// ListFolders enumerates every valid folder path for pickers.
// GET /api/folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	paths := h.catalog.ListFolderOptions()
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"paths": paths,
	})
}

// CreateFolder creates a new folder under parent_path (or at the root).
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.catalog.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// RenameFolder renames the folder at the given path.
// PATCH /api/folders
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	var req service.RenameFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		httputil.RespondError(w, http.StatusBadRequest, "path is required")
		return
	}

	folder, err := h.catalog.RenameFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder removes the folder and every document under it.
// DELETE /api/folders?path=...
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.RespondError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}

	removed, err := h.catalog.DeleteFolder(r.Context(), path)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"deleted":           path,
		"documents_removed": removed,
	})
}
