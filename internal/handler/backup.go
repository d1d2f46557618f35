package handler

import (
	"io"
	"log/slog"
	"net/http"

	"classeur/internal/httputil"
	"classeur/internal/service"
)

// BackupHandler handles backup export and restore requests
type BackupHandler struct {
	backup *service.BackupService
	logger *slog.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backup *service.BackupService, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{backup: backup, logger: logger}
}

// Export returns a full snapshot of the catalog as a downloadable backup.
// GET /api/backup?name=...
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	backup, err := h.backup.Export(r.URL.Query().Get("name"))
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+backup.Name+`.json"`)
	httputil.RespondJSON(w, http.StatusOK, backup)
}

// Restore wholesale-replaces the catalog from a backup payload. Malformed
// payloads are rejected in full; current state is left untouched.
// POST /api/backup/restore
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 50<<20)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.backup.Restore(r.Context(), raw); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
