package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"classeur/internal/domain"
	models "classeur/internal/domain/models/catalog"
	"classeur/internal/events"
)

// BackupService exports the catalog as a single JSON snapshot and restores
// from one. Restore is wholesale replacement: a payload missing either the
// folder structure or the document array is rejected in full and the
// current state is left untouched.
type BackupService struct {
	catalog *CatalogService
	events  *events.Emitter
	logger  *slog.Logger
}

// NewBackupService creates a new backup service.
func NewBackupService(catalog *CatalogService, emitter *events.Emitter, logger *slog.Logger) *BackupService {
	return &BackupService{catalog: catalog, events: emitter, logger: logger}
}

// Export snapshots the current state into a backup record. Size is the
// byte length of the serialized state.
func (s *BackupService) Export(name string) (*models.Backup, error) {
	folders, docs := s.catalog.ExportState()

	backup := &models.Backup{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      time.Now(),
		Folders:   folders,
		Documents: docs,
	}
	if backup.Name == "" {
		backup.Name = "backup-" + backup.Date.Format("2006-01-02")
	}

	payload, err := json.Marshal(backup)
	if err != nil {
		return nil, fmt.Errorf("serialize backup: %w", err)
	}
	backup.Size = int64(len(payload))

	s.logger.Info("backup exported",
		"id", backup.ID,
		"documents", len(docs),
		"size", backup.Size,
	)
	return backup, nil
}

// restorePayload mirrors the backup shape with raw halves so that a missing
// key can be told apart from an empty value.
type restorePayload struct {
	Folders   json.RawMessage `json:"folders"`
	Documents json.RawMessage `json:"documents"`
}

// Restore validates and applies a backup payload. The payload must contain
// both a folder structure and a document array; anything else is rejected
// without touching the current state.
func (s *BackupService) Restore(ctx context.Context, raw []byte) error {
	var payload restorePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &domain.ValidationError{
			Message: fmt.Sprintf("malformed backup: %v", err),
		}
	}
	if len(payload.Folders) == 0 || string(payload.Folders) == "null" {
		return &domain.ValidationError{
			Message: "malformed backup: missing folder structure",
		}
	}
	if len(payload.Documents) == 0 || string(payload.Documents) == "null" {
		return &domain.ValidationError{
			Message: "malformed backup: missing document array",
		}
	}

	var folders models.FolderMap
	if err := json.Unmarshal(payload.Folders, &folders); err != nil {
		return &domain.ValidationError{
			Message: fmt.Sprintf("malformed backup: folders: %v", err),
		}
	}
	var docs []models.Document
	if err := json.Unmarshal(payload.Documents, &docs); err != nil {
		return &domain.ValidationError{
			Message: fmt.Sprintf("malformed backup: documents: %v", err),
		}
	}

	if err := s.catalog.ReplaceState(ctx, folders, docs); err != nil {
		return err
	}

	s.logger.Info("backup restored", "folders", len(folders), "documents", len(docs))
	s.events.Emit(events.Event{
		Kind:    events.BackupRestored,
		Count:   len(docs),
		Message: fmt.Sprintf("backup restored: %d document(s)", len(docs)),
	})
	return nil
}
