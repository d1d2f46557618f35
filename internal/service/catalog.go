package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"classeur/internal/catalog"
	"classeur/internal/config"
	"classeur/internal/domain"
	models "classeur/internal/domain/models/catalog"
	"classeur/internal/events"
	"classeur/internal/storage"
)

// CatalogService owns the folder namespace and the document index and keeps
// them consistent: folder mutations cascade into document paths, every
// accepted mutation is persisted, and an event is emitted for the caller's
// notification surface.
//
// The whole catalog is single-writer and synchronous; there is no locking
// because no operation ever runs concurrently with another.
type CatalogService struct {
	namespace *catalog.Namespace
	index     *catalog.Index
	store     storage.Adapter
	events    *events.Emitter
	logger    *slog.Logger
}

// NewCatalogService creates an empty catalog on top of the given storage.
func NewCatalogService(store storage.Adapter, emitter *events.Emitter, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		namespace: catalog.NewNamespace(),
		index:     catalog.NewIndex(),
		store:     store,
		events:    emitter,
		logger:    logger,
	}
}

// Load restores persisted state. Absent keys mean an empty catalog.
func (s *CatalogService) Load(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, storage.KeyFolders)
	if err != nil {
		return fmt.Errorf("load folders: %w", err)
	}
	if ok {
		var folders models.FolderMap
		if err := json.Unmarshal(raw, &folders); err != nil {
			return fmt.Errorf("parse persisted folders: %w", err)
		}
		s.namespace.Restore(folders)
	}

	raw, ok, err = s.store.Get(ctx, storage.KeyDocuments)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	if ok {
		var docs []models.Document
		if err := json.Unmarshal(raw, &docs); err != nil {
			return fmt.Errorf("parse persisted documents: %w", err)
		}
		s.index.Restore(docs)
	}

	s.logger.Info("catalog loaded",
		"folders", len(s.namespace.ListOptions()),
		"documents", s.index.Count(),
	)
	return nil
}

// persist serializes both halves of the state to the adapter.
func (s *CatalogService) persist(ctx context.Context) error {
	if err := s.store.Set(ctx, storage.KeyFolders, s.namespace.Export()); err != nil {
		return fmt.Errorf("persist folders: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyDocuments, s.index.All()); err != nil {
		return fmt.Errorf("persist documents: %w", err)
	}
	return nil
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	ParentPath string `json:"parent_path"` // empty = root level
	Name       string `json:"name"`
}

// RenameFolderRequest represents a folder rename request
type RenameFolderRequest struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// CreateFolder creates a new folder under the parent path (or at the root).
func (s *CatalogService) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error) {
	folder, err := s.namespace.AddFolder(req.ParentPath, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "path", folder.Path, "depth", folder.Depth)
	s.events.Emit(events.Event{
		Kind:    events.FolderCreated,
		Path:    folder.Path,
		Message: fmt.Sprintf("folder %q created", folder.Name),
	})
	return folder, nil
}

// RenameFolder renames the folder at the given path and rewrites the path
// of every document living at or under it.
func (s *CatalogService) RenameFolder(ctx context.Context, req *RenameFolderRequest) (*models.Folder, error) {
	folder, err := s.namespace.RenameFolder(req.Path, req.Name)
	if err != nil {
		return nil, err
	}

	updated := 0
	if folder.Path != req.Path {
		updated = s.index.RewritePathPrefix(req.Path, folder.Path)
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed",
		"old_path", req.Path,
		"new_path", folder.Path,
		"documents_updated", updated,
	)
	s.events.Emit(events.Event{
		Kind:    events.FolderRenamed,
		Path:    folder.Path,
		Count:   updated,
		Message: fmt.Sprintf("folder renamed to %q", folder.Name),
	})
	return folder, nil
}

// DeleteFolder removes the folder at path with its entire subtree and every
// document whose path lies under it. Returns how many documents went with
// it. Callers own any confirmation semantics; this layer just deletes.
func (s *CatalogService) DeleteFolder(ctx context.Context, path string) (int, error) {
	if err := s.namespace.DeleteFolder(path); err != nil {
		return 0, err
	}

	removed := s.index.RemoveByPathPrefix(path)
	if err := s.persist(ctx); err != nil {
		return removed, err
	}

	s.logger.Info("folder deleted", "path", path, "documents_removed", removed)
	s.events.Emit(events.Event{
		Kind:    events.FolderDeleted,
		Path:    path,
		Count:   removed,
		Message: fmt.Sprintf("folder %q deleted", path),
	})
	return removed, nil
}

// ResolveFolder returns the folder at path.
func (s *CatalogService) ResolveFolder(path string) (*models.Folder, error) {
	folder := s.namespace.Resolve(path)
	if folder == nil {
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("folder %q does not exist", path),
		}
	}
	return folder, nil
}

// ListFolderOptions enumerates every valid folder path for pickers.
func (s *CatalogService) ListFolderOptions() []string {
	return s.namespace.ListOptions()
}

// ImportRequest carries one batch of file metadata into the index.
type ImportRequest struct {
	Path  string            `json:"path"`
	Files []models.FileMeta `json:"files"`
}

// Validate checks the import request
func (r *ImportRequest) Validate() error {
	if err := validation.Validate(r.Files, validation.Required.Error("at least one file is required")); err != nil {
		return fmt.Errorf("%w: files: %v", domain.ErrValidation, err)
	}
	for i, f := range r.Files {
		err := validation.ValidateStruct(&f,
			validation.Field(&f.Name, validation.Required, validation.Length(1, config.MaxDocumentNameLength)),
			validation.Field(&f.Size, validation.Min(int64(0))),
		)
		if err != nil {
			return fmt.Errorf("%w: file %d: %v", domain.ErrValidation, i, err)
		}
	}
	return nil
}

// ImportDocuments creates one document per file under the request path.
// The path is not checked against the namespace: importing can precede
// folder creation in the surrounding flow.
func (s *CatalogService) ImportDocuments(ctx context.Context, req *ImportRequest) ([]models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	docs := s.index.Add(req.Path, req.Files)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("documents imported", "path", req.Path, "count", len(docs))
	s.events.Emit(events.Event{
		Kind:    events.DocumentsImported,
		Path:    req.Path,
		Count:   len(docs),
		Message: fmt.Sprintf("%d document(s) imported", len(docs)),
	})
	return docs, nil
}

// ListDocuments returns the documents whose path equals exactly the given
// path. Sub-folder documents are not included.
func (s *CatalogService) ListDocuments(path string) []models.Document {
	return s.index.FindByExactPath(path)
}

// GetDocument returns one document by id.
func (s *CatalogService) GetDocument(id string) (*models.Document, error) {
	doc, ok := s.index.Get(id)
	if !ok {
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("document %q does not exist", id),
		}
	}
	return doc, nil
}

// UpdateDocument applies a classification patch (category, tags, favorite,
// bookmark) to one document.
func (s *CatalogService) UpdateDocument(ctx context.Context, id string, patch models.Classification) (*models.Document, error) {
	doc, err := s.index.Classify(id, patch)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("document updated", "id", id, "name", doc.Name)
	s.events.Emit(events.Event{
		Kind:    events.DocumentUpdated,
		Path:    doc.Path,
		Message: fmt.Sprintf("document %q updated", doc.Name),
	})
	return doc, nil
}

// DeleteDocument removes one document by id.
func (s *CatalogService) DeleteDocument(ctx context.Context, id string) error {
	doc, ok := s.index.Get(id)
	if !ok {
		return &domain.NotFoundError{
			Message: fmt.Sprintf("document %q does not exist", id),
		}
	}

	s.index.Remove(id)
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("document deleted", "id", id, "name", doc.Name)
	s.events.Emit(events.Event{
		Kind:    events.DocumentDeleted,
		Path:    doc.Path,
		Message: fmt.Sprintf("document %q deleted", doc.Name),
	})
	return nil
}

// Documents returns a snapshot of the whole collection, the corpus handed
// to the search engine.
func (s *CatalogService) Documents() []models.Document {
	return s.index.All()
}

// Tree builds the nested folder/document tree for display. Each folder
// carries only the documents whose path equals its own.
func (s *CatalogService) Tree() *models.TreeNode {
	folders := s.namespace.Tree()

	var attach func(nodes []*models.FolderTreeNode)
	attach = func(nodes []*models.FolderTreeNode) {
		for _, n := range nodes {
			for _, doc := range s.index.FindByExactPath(n.Path) {
				n.Documents = append(n.Documents, models.DocumentTreeNode{
					ID:   doc.ID,
					Name: doc.Name,
					Type: doc.Type,
					Size: doc.Size,
				})
			}
			attach(n.Folders)
		}
	}
	attach(folders)

	root := &models.TreeNode{
		Folders:   folders,
		Documents: []models.DocumentTreeNode{},
	}
	for _, doc := range s.index.FindByExactPath("") {
		root.Documents = append(root.Documents, models.DocumentTreeNode{
			ID:   doc.ID,
			Name: doc.Name,
			Type: doc.Type,
			Size: doc.Size,
		})
	}
	return root
}

// ExportState returns the serializable state halves for backup.
func (s *CatalogService) ExportState() (models.FolderMap, []models.Document) {
	return s.namespace.Export(), s.index.All()
}

// ReplaceState wholesale-replaces the catalog with the given state and
// persists it. Used by backup restore; never merges.
func (s *CatalogService) ReplaceState(ctx context.Context, folders models.FolderMap, docs []models.Document) error {
	s.namespace.Restore(folders)
	s.index.Restore(docs)
	return s.persist(ctx)
}
