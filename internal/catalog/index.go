package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"classeur/internal/domain"
	models "classeur/internal/domain/models/catalog"
)

// Index is the flat collection of document records, each tagged with a
// folder path string. Linear scans are fine at the volumes this system
// targets (hundreds to low thousands of records).
type Index struct {
	docs []models.Document
}

// NewIndex creates an empty document index.
func NewIndex() *Index {
	return &Index{}
}

// Add creates one document per file metadata entry under the given path and
// returns the created records. Ids are fresh UUIDs and are never reused.
//
// The path is deliberately not checked against the folder namespace:
// importing can precede folder creation in the surrounding UI flow.
func (ix *Index) Add(path string, files []models.FileMeta) []models.Document {
	created := make([]models.Document, 0, len(files))
	for _, f := range files {
		doc := models.Document{
			ID:           uuid.NewString(),
			Name:         f.Name,
			Type:         f.Type,
			Size:         f.Size,
			LastModified: f.LastModified,
			Path:         path,
		}
		ix.docs = append(ix.docs, doc)
		created = append(created, doc)
	}
	return created
}

// Get returns a copy of the document with the given id.
func (ix *Index) Get(id string) (*models.Document, bool) {
	for i := range ix.docs {
		if ix.docs[i].ID == id {
			doc := ix.docs[i]
			return &doc, true
		}
	}
	return nil, false
}

// Remove deletes a single document. Removing an unknown id is a no-op.
func (ix *Index) Remove(id string) bool {
	for i := range ix.docs {
		if ix.docs[i].ID == id {
			ix.docs = append(ix.docs[:i], ix.docs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByPathPrefix deletes every document whose path equals pathPrefix or
// descends from it at a separator boundary, and returns how many were
// removed. Used by cascading folder deletion.
func (ix *Index) RemoveByPathPrefix(pathPrefix string) int {
	kept := ix.docs[:0]
	removed := 0
	for _, doc := range ix.docs {
		if models.PathWithin(doc.Path, pathPrefix) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	ix.docs = kept
	return removed
}

// RewritePathPrefix replaces the prefix on every matching document path,
// preserving the remainder unchanged. Used by cascading folder renames.
func (ix *Index) RewritePathPrefix(oldPrefix, newPrefix string) int {
	updated := 0
	for i := range ix.docs {
		p := ix.docs[i].Path
		switch {
		case p == oldPrefix:
			ix.docs[i].Path = newPrefix
		case strings.HasPrefix(p, oldPrefix+models.PathSeparator):
			ix.docs[i].Path = newPrefix + p[len(oldPrefix):]
		default:
			continue
		}
		updated++
	}
	return updated
}

// FindByExactPath returns the documents whose path equals the given path.
// Documents in sub-folders are not included: this populates a single
// folder's own document list.
func (ix *Index) FindByExactPath(path string) []models.Document {
	var found []models.Document
	for _, doc := range ix.docs {
		if doc.Path == path {
			found = append(found, doc)
		}
	}
	return found
}

// Classify applies a partial update of the user-mutable fields.
func (ix *Index) Classify(id string, patch models.Classification) (*models.Document, error) {
	for i := range ix.docs {
		if ix.docs[i].ID != id {
			continue
		}
		if patch.Category != nil {
			ix.docs[i].Category = *patch.Category
		}
		if patch.Tags != nil {
			tags := make([]string, len(patch.Tags))
			copy(tags, patch.Tags)
			ix.docs[i].Tags = tags
		}
		if patch.Favorite != nil {
			ix.docs[i].Favorite = *patch.Favorite
		}
		if patch.Bookmark != nil {
			ix.docs[i].Bookmark = *patch.Bookmark
		}
		doc := ix.docs[i]
		return &doc, nil
	}
	return nil, &domain.NotFoundError{
		Message: fmt.Sprintf("document %q does not exist", id),
	}
}

// All returns a snapshot of the whole collection in insertion order.
func (ix *Index) All() []models.Document {
	snapshot := make([]models.Document, len(ix.docs))
	copy(snapshot, ix.docs)
	return snapshot
}

// Count returns the number of indexed documents.
func (ix *Index) Count() int {
	return len(ix.docs)
}

// Restore replaces the whole collection with the given records.
func (ix *Index) Restore(docs []models.Document) {
	ix.docs = make([]models.Document, len(docs))
	copy(ix.docs, docs)
}
