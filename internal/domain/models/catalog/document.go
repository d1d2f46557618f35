package catalog

import (
	"strings"
	"time"
)

// Document is one indexed file. Only metadata is kept: file bytes are never
// read by this system.
type Document struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"` // MIME type, e.g. "application/pdf"
	Size         int64     `json:"size"` // bytes
	LastModified time.Time `json:"last_modified"`
	Path         string    `json:"path"` // folder path, e.g. "ESIEA > Data Science"
	Category     string    `json:"category,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Favorite     bool      `json:"favorite"`
	Bookmark     bool      `json:"bookmark"`
}

// HasTag reports whether the document carries the given tag,
// case-insensitively.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Classification is a partial update of the user-mutable document fields.
// Nil fields are left untouched; everything else on a document is immutable
// once assigned (the path changes only through folder renames).
type Classification struct {
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Favorite *bool    `json:"favorite,omitempty"`
	Bookmark *bool    `json:"bookmark,omitempty"`
}

// FileMeta is the import collaborator's view of a file: metadata only,
// no content.
type FileMeta struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}
