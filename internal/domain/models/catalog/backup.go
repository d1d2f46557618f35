package catalog

import "time"

// Backup is a full snapshot of the catalog: the folder tree in its
// serialized nested-map shape plus the flat document collection. Restore is
// wholesale replacement, never a merge.
type Backup struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Date      time.Time  `json:"date"`
	Folders   FolderMap  `json:"folders"`
	Documents []Document `json:"documents"`
	Size      int64      `json:"size"` // serialized byte length
}
