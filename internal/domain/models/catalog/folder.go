package catalog

import "strings"

// PathSeparator joins folder names into a path. A folder has no identity
// beyond its position in the tree; its path is the sole addressing key used
// by documents and by the index.
const PathSeparator = " > "

// MaxFolderDepth is the deepest level a folder can live at: root (0),
// sub (1), sub-sub (2). No further nesting is representable.
const MaxFolderDepth = 2

// JoinPath builds a folder path from its name segments.
func JoinPath(segments ...string) string {
	return strings.Join(segments, PathSeparator)
}

// SplitPath splits a folder path into its name segments.
// The empty path yields no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, PathSeparator)
}

// PathWithin reports whether path p lies inside folder path prefix: either
// exactly equal or a descendant at a separator boundary. A plain string
// prefix is not enough ("Data" must not match "Database").
func PathWithin(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+PathSeparator)
}

// Folder is the caller-facing view of one folder node. The path is derived
// from the node's position in the tree, never stored on it.
type Folder struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Depth int    `json:"depth"`
}

// FolderMap is the serialized shape of the folder tree: a nested
// name-to-children mapping. This is the wire/persistence format; the live
// tree is a node structure owned by the namespace.
type FolderMap map[string]FolderMap
