package catalog

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"classeur/internal/config"
	"classeur/internal/domain"
	models "classeur/internal/domain/models/catalog"
)

// node is one folder in the live tree. It owns a name-to-child mapping plus
// an insertion-order slice so that enumeration stays stable across renames.
type node struct {
	name     string
	depth    int
	parent   *node
	children map[string]*node
	order    []string
}

func newNode(name string, parent *node, depth int) *node {
	return &node{
		name:     name,
		depth:    depth,
		parent:   parent,
		children: make(map[string]*node),
	}
}

// path recomputes the " > "-joined path from the node's ancestry.
func (n *node) path() string {
	if n.parent == nil {
		return "" // sentinel root
	}
	segments := []string{n.name}
	for p := n.parent; p.parent != nil; p = p.parent {
		segments = append([]string{p.name}, segments...)
	}
	return models.JoinPath(segments...)
}

func (n *node) view() *models.Folder {
	return &models.Folder{
		Name:  n.name,
		Path:  n.path(),
		Depth: n.depth,
	}
}

// Namespace owns the folder tree and its path-addressed mutations.
// It never touches documents: cascading index updates are the caller's job,
// keyed off the paths these operations take and return.
type Namespace struct {
	root *node // sentinel; its children are the depth-0 folders
}

// NewNamespace creates an empty folder namespace.
func NewNamespace() *Namespace {
	return &Namespace{root: newNode("", nil, -1)}
}

// validateName checks the folder-name rules shared by create and rename:
// required, at least 2 characters, bounded length, and no path separator
// inside a single name.
func validateName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error("folder name is required"),
		validation.Length(config.MinFolderNameLength, config.MaxFolderNameLength),
	)
	if err != nil {
		return fmt.Errorf("%w: folder name: %v", domain.ErrValidation, err)
	}
	if strings.Contains(name, models.PathSeparator) {
		return fmt.Errorf("%w: folder name cannot contain %q", domain.ErrValidation, models.PathSeparator)
	}
	return nil
}

// resolveNode walks the tree along the path segments.
func (ns *Namespace) resolveNode(path string) *node {
	current := ns.root
	for _, segment := range models.SplitPath(path) {
		child, ok := current.children[segment]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// Resolve returns the folder at the given path, or nil if any segment is
// missing. The empty path resolves to nil: the root is not itself a folder.
func (ns *Namespace) Resolve(path string) *models.Folder {
	if path == "" {
		return nil
	}
	n := ns.resolveNode(path)
	if n == nil {
		return nil
	}
	return n.view()
}

// AddFolder creates a new child under parentPath, or a root folder when
// parentPath is empty. All failures are rejected before any mutation.
func (ns *Namespace) AddFolder(parentPath, name string) (*models.Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	parent := ns.resolveNode(parentPath)
	if parent == nil {
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("parent folder %q does not exist", parentPath),
		}
	}
	if parent.depth >= models.MaxFolderDepth {
		return nil, fmt.Errorf("%w: folders cannot be nested more than %d levels deep",
			domain.ErrValidation, models.MaxFolderDepth+1)
	}
	if existing, ok := parent.children[name]; ok {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("a folder named %q already exists in this location", name),
			ResourceType: "folder",
			ResourcePath: existing.path(),
		}
	}

	child := newNode(name, parent, parent.depth+1)
	parent.children[name] = child
	parent.order = append(parent.order, name)
	return child.view(), nil
}

// RenameFolder changes the name of the folder at path. The folder's own path
// and those of all its descendants are derived, so they follow automatically;
// the caller must rewrite document paths from the old prefix to the new one.
func (ns *Namespace) RenameFolder(path, newName string) (*models.Folder, error) {
	if err := validateName(newName); err != nil {
		return nil, err
	}

	n := ns.resolveNode(path)
	if n == nil || n == ns.root {
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("folder %q does not exist", path),
		}
	}
	if n.name == newName {
		return n.view(), nil
	}
	if existing, ok := n.parent.children[newName]; ok {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("a folder named %q already exists in this location", newName),
			ResourceType: "folder",
			ResourcePath: existing.path(),
		}
	}

	delete(n.parent.children, n.name)
	for i, name := range n.parent.order {
		if name == n.name {
			n.parent.order[i] = newName
			break
		}
	}
	n.name = newName
	n.parent.children[newName] = n
	return n.view(), nil
}

// DeleteFolder detaches the folder at path together with its entire subtree.
// Destructive and irreversible at this layer; the caller removes the
// documents living under the deleted path.
func (ns *Namespace) DeleteFolder(path string) error {
	n := ns.resolveNode(path)
	if n == nil || n == ns.root {
		return &domain.NotFoundError{
			Message: fmt.Sprintf("folder %q does not exist", path),
		}
	}

	delete(n.parent.children, n.name)
	for i, name := range n.parent.order {
		if name == n.name {
			n.parent.order = append(n.parent.order[:i], n.parent.order[i+1:]...)
			break
		}
	}
	n.parent = nil
	return nil
}

// ListOptions enumerates every valid folder path in insertion-order
// preorder traversal, for use in folder pickers.
func (ns *Namespace) ListOptions() []string {
	var paths []string
	var walk func(n *node)
	walk = func(n *node) {
		for _, name := range n.order {
			child := n.children[name]
			paths = append(paths, child.path())
			walk(child)
		}
	}
	walk(ns.root)
	return paths
}

// Tree builds the nested folder skeleton for display. Documents are
// attached by the caller.
func (ns *Namespace) Tree() []*models.FolderTreeNode {
	var build func(n *node) []*models.FolderTreeNode
	build = func(n *node) []*models.FolderTreeNode {
		nodes := make([]*models.FolderTreeNode, 0, len(n.order))
		for _, name := range n.order {
			child := n.children[name]
			nodes = append(nodes, &models.FolderTreeNode{
				Name:      child.name,
				Path:      child.path(),
				Depth:     child.depth,
				Folders:   build(child),
				Documents: []models.DocumentTreeNode{},
			})
		}
		return nodes
	}
	return build(ns.root)
}

// Export serializes the tree into its nested name-to-children mapping.
func (ns *Namespace) Export() models.FolderMap {
	var export func(n *node) models.FolderMap
	export = func(n *node) models.FolderMap {
		m := make(models.FolderMap, len(n.children))
		for name, child := range n.children {
			m[name] = export(child)
		}
		return m
	}
	return export(ns.root)
}

// Restore replaces the whole tree with the given serialized mapping.
// Sibling names are loaded in sorted order: the JSON object form carries no
// ordering, so sorting keeps enumeration deterministic across restores.
// Nesting below the depth ceiling is dropped rather than rejected.
func (ns *Namespace) Restore(m models.FolderMap) {
	root := newNode("", nil, -1)
	var load func(parent *node, children models.FolderMap)
	load = func(parent *node, children models.FolderMap) {
		if parent.depth >= models.MaxFolderDepth {
			return
		}
		names := make([]string, 0, len(children))
		for name := range children {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			child := newNode(name, parent, parent.depth+1)
			parent.children[name] = child
			parent.order = append(parent.order, name)
			load(child, children[name])
		}
	}
	load(root, m)
	ns.root = root
}
