package vfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// Separator splits virtual path segments
const Separator = "/"

// ErrNotFound is returned when a path does not resolve
var ErrNotFound = fmt.Errorf("path %w", types.ErrNotFound)

// ErrNotAFile is returned when a folder was found where a file was required
var ErrNotAFile = fmt.Errorf("folder is not a file: %w", types.ErrInvalidTarget)

// ErrNotAFolder is returned when a file was found where a folder was required
var ErrNotAFolder = fmt.Errorf("file is not a folder: %w", types.ErrInvalidTarget)

// Tree is an immutable virtual file tree
type Tree struct {
	root *Node
}

// NewTree wraps a validated root folder
func NewTree(root *Node) (*Tree, error) {
	if err := validate(root, root.Name, true); err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

// RootName returns the name of the root folder
func (t *Tree) RootName() string {
	return t.root.Name
}

// Resolve finds the node at path. A leading segment equal to the root name is
// optional, empty segments are ignored, and a path with no segments left does
// not resolve.
func (t *Tree) Resolve(path string) (*Node, error) {
	segments := t.segments(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	}

	current := t.root
	for _, seg := range segments {
		if !current.IsFolder() {
			return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
		}
		child, ok := current.Children[seg]
		if !ok {
			return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
		}
		current = child
	}
	return current, nil
}

// ResolveFile is Resolve restricted to files
func (t *Tree) ResolveFile(path string) (*Node, error) {
	node, err := t.Resolve(path)
	if err != nil {
		return nil, err
	}
	if !node.IsFile() {
		return nil, fmt.Errorf("%q: %w", path, ErrNotAFile)
	}
	return node, nil
}

// Canonical returns the unrooted form of path ("ctx@os//a/b/" -> "a/b")
func (t *Tree) Canonical(path string) string {
	return strings.Join(t.segments(path), Separator)
}

// List returns the children of the folder at path, folders first, then by
// name. An empty path (or the bare root name) lists the root.
func (t *Tree) List(path string) ([]Entry, error) {
	folder := t.root
	prefix := t.Canonical(path)
	if prefix != "" {
		node, err := t.Resolve(prefix)
		if err != nil {
			return nil, err
		}
		if !node.IsFolder() {
			return nil, fmt.Errorf("%q: %w", path, ErrNotAFolder)
		}
		folder = node
	}

	entries := make([]Entry, 0, len(folder.Children))
	for name, child := range folder.Children {
		entry := Entry{
			Name: name,
			Path: joinPath(prefix, name),
			Type: child.Type,
		}
		if child.IsFile() {
			entry.Size = len(child.Content)
			entry.ContentType = child.ContentType()
		} else {
			entry.Size = len(child.Children)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == KindFolder
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// WalkFunc is called for every node below the root with its unrooted path
type WalkFunc func(path string, node *Node) error

// Walk visits every node below the root depth-first in name order. Returning
// an error from fn stops the walk.
func (t *Tree) Walk(fn WalkFunc) error {
	return walk("", t.root, fn)
}

// Files returns the unrooted paths of every file in walk order
func (t *Tree) Files() []string {
	var files []string
	_ = t.Walk(func(path string, node *Node) error {
		if node.IsFile() {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func walk(prefix string, folder *Node, fn WalkFunc) error {
	names := make([]string, 0, len(folder.Children))
	for name := range folder.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := folder.Children[name]
		path := joinPath(prefix, name)
		if err := fn(path, child); err != nil {
			return err
		}
		if child.IsFolder() {
			if err := walk(path, child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// segments splits path, drops empty segments and an optional leading root name
func (t *Tree) segments(path string) []string {
	raw := strings.Split(path, Separator)
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) > 0 && segments[0] == t.root.Name {
		segments = segments[1:]
	}
	return segments
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + Separator + name
}
