package vfs

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind distinguishes folders from files
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Node is an entry of the virtual tree. Nodes are built once at load time and
// only traversed afterwards.
type Node struct {
	Type     Kind             `json:"type" yaml:"type" toml:"type"`
	Name     string           `json:"name" yaml:"name" toml:"name"`
	Content  string           `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Children map[string]*Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// IsFolder reports whether the node is a folder
func (n *Node) IsFolder() bool {
	return n.Type == KindFolder
}

// IsFile reports whether the node is a file
func (n *Node) IsFile() bool {
	return n.Type == KindFile
}

// Ext returns the lower-cased extension of the node name without the dot
func (n *Node) Ext() string {
	i := strings.LastIndexByte(n.Name, '.')
	if i < 0 || i == len(n.Name)-1 {
		return ""
	}
	return strings.ToLower(n.Name[i+1:])
}

// ContentType sniffs the MIME type of a file's content. Folders report
// "inode/directory".
func (n *Node) ContentType() string {
	if n.IsFolder() {
		return "inode/directory"
	}
	return mimetype.Detect([]byte(n.Content)).String()
}

// Entry is a listing row for a folder's child
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        Kind   `json:"type"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}
