// Package vfs provides the simulated file system shown on the desktop.
//
// The tree is loaded once at startup, either from the embedded portfolio tree
// or from a YAML, TOML or JSON description, and is never mutated afterwards.
//
// Paths are slash separated and relative to the root folder. The root's own
// name may prefix a path, so "ctx@os/about-me.md" and "about-me.md" address the
// same file. The root itself is not addressable through Resolve; use
// List("") instead.
//
// Example Usage:
//
//	tree := vfs.Default()
//	node, err := tree.Resolve("Projects/ctx-os/README.md")
//	if errors.Is(err, types.ErrNotFound) {
//	    ...
//	}
package vfs
