package vfs

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format identifies a tree description encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

//go:embed default_tree.yaml
var defaultTree []byte

// Default returns the built-in portfolio tree
func Default() *Tree {
	tree, err := Decode(defaultTree, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("vfs: embedded tree is invalid: %v", err))
	}
	return tree
}

// Load reads a tree description from disk, picking the decoder by extension
func Load(path string) (*Tree, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}

	tree, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree %s: %w", path, err)
	}
	return tree, nil
}

// FormatFromPath maps a file extension to a Format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported tree format: %q", filepath.Ext(path))
	}
}

// Decode parses and validates a tree description
func Decode(data []byte, format Format) (*Tree, error) {
	var root Node
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &root)
	case FormatTOML:
		err = toml.Unmarshal(data, &root)
	case FormatJSON:
		err = sonic.Unmarshal(data, &root)
	default:
		return nil, fmt.Errorf("unsupported tree format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s parse error: %w", format, err)
	}

	return NewTree(&root)
}

// validate checks node shape recursively. Names default to the map key.
func validate(node *Node, key string, isRoot bool) error {
	if node == nil {
		return fmt.Errorf("node %q is empty", key)
	}
	if node.Name == "" {
		node.Name = key
	}
	if node.Name == "" {
		return fmt.Errorf("root folder must have a name")
	}
	if !isRoot && node.Name != key {
		return fmt.Errorf("node %q is stored under key %q", node.Name, key)
	}
	if strings.Contains(node.Name, Separator) {
		return fmt.Errorf("node name %q contains %q", node.Name, Separator)
	}

	switch node.Type {
	case KindFolder:
		if node.Content != "" {
			return fmt.Errorf("folder %q has content", node.Name)
		}
		for childKey, child := range node.Children {
			if err := validate(child, childKey, false); err != nil {
				return err
			}
		}
	case KindFile:
		if isRoot {
			return fmt.Errorf("root %q must be a folder", node.Name)
		}
		if len(node.Children) > 0 {
			return fmt.Errorf("file %q has children", node.Name)
		}
	default:
		return fmt.Errorf("node %q has unknown type %q", node.Name, node.Type)
	}
	return nil
}
