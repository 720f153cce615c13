package vfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlTree = `
type: folder
name: desk
children:
  docs:
    type: folder
    children:
      a.md:
        type: file
        content: "# A"
`

const tomlTree = `
type = "folder"
name = "desk"

[children.docs]
type = "folder"

[children.docs.children."a.md"]
type = "file"
content = "# A"
`

const jsonTree = `{
  "type": "folder",
  "name": "desk",
  "children": {
    "docs": {
      "type": "folder",
      "children": {
        "a.md": {"type": "file", "content": "# A"}
      }
    }
  }
}`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, yamlTree},
		{FormatTOML, tomlTree},
		{FormatJSON, jsonTree},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			tree, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "desk", tree.RootName())

			node, err := tree.Resolve("desk/docs/a.md")
			require.NoError(t, err)
			assert.Equal(t, "a.md", node.Name, "name is filled from the key")
			assert.Equal(t, "# A", node.Content)

			folder, err := tree.Resolve("docs")
			require.NoError(t, err)
			assert.Equal(t, "docs", folder.Name)
		})
	}
}

func TestDecodeRejectsMalformedTrees(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"root is a file", `{"type": "file", "name": "x"}`},
		{"root without name", `{"type": "folder"}`},
		{"unknown type", `{"type": "folder", "name": "r", "children": {"a": {"type": "link"}}}`},
		{"file with children", `{"type": "folder", "name": "r", "children": {"a": {"type": "file", "children": {"b": {"type": "file"}}}}}`},
		{"folder with content", `{"type": "folder", "name": "r", "children": {"a": {"type": "folder", "content": "x"}}}`},
		{"name mismatch", `{"type": "folder", "name": "r", "children": {"a": {"type": "file", "name": "b"}}}`},
		{"null child", `{"type": "folder", "name": "r", "children": {"a": null}}`},
		{"syntax error", `{"type": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte(jsonTree), Format("xml"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"tree.yaml": FormatYAML,
		"tree.YML":  FormatYAML,
		"tree.toml": FormatTOML,
		"tree.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("tree.xml")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlTree), 0o644))

	tree, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.md"}, tree.Files())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultTreeMatchesPortfolio(t *testing.T) {
	tree := Default()

	assert.Equal(t, "ctx@os", tree.RootName())

	readme, err := tree.Resolve("Projects/ctx-os/README.md")
	require.NoError(t, err)
	assert.Contains(t, readme.Content, "# CtxOS v2\n\n")
	assert.Contains(t, readme.Content, "- Simulated File System")

	tool, err := tree.Resolve("Projects/pentesting-tool.py")
	require.NoError(t, err)
	assert.Equal(t, "# A Python script for a cool tool I built...", tool.Content)
}
