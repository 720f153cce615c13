package viewer

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ctxos/desktop/backend/internal/domain/vfs"
)

// Format is how a document was rendered
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatCode     Format = "code"
	FormatText     Format = "text"
)

// DefaultStyle is the chroma style used when none is configured
const DefaultStyle = "dracula"

// Document is a file rendered for the viewer app
type Document struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Format      Format `json:"format"`
	Language    string `json:"language,omitempty"`
	ContentType string `json:"content_type"`
	HTML        string `json:"html"`
}

// Renderer turns file nodes into HTML
type Renderer struct {
	style  string
	policy *bluemonday.Policy
}

var (
	markdownOnce     sync.Once
	markdownInstance goldmark.Markdown
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// NewRenderer creates a renderer highlighting code with the named chroma
// style. Unknown styles fall back to DefaultStyle.
func NewRenderer(style string) *Renderer {
	if _, ok := styles.Registry[strings.ToLower(style)]; !ok {
		style = DefaultStyle
	}
	return &Renderer{
		style:  strings.ToLower(style),
		policy: bluemonday.UGCPolicy(),
	}
}

// Style returns the chroma style in use
func (r *Renderer) Style() string {
	return r.style
}

// Render renders the file at filePath. Markdown becomes sanitized HTML,
// everything else is syntax highlighted.
func (r *Renderer) Render(filePath string, node *vfs.Node) (Document, error) {
	if node == nil || !node.IsFile() {
		return Document{}, fmt.Errorf("render %q: %w", filePath, vfs.ErrNotAFile)
	}

	doc := Document{
		Path:        filePath,
		Name:        node.Name,
		ContentType: node.ContentType(),
	}
	if doc.Name == "" {
		doc.Name = path.Base(filePath)
	}

	switch node.Ext() {
	case "md", "markdown":
		html, err := r.renderMarkdown(node.Content)
		if err != nil {
			return Document{}, fmt.Errorf("render %q: %w", filePath, err)
		}
		doc.Format = FormatMarkdown
		doc.HTML = html
	default:
		lang, html, err := r.highlight(doc.Name, node.Content)
		if err != nil {
			return Document{}, fmt.Errorf("render %q: %w", filePath, err)
		}
		doc.Format = FormatCode
		if lang == "" {
			doc.Format = FormatText
		}
		doc.Language = lang
		doc.HTML = html
	}
	return doc, nil
}

func (r *Renderer) renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown().Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return r.policy.Sanitize(buf.String()), nil
}

// highlight returns the detected language ("" for plain text) and the
// highlighted HTML
func (r *Renderer) highlight(name, source string) (string, string, error) {
	lang := ""
	lexer := "plaintext"
	if l := lexers.Match(name); l != nil && l.Config().Name != "plaintext" {
		lang = l.Config().Name
		lexer = lang
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, lexer, "html", r.style); err != nil {
		return "", "", err
	}
	return lang, buf.String(), nil
}
