package palette

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// Kind distinguishes palette entries
type Kind string

const (
	KindApp  Kind = "app"
	KindFile Kind = "file"
)

// ErrUnknownKind is returned when launching an entry of an unknown kind
var ErrUnknownKind = fmt.Errorf("palette entry kind: %w", types.ErrInvalidTarget)

// Entry is one launchable palette item
type Entry struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target"` // App id or file path
	Label  string `json:"label"`
	Icon   string `json:"icon,omitempty"`
}

// Result is a ranked search hit
type Result struct {
	Entry
	Score   int   `json:"score"`
	Matched []int `json:"matched,omitempty"` // Rune offsets into Label
}

// AppLister lists launchable apps
type AppLister interface {
	List() []types.AppDescriptor
}

// FileLister lists openable file paths
type FileLister interface {
	Files() []string
}

// Launcher opens windows
type Launcher interface {
	OpenWindow(appID string, props types.Props) (window.OpenResult, error)
	OpenFile(path string) (window.OpenResult, error)
}

// Closer hides the palette after a launch
type Closer interface {
	ClosePalette()
}

// Palette searches apps and files and launches the chosen one
type Palette struct {
	apps     AppLister
	files    FileLister
	launcher Launcher
	closer   Closer
	logger   *zap.Logger
}

// New creates a command palette
func New(apps AppLister, files FileLister, launcher Launcher, logger *zap.Logger) *Palette {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Palette{apps: apps, files: files, launcher: launcher, logger: logger}
}

// WithCloser hides the palette through c after each successful launch
func (p *Palette) WithCloser(c Closer) *Palette {
	p.closer = c
	return p
}

// Entries returns every launchable item, apps first
func (p *Palette) Entries() []Entry {
	apps := p.apps.List()
	files := p.files.Files()

	entries := make([]Entry, 0, len(apps)+len(files))
	for _, app := range apps {
		entries = append(entries, Entry{Kind: KindApp, Target: app.ID, Label: app.Title, Icon: app.Icon})
	}
	for _, f := range files {
		entries = append(entries, Entry{Kind: KindFile, Target: f, Label: f, Icon: "FileText"})
	}
	return entries
}

// Search ranks entries against query. A blank query returns entries in
// their natural order. limit <= 0 means no limit.
func (p *Palette) Search(query string, limit int) []Result {
	entries := p.Entries()
	query = strings.TrimSpace(query)

	var results []Result
	if query == "" {
		results = make([]Result, len(entries))
		for i, e := range entries {
			results[i] = Result{Entry: e}
		}
	} else {
		matches := fuzzy.FindFrom(query, source(entries))
		results = make([]Result, len(matches))
		for i, m := range matches {
			results[i] = Result{Entry: entries[m.Index], Score: m.Score, Matched: m.MatchedIndexes}
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Launch opens the window for an entry
func (p *Palette) Launch(kind Kind, target string) (window.OpenResult, error) {
	var (
		res window.OpenResult
		err error
	)
	switch kind {
	case KindApp:
		res, err = p.launcher.OpenWindow(target, types.NoProps{})
	case KindFile:
		res, err = p.launcher.OpenFile(target)
	default:
		err = fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	if err != nil {
		p.logger.Warn("Palette launch failed",
			zap.String("kind", string(kind)),
			zap.String("target", target),
			zap.Error(err),
		)
		return window.OpenResult{}, err
	}

	if p.closer != nil {
		p.closer.ClosePalette()
	}
	return res, nil
}

// source adapts entries to fuzzy.Source
type source []Entry

func (s source) String(i int) string { return s[i].Label }
func (s source) Len() int            { return len(s) }
