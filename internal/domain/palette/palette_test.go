package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ctxos/desktop/backend/internal/domain/registry"
	"github.com/ctxos/desktop/backend/internal/domain/shell"
	"github.com/ctxos/desktop/backend/internal/domain/vfs"
	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/shared/types"
)

type mockLauncher struct {
	mock.Mock
}

func (l *mockLauncher) OpenWindow(appID string, props types.Props) (window.OpenResult, error) {
	args := l.Called(appID, props)
	return args.Get(0).(window.OpenResult), args.Error(1)
}

func (l *mockLauncher) OpenFile(path string) (window.OpenResult, error) {
	args := l.Called(path)
	return args.Get(0).(window.OpenResult), args.Error(1)
}

func newPalette(t *testing.T) (*Palette, *window.Manager) {
	t.Helper()
	apps := registry.Default()
	tree := vfs.Default()
	wm := window.NewManager(apps, tree, window.DefaultOptions())
	return New(apps, tree, wm, nil), wm
}

func TestEntries(t *testing.T) {
	p, _ := newPalette(t)

	entries := p.Entries()
	require.Len(t, entries, 8)
	assert.Equal(t, Entry{Kind: KindApp, Target: "terminal", Label: "Terminal", Icon: "TerminalSquare"}, entries[0])
	assert.Equal(t, KindFile, entries[5].Kind)
	assert.Equal(t, "Projects/ctx-os/README.md", entries[5].Target)
}

func TestSearch(t *testing.T) {
	p, _ := newPalette(t)

	tests := []struct {
		name  string
		query string
		limit int
		first string
		count int
	}{
		{name: "blank returns all", query: "  ", count: 8, first: "terminal"},
		{name: "blank with limit", query: "", limit: 3, count: 3, first: "terminal"},
		{name: "app title", query: "term", first: "terminal"},
		{name: "file path", query: "about", first: "about-me.md"},
		{name: "subsequence", query: "pntst", first: "Projects/pentesting-tool.py"},
		{name: "no match", query: "zzzz", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := p.Search(tt.query, tt.limit)
			if tt.count > 0 || tt.first == "" {
				assert.Len(t, results, tt.count)
			}
			if tt.first != "" {
				require.NotEmpty(t, results)
				assert.Equal(t, tt.first, results[0].Target)
			}
		})
	}
}

func TestSearchRanksByScore(t *testing.T) {
	p, _ := newPalette(t)

	results := p.Search("e", 0)
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	for _, r := range results {
		assert.NotEmpty(t, r.Matched)
	}
}

func TestLaunchThroughManager(t *testing.T) {
	p, wm := newPalette(t)
	state := shell.NewState(nil)
	p.WithCloser(state)

	state.TogglePalette()
	res, err := p.Launch(KindFile, "about-me.md")
	require.NoError(t, err)
	assert.Equal(t, types.AppViewer, res.Window.AppID)
	assert.False(t, state.Snapshot().PaletteOpen)

	res, err = p.Launch(KindApp, types.AppSettings)
	require.NoError(t, err)
	assert.Equal(t, "Settings", res.Window.Title)
	assert.Len(t, wm.List(), 2)
}

func TestLaunchFailures(t *testing.T) {
	p, wm := newPalette(t)
	state := shell.NewState(nil)
	p.WithCloser(state)
	state.TogglePalette()

	_, err := p.Launch(KindApp, "nonexistent_app")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = p.Launch(KindFile, "Projects")
	assert.ErrorIs(t, err, types.ErrInvalidTarget)

	_, err = p.Launch("widget", "x")
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.Empty(t, wm.List())
	assert.True(t, state.Snapshot().PaletteOpen)
}

func TestLaunchUsesLauncher(t *testing.T) {
	launcher := new(mockLauncher)
	launcher.On("OpenWindow", types.AppTerminal, types.NoProps{}).
		Return(window.OpenResult{Window: types.Window{ID: "win_1"}}, nil).
		Once()

	p := New(registry.Default(), vfs.Default(), launcher, nil)

	res, err := p.Launch(KindApp, types.AppTerminal)
	require.NoError(t, err)
	assert.Equal(t, "win_1", res.Window.ID)
	launcher.AssertExpectations(t)
}
