package window

import (
	"fmt"
	"math/rand/v2"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ctxos/desktop/backend/internal/domain/vfs"
	"github.com/ctxos/desktop/backend/internal/infrastructure/monitoring"
	"github.com/ctxos/desktop/backend/internal/shared/id"
	"github.com/ctxos/desktop/backend/internal/shared/types"
)

var (
	// ErrWindowNotFound is returned for unknown window ids
	ErrWindowNotFound = fmt.Errorf("window %w", types.ErrNotFound)
	// ErrPropsMismatch is returned when props belong to another app
	ErrPropsMismatch = fmt.Errorf("props do not match app: %w", types.ErrInvalidTarget)
)

// AppCatalog looks up application descriptors
type AppCatalog interface {
	Find(id string) (types.AppDescriptor, error)
}

// Resolver resolves virtual file paths
type Resolver interface {
	Resolve(path string) (*vfs.Node, error)
	// Canonical returns the unrooted form of path, so every spelling of one
	// file maps to the same key.
	Canonical(path string) string
}

// Options tunes window placement and identity
type Options struct {
	ZBase       int            // Counter start; the first window gets ZBase+1
	DefaultSize types.Size     // Size of new windows
	Origin      types.Position // Smallest offset of a new window
	Spread      types.Size     // Random range added to Origin, exclusive
	Rand        *rand.Rand     // Placement randomness; used under the manager lock
	NewID       func() string
	Now         func() time.Time
}

// DefaultOptions places windows at x in [50,250), y in [50,150) with a
// 700x500 size, stacking from z-index 100.
func DefaultOptions() Options {
	return Options{
		ZBase:       100,
		DefaultSize: types.Size{Width: 700, Height: 500},
		Origin:      types.Position{X: 50, Y: 50},
		Spread:      types.Size{Width: 200, Height: 100},
	}
}

// OpenResult reports the window an open call settled on
type OpenResult struct {
	Window types.Window `json:"window"`
	Reused bool         `json:"reused"` // An existing window for the same file was focused instead
}

// Manager owns the live windows and their stacking order
type Manager struct {
	mu       sync.RWMutex
	windows  []*types.Window // Protected by mu, in creation order
	zCounter int             // Protected by mu
	seq      uint64          // Protected by mu
	pending  []Event         // Protected by mu
	flushing bool            // Protected by mu

	apps    AppCatalog
	files   Resolver
	opts    Options
	logger  *zap.Logger
	metrics *monitoring.Metrics

	listenersMu  sync.RWMutex
	listeners    map[uint64]Listener
	nextListener uint64
}

// NewManager creates a window manager. Zero-valued option fields fall back
// to DefaultOptions.
func NewManager(apps AppCatalog, files Resolver, opts Options) *Manager {
	defaults := DefaultOptions()
	if opts.DefaultSize == (types.Size{}) {
		opts.DefaultSize = defaults.DefaultSize
	}
	if opts.Origin == (types.Position{}) && opts.Spread == (types.Size{}) {
		opts.Origin = defaults.Origin
		opts.Spread = defaults.Spread
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return id.NewWindowID().String() }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Manager{
		zCounter:  opts.ZBase,
		apps:      apps,
		files:     files,
		opts:      opts,
		logger:    zap.NewNop(),
		listeners: make(map[uint64]Listener),
	}
}

// WithLogger sets the diagnostics logger
func (m *Manager) WithLogger(logger *zap.Logger) *Manager {
	m.logger = logger
	return m
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// OpenWindow opens a window for appID. When props carry a file path that a
// live window already shows, that window is restored and focused instead.
// Viewer paths are stored in canonical form.
func (m *Manager) OpenWindow(appID string, props types.Props) (OpenResult, error) {
	app, err := m.apps.Find(appID)
	if err != nil {
		m.fail("open", err, zap.String("app_id", appID))
		return OpenResult{}, err
	}

	if props == nil {
		props = types.NoProps{}
	}
	if owner := props.AppID(); owner != "" && owner != appID {
		err := fmt.Errorf("%s props for %s: %w", owner, appID, ErrPropsMismatch)
		m.fail("open", err, zap.String("app_id", appID))
		return OpenResult{}, err
	}

	if vp, ok := props.(types.ViewerProps); ok {
		vp.Path = m.files.Canonical(vp.Path)
		props = vp
	}
	filePath := types.FilePathOf(props)

	m.mu.Lock()
	if filePath != "" {
		if existing := m.findByFilePath(filePath); existing != nil {
			evType := EventFocused
			if existing.IsMinimized {
				existing.IsMinimized = false
				evType = EventRestored
			}
			m.raise(existing)
			m.emit(evType, existing)
			result := OpenResult{Window: *existing, Reused: true}
			m.mu.Unlock()

			m.flush()
			m.record("open", "reused")
			m.logger.Debug("Refocused window for file",
				zap.String("window_id", result.Window.ID),
				zap.String("file_path", filePath),
			)
			return result, nil
		}
	}

	title := app.Title
	if filePath != "" {
		title = path.Base(filePath)
	}

	m.zCounter++
	w := &types.Window{
		ID:        m.opts.NewID(),
		AppID:     app.ID,
		Title:     title,
		Component: app.Component,
		Props:     props,
		Position:  m.placement(),
		Size:      m.opts.DefaultSize,
		ZIndex:    m.zCounter,
		CreatedAt: m.opts.Now(),
	}
	m.windows = append(m.windows, w)
	m.emit(EventOpened, w)
	result := OpenResult{Window: *w}
	m.publishCount()
	m.mu.Unlock()

	m.flush()
	m.record("open", "ok")
	if m.metrics != nil {
		m.metrics.RecordAppLaunch(app.ID)
	}
	m.logger.Debug("Opened window",
		zap.String("window_id", w.ID),
		zap.String("app_id", app.ID),
		zap.Int("z_index", result.Window.ZIndex),
	)
	return result, nil
}

// OpenFile resolves filePath and opens it in the app routed for its
// extension. Folders are rejected.
func (m *Manager) OpenFile(filePath string) (OpenResult, error) {
	node, err := m.files.Resolve(filePath)
	if err != nil {
		m.fail("open_file", err, zap.String("file_path", filePath))
		return OpenResult{}, err
	}
	if !node.IsFile() {
		err := fmt.Errorf("%q: %w", filePath, vfs.ErrNotAFile)
		m.fail("open_file", err, zap.String("file_path", filePath))
		return OpenResult{}, err
	}

	return m.OpenWindow(AppForFile(node.Name), types.ViewerProps{
		Path:        m.files.Canonical(filePath),
		Content:     node.Content,
		ContentType: node.ContentType(),
	})
}

// CloseWindow removes a window. Closing is final.
func (m *Manager) CloseWindow(windowID string) error {
	m.mu.Lock()
	idx := m.indexOf(windowID)
	if idx < 0 {
		m.mu.Unlock()
		return m.notFound("close", windowID)
	}

	w := m.windows[idx]
	m.windows = append(m.windows[:idx], m.windows[idx+1:]...)
	m.emit(EventClosed, w)
	m.publishCount()
	m.mu.Unlock()

	m.flush()
	m.record("close", "ok")
	return nil
}

// FocusWindow moves a window to the top of the stack
func (m *Manager) FocusWindow(windowID string) error {
	return m.mutate("focus", windowID, func(w *types.Window) EventType {
		m.raise(w)
		return EventFocused
	})
}

// ToggleMinimize flips the minimized flag and reports the new value.
// Restoring a window also focuses it.
func (m *Manager) ToggleMinimize(windowID string) (bool, error) {
	var minimized bool
	err := m.mutate("minimize", windowID, func(w *types.Window) EventType {
		w.IsMinimized = !w.IsMinimized
		minimized = w.IsMinimized
		if minimized {
			return EventMinimized
		}
		m.raise(w)
		return EventRestored
	})
	return minimized, err
}

// UpdateWindowPosition overwrites a window's position without clamping
func (m *Manager) UpdateWindowPosition(windowID string, pos types.Position) error {
	return m.mutate("move", windowID, func(w *types.Window) EventType {
		w.Position = pos
		return EventMoved
	})
}

// UpdateWindowSize overwrites a window's size without clamping
func (m *Manager) UpdateWindowSize(windowID string, size types.Size) error {
	return m.mutate("resize", windowID, func(w *types.Window) EventType {
		w.Size = size
		return EventResized
	})
}

// Get returns a copy of a window
func (m *Manager) Get(windowID string) (types.Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(windowID)
	if idx < 0 {
		return types.Window{}, false
	}
	return *m.windows[idx], true
}

// List returns copies of all windows in creation order
func (m *Manager) List() []types.Window {
	m.mu.RLock()
	defer m.mu.RUnlock()

	windows := make([]types.Window, len(m.windows))
	for i, w := range m.windows {
		windows[i] = *w
	}
	return windows
}

// Snapshot returns copies of all windows together with the sequence number
// of the last event they reflect. Subscribers registered before the call can
// skip events with Seq <= seq.
func (m *Manager) Snapshot() ([]types.Window, uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	windows := make([]types.Window, len(m.windows))
	for i, w := range m.windows {
		windows[i] = *w
	}
	return windows, m.seq
}

// Topmost returns the visible window with the highest z-index
func (m *Manager) Topmost() (types.Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	top := m.topmost()
	if top == nil {
		return types.Window{}, false
	}
	return *top, true
}

// Stats returns manager statistics
func (m *Manager) Stats() types.WindowStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := types.WindowStats{
		TotalWindows: len(m.windows),
		ZCounter:     m.zCounter,
	}
	for _, w := range m.windows {
		if w.IsMinimized {
			stats.MinimizedWindows++
		}
	}
	if top := m.topmost(); top != nil {
		topID := top.ID
		stats.TopmostID = &topID
	}
	return stats
}

// mutate applies fn to a live window and publishes the resulting event
func (m *Manager) mutate(op, windowID string, fn func(w *types.Window) EventType) error {
	m.mu.Lock()
	idx := m.indexOf(windowID)
	if idx < 0 {
		m.mu.Unlock()
		return m.notFound(op, windowID)
	}

	w := m.windows[idx]
	m.emit(fn(w), w)
	m.mu.Unlock()

	m.flush()
	m.record(op, "ok")
	return nil
}

// raise assigns the next z-index (must hold mu)
func (m *Manager) raise(w *types.Window) {
	m.zCounter++
	w.ZIndex = m.zCounter
}

// placement picks a start position inside Origin+[0,Spread) (must hold mu)
func (m *Manager) placement() types.Position {
	pos := m.opts.Origin
	if m.opts.Spread.Width > 0 {
		pos.X += m.opts.Rand.IntN(m.opts.Spread.Width)
	}
	if m.opts.Spread.Height > 0 {
		pos.Y += m.opts.Rand.IntN(m.opts.Spread.Height)
	}
	return pos
}

func (m *Manager) indexOf(windowID string) int {
	for i, w := range m.windows {
		if w.ID == windowID {
			return i
		}
	}
	return -1
}

// publishCount updates the open-windows gauge (must hold mu)
func (m *Manager) publishCount() {
	if m.metrics != nil {
		m.metrics.SetWindowsOpen(len(m.windows))
	}
}

func (m *Manager) findByFilePath(filePath string) *types.Window {
	for _, w := range m.windows {
		if w.FilePath() == filePath {
			return w
		}
	}
	return nil
}

func (m *Manager) topmost() *types.Window {
	var top *types.Window
	for _, w := range m.windows {
		if w.IsMinimized {
			continue
		}
		if top == nil || w.ZIndex > top.ZIndex {
			top = w
		}
	}
	return top
}

func (m *Manager) notFound(op, windowID string) error {
	err := fmt.Errorf("%s: %w", windowID, ErrWindowNotFound)
	m.fail(op, err, zap.String("window_id", windowID))
	return err
}

func (m *Manager) fail(op string, err error, fields ...zap.Field) {
	m.logger.Warn("Window operation ignored",
		append([]zap.Field{zap.String("op", op), zap.Error(err)}, fields...)...,
	)
	m.record(op, "error")
}

func (m *Manager) record(op, result string) {
	if m.metrics != nil {
		m.metrics.RecordWindowOp(op, result)
	}
}
