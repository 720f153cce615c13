package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ctxos/desktop/backend/internal/domain/palette"
	"github.com/ctxos/desktop/backend/internal/domain/registry"
	"github.com/ctxos/desktop/backend/internal/domain/shell"
	"github.com/ctxos/desktop/backend/internal/domain/vfs"
	"github.com/ctxos/desktop/backend/internal/domain/viewer"
	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/infrastructure/monitoring"
)

// Version is reported by the root endpoint
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	apps     *registry.Catalog
	windows  *window.Manager
	tree     *vfs.Tree
	renderer *viewer.Renderer
	shell    *shell.State
	palette  *palette.Palette
	metrics  *monitoring.Metrics
	started  time.Time
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(
	apps *registry.Catalog,
	windows *window.Manager,
	tree *vfs.Tree,
	renderer *viewer.Renderer,
	state *shell.State,
	pal *palette.Palette,
	metrics *monitoring.Metrics,
) *Handlers {
	return &Handlers{
		apps:     apps,
		windows:  windows,
		tree:     tree,
		renderer: renderer,
		shell:    state,
		palette:  pal,
		metrics:  metrics,
		started:  time.Now(),
	}
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	// App catalog
	r.GET("/apps", h.ListApps)
	r.GET("/apps/:id", h.GetApp)

	// Windows
	r.GET("/windows", h.ListWindows)
	r.GET("/windows/:id", h.GetWindow)
	r.POST("/windows", h.OpenWindow)
	r.POST("/windows/open-file", h.OpenFile)
	r.POST("/windows/:id/focus", h.FocusWindow)
	r.POST("/windows/:id/minimize", h.ToggleMinimize)
	r.PUT("/windows/:id/position", h.UpdatePosition)
	r.PUT("/windows/:id/size", h.UpdateSize)
	r.DELETE("/windows/:id", h.CloseWindow)

	// Virtual file system
	r.GET("/fs/resolve", h.Resolve)
	r.GET("/fs/list", h.List)
	r.GET("/fs/glob", h.Glob)
	r.GET("/fs/render", h.Render)

	// Shell flags
	r.GET("/shell", h.ShellState)
	r.POST("/shell/boot/start", h.StartBoot)
	r.POST("/shell/boot/finish", h.FinishBoot)
	r.POST("/shell/palette/toggle", h.TogglePalette)

	// Command palette
	r.GET("/palette/search", h.SearchPalette)
	r.POST("/palette/launch", h.LaunchPalette)
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "ctxos desktop",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"windows": h.windows.Stats(),
		"apps":    h.apps.Len(),
		"files":   len(h.tree.Files()),
		"shell":   h.shell.Snapshot(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}
