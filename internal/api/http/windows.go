package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/shared/types"
	"github.com/ctxos/desktop/backend/internal/shared/utils"
)

// ListApps lists the app catalog
func (h *Handlers) ListApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apps": h.apps.List()})
}

// GetApp returns one catalog entry
func (h *Handlers) GetApp(c *gin.Context) {
	appID := c.Param("id")
	if err := utils.ValidateID(appID, "app_id"); err != nil {
		badRequest(c, err)
		return
	}

	app, err := h.apps.Find(appID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListWindows lists live windows in creation order
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows": h.windows.List(),
		"stats":   h.windows.Stats(),
	})
}

// GetWindow returns one window
func (h *Handlers) GetWindow(c *gin.Context) {
	windowID, ok := h.windowID(c)
	if !ok {
		return
	}

	w, found := h.windows.Get(windowID)
	if !found {
		respondError(c, window.ErrWindowNotFound)
		return
	}
	c.JSON(http.StatusOK, w)
}

// OpenWindow opens an app window
func (h *Handlers) OpenWindow(c *gin.Context) {
	var req types.OpenWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := utils.ValidateID(req.AppID, "app_id"); err != nil {
		badRequest(c, err)
		return
	}

	props, err := types.DecodeProps(req.AppID, req.Props)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.windows.OpenWindow(req.AppID, props)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(openStatus(res), res)
}

// OpenFile opens a virtual file in its viewer app
func (h *Handlers) OpenFile(c *gin.Context) {
	var req types.OpenFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := utils.ValidatePath(req.Path, "path", true); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.windows.OpenFile(req.Path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(openStatus(res), res)
}

// FocusWindow raises a window to the top
func (h *Handlers) FocusWindow(c *gin.Context) {
	h.mutate(c, h.windows.FocusWindow)
}

// ToggleMinimize minimizes or restores a window
func (h *Handlers) ToggleMinimize(c *gin.Context) {
	windowID, ok := h.windowID(c)
	if !ok {
		return
	}

	minimized, err := h.windows.ToggleMinimize(windowID)
	if err != nil {
		respondError(c, err)
		return
	}

	w, _ := h.windows.Get(windowID)
	c.JSON(http.StatusOK, gin.H{
		"minimized": minimized,
		"window":    w,
	})
}

// UpdatePosition moves a window
func (h *Handlers) UpdatePosition(c *gin.Context) {
	var pos types.Position
	if err := c.ShouldBindJSON(&pos); err != nil {
		badRequest(c, err)
		return
	}
	h.mutate(c, func(windowID string) error {
		return h.windows.UpdateWindowPosition(windowID, pos)
	})
}

// UpdateSize resizes a window
func (h *Handlers) UpdateSize(c *gin.Context) {
	var size types.Size
	if err := c.ShouldBindJSON(&size); err != nil {
		badRequest(c, err)
		return
	}
	h.mutate(c, func(windowID string) error {
		return h.windows.UpdateWindowSize(windowID, size)
	})
}

// CloseWindow closes a window
func (h *Handlers) CloseWindow(c *gin.Context) {
	windowID, ok := h.windowID(c)
	if !ok {
		return
	}

	if err := h.windows.CloseWindow(windowID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"window_id": windowID,
	})
}

// mutate applies op to the window named in the path and returns its new state
func (h *Handlers) mutate(c *gin.Context, op func(windowID string) error) {
	windowID, ok := h.windowID(c)
	if !ok {
		return
	}

	if err := op(windowID); err != nil {
		respondError(c, err)
		return
	}

	w, _ := h.windows.Get(windowID)
	c.JSON(http.StatusOK, w)
}

func (h *Handlers) windowID(c *gin.Context) (string, bool) {
	windowID := c.Param("id")
	if err := utils.ValidateWindowID(windowID); err != nil {
		badRequest(c, err)
		return "", false
	}
	return windowID, true
}

func openStatus(res window.OpenResult) int {
	if res.Reused {
		return http.StatusOK
	}
	return http.StatusCreated
}

