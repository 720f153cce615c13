package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ctxos/desktop/backend/internal/domain/palette"
	"github.com/ctxos/desktop/backend/internal/shared/types"
	"github.com/ctxos/desktop/backend/internal/shared/utils"
)

var errBadLimit = errors.New("limit must be a non-negative integer")

// ShellState returns the boot and palette flags
func (h *Handlers) ShellState(c *gin.Context) {
	c.JSON(http.StatusOK, h.shell.Snapshot())
}

// StartBoot begins the boot sequence
func (h *Handlers) StartBoot(c *gin.Context) {
	h.shell.StartBoot()
	c.JSON(http.StatusOK, h.shell.Snapshot())
}

// FinishBoot completes the boot sequence
func (h *Handlers) FinishBoot(c *gin.Context) {
	h.shell.FinishBoot()
	c.JSON(http.StatusOK, h.shell.Snapshot())
}

// TogglePalette shows or hides the command palette
func (h *Handlers) TogglePalette(c *gin.Context) {
	h.shell.TogglePalette()
	c.JSON(http.StatusOK, h.shell.Snapshot())
}

// SearchPalette ranks palette entries for ?q=
func (h *Handlers) SearchPalette(c *gin.Context) {
	query := c.Query("q")
	if err := utils.ValidateQuery(query); err != nil {
		badRequest(c, err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, errBadLimit)
			return
		}
		limit = n
	}

	results := h.palette.Search(query, limit)
	if results == nil {
		results = []palette.Result{}
	}
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	})
}

// LaunchPalette opens the chosen palette entry
func (h *Handlers) LaunchPalette(c *gin.Context) {
	var req types.LaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.palette.Launch(palette.Kind(req.Kind), req.Target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(openStatus(res), res)
}
