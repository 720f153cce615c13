package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ctxos/desktop/backend/internal/shared/utils"
)

// Resolve returns the node at ?path=
func (h *Handlers) Resolve(c *gin.Context) {
	path := c.Query("path")
	if err := utils.ValidatePath(path, "path", true); err != nil {
		badRequest(c, err)
		return
	}

	node, err := h.tree.Resolve(path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"path":         h.tree.Canonical(path),
		"node":         node,
		"content_type": node.ContentType(),
	})
}

// List lists the folder at ?path= (the root when empty)
func (h *Handlers) List(c *gin.Context) {
	path := c.Query("path")
	if err := utils.ValidatePath(path, "path", false); err != nil {
		badRequest(c, err)
		return
	}

	entries, err := h.tree.List(path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"path":    h.tree.Canonical(path),
		"entries": entries,
	})
}

// Glob returns file paths matching ?pattern=
func (h *Handlers) Glob(c *gin.Context) {
	pattern := c.Query("pattern")
	if err := utils.ValidatePattern(pattern); err != nil {
		badRequest(c, err)
		return
	}

	matches, err := h.tree.Glob(pattern)
	if err != nil {
		respondError(c, err)
		return
	}
	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"pattern": pattern,
		"matches": matches,
	})
}

// Render renders the file at ?path= for the viewer
func (h *Handlers) Render(c *gin.Context) {
	path := c.Query("path")
	if err := utils.ValidatePath(path, "path", true); err != nil {
		badRequest(c, err)
		return
	}

	node, err := h.tree.ResolveFile(path)
	if err != nil {
		respondError(c, err)
		return
	}

	doc, err := h.renderer.Render(path, node)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
