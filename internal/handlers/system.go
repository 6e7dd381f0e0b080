package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// staticOrNotFound serves files from the static directory for GET and HEAD.
// Everything else, and missing files, get a JSON 404.
func (h *Handler) staticOrNotFound(c *gin.Context) {
	if h.opts.StaticDir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	root := gin.Dir(h.opts.StaticDir, false)
	f, err := root.Open(c.Request.URL.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && h.log != nil {
			h.log.Warnw("static_open_failed", "path", c.Request.URL.Path, "err", err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	st, err := f.Stat()
	_ = f.Close()
	if err != nil || (st.IsDir() && !h.hasIndex(root, c.Request.URL.Path)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// gin has already set 404 for NoRoute; the file server writes its own status.
	c.Status(http.StatusOK)
	http.FileServer(root).ServeHTTP(c.Writer, c.Request)
}

func (h *Handler) hasIndex(root http.FileSystem, dir string) bool {
	f, err := root.Open(path.Join(dir, "index.html"))
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
