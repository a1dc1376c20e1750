// Package health serves the liveness and readiness endpoints.
package health

import (
	"log/slog"
	"maps"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler answers /health and /ready. The liveness response also reports static
// details set at startup, such as how many ranges were loaded.
type Handler struct {
	ready   func() error
	details map[string]any
}

// NewHandler returns a health handler. ready reports why the service cannot
// take traffic; a nil ready means always ready.
func NewHandler(ready func() error) *Handler {
	return &Handler{ready: ready, details: map[string]any{}}
}

// SetDetail adds key to the liveness response. It must be called before the
// handler serves requests.
func (h *Handler) SetDetail(key string, value any) {
	h.details[key] = value
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	maps.Copy(body, h.details)
	c.JSON(http.StatusOK, body)
}

// Ready handles GET /ready
func (h *Handler) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			slog.Warn("readiness check failed", "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
