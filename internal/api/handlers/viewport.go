package handlers

import (
	"net/http"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/config"

	"github.com/gin-gonic/gin"
)

// ViewportHandler serves the map viewport configuration.
type ViewportHandler struct {
	mapCfg config.MapConfig
}

// NewViewportHandler creates a new viewport handler.
func NewViewportHandler(mapCfg config.MapConfig) *ViewportHandler {
	return &ViewportHandler{mapCfg: mapCfg}
}

// GetViewport handles GET /api/v1/map
//
// The client uses this to initialize the map surface: center, zoom and the
// tile layer URL with its attribution text.
func (h *ViewportHandler) GetViewport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"map": h.mapCfg})
}
