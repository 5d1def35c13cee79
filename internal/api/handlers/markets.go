package handlers

import (
	"net/http"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/api/models"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/feria"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/render"

	"github.com/gin-gonic/gin"
)

// MarketHandler serves the filtered market views off a shared memoized View.
type MarketHandler struct {
	view   *feria.View
	tables model.DayTables
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(view *feria.View, tables model.DayTables) *MarketHandler {
	return &MarketHandler{view: view, tables: tables}
}

func criteriaFromRequest(c *gin.Context) (feria.Criteria, error) {
	req := models.MarkersRequest{
		Day:          model.FilterAll,
		Neighborhood: model.FilterAll,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return feria.Criteria{}, err
	}
	crit := feria.DefaultCriteria()
	if req.Day != "" {
		crit.Day = req.Day
	}
	if req.Neighborhood != "" {
		crit.Neighborhood = req.Neighborhood
	}
	return crit, nil
}

// ListMarkers handles GET /api/v1/markers
//
// Returns one renderable marker (position, tinted pin icon, popup HTML) per
// market passing the day/neighborhood filter.
func (h *MarketHandler) ListMarkers(c *gin.Context) {
	crit, err := criteriaFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	markets := h.view.Filtered(crit)
	markers := render.BuildMarkers(markets, h.tables)

	c.JSON(http.StatusOK, gin.H{
		"markers": markers,
		"count":   len(markers),
		"filter": gin.H{
			"day":          crit.Day,
			"neighborhood": crit.Neighborhood,
		},
	})
}

// ListMarkets handles GET /api/v1/markets
//
// The data-only view of the same filter: aggregated markets without icons or
// popup HTML.
func (h *MarketHandler) ListMarkets(c *gin.Context) {
	crit, err := criteriaFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	markets := h.view.Filtered(crit)

	c.JSON(http.StatusOK, gin.H{
		"markets": markets,
		"count":   len(markets),
	})
}

// ListNeighborhoods handles GET /api/v1/neighborhoods
func (h *MarketHandler) ListNeighborhoods(c *gin.Context) {
	slugs := h.view.Neighborhoods()
	neighborhoods := make([]models.NeighborhoodInfo, len(slugs))
	for i, slug := range slugs {
		neighborhoods[i] = models.NeighborhoodInfo{
			Slug:  slug,
			Label: render.Humanize(slug),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"neighborhoods": neighborhoods,
		"count":         len(neighborhoods),
	})
}
