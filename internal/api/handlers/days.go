package handlers

import (
	"net/http"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/api/models"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"

	"github.com/gin-gonic/gin"
)

// DayHandler serves the static day tables.
type DayHandler struct {
	tables model.DayTables
}

// NewDayHandler creates a new day handler.
func NewDayHandler(tables model.DayTables) *DayHandler {
	return &DayHandler{tables: tables}
}

// ListDays handles GET /api/v1/days
//
// Returns the seven weekdays in week order with their localized labels and
// pin colors, for building the day picker.
func (h *DayHandler) ListDays(c *gin.Context) {
	days := make([]models.DayInfo, len(model.WeekDays))
	for i, day := range model.WeekDays {
		days[i] = models.DayInfo{
			ID:    day,
			Label: h.tables.Labels[day],
			Color: h.tables.Colors[day],
		}
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
