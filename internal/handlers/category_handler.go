package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/middleware"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/query"
)

type CategorySummary struct {
	Name       string `json:"name"`
	EventCount int    `json:"event_count"`
}

func ListCategories(c *gin.Context) {
	deps := middleware.GetDeps(c)
	if deps == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	ctx := c.Request.Context()
	events := deps.Store.Events(ctx)

	categories := make([]CategorySummary, 0)
	for _, name := range deps.Store.Categories(ctx) {
		matching := query.Filter(events, models.EventFilters{Category: name})
		categories = append(categories, CategorySummary{Name: name, EventCount: len(matching)})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      len(categories),
	})
}
