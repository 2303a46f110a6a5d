package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/dashboard"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/middleware"
)

// GetDashboard returns stats and event rows for the organizer or admin.
func GetDashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	deps := middleware.GetDeps(c)
	ctx := c.Request.Context()
	if err := helpers.Wait(ctx, deps.Latency.Dashboard); err != nil {
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "Failed to fetch events. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, dashboard.Build(deps.Store.Events(ctx), user, deps.Now()))
}
