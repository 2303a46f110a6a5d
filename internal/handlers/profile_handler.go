package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/dashboard"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/middleware"
)

func GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetMyRegistrations backs the attendee dashboard.
func GetMyRegistrations(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	deps := middleware.GetDeps(c)
	ctx := c.Request.Context()
	if err := helpers.Wait(ctx, deps.Latency.Dashboard); err != nil {
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "Failed to fetch registrations. Please try again later.")
		return
	}

	regs := deps.Store.RegistrationsForUser(ctx, user.ID)
	upcoming, past := dashboard.SplitRegistrations(regs, deps.Store.Events(ctx), deps.Now())

	c.JSON(http.StatusOK, gin.H{
		"upcoming": upcoming,
		"past":     past,
	})
}
