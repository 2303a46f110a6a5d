package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/authz"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/metrics"
	"github.com/farellandr/eventhub/internal/middleware"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/query"
	"github.com/farellandr/eventhub/internal/store"
)

type RegistrationRequest struct {
	TicketType  string `json:"ticket_type"`
	TicketCount int    `json:"ticket_count" binding:"omitempty,min=1"`
}

func RegisterForEvent(c *gin.Context) {
	var req RegistrationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
			return
		}
	}
	if req.TicketCount == 0 {
		req.TicketCount = 1
	}
	if req.TicketType == "" {
		req.TicketType = "General Admission"
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}
	deps := middleware.GetDeps(c)
	ctx := c.Request.Context()

	reg, err := deps.Store.RegisterForEvent(ctx, c.Param("id"), user.ID, req.TicketType, req.TicketCount)
	if err != nil {
		metrics.Registrations.WithLabelValues("rejected").Inc()
		switch {
		case errors.Is(err, store.ErrEventNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		case errors.Is(err, store.ErrEventFull):
			helpers.RespondWithError(c, http.StatusConflict, "Not enough spots left for this event.")
		case errors.Is(err, store.ErrInvalidTicketCount):
			helpers.RespondWithError(c, http.StatusBadRequest, "Ticket count must be at least 1.")
		default:
			slog.Error("registration failed", "event_id", c.Param("id"), "error", err)
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to register for event.")
		}
		return
	}
	metrics.Registrations.WithLabelValues("registered").Inc()

	title := ""
	if event := query.ByID(deps.Store.Events(ctx), reg.EventID); event != nil {
		title = event.Title
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      fmt.Sprintf("You have registered for %d ticket(s) to %q", reg.TicketCount, title),
		"registration": reg,
	})
}

// ownRegistration loads the registration named in the path and checks the
// signed in user holds it. Admins may act on any registration.
func ownRegistration(c *gin.Context) (*models.EventRegistration, bool) {
	user := middleware.CurrentUser(c)
	deps := middleware.GetDeps(c)

	reg, err := deps.Store.Registration(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Registration not found.")
		return nil, false
	}
	if reg.UserID != user.ID && !authz.CanAccess(user, models.RoleAdmin) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to access this registration.")
		return nil, false
	}
	return &reg, true
}

func CancelRegistration(c *gin.Context) {
	reg, ok := ownRegistration(c)
	if !ok {
		return
	}
	deps := middleware.GetDeps(c)

	cancelled, err := deps.Store.CancelRegistration(c.Request.Context(), reg.ID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyCancelled) {
			helpers.RespondWithError(c, http.StatusConflict, "Registration already cancelled.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel registration.")
		return
	}
	metrics.Registrations.WithLabelValues("cancelled").Inc()

	c.JSON(http.StatusOK, gin.H{
		"message":      "Registration cancelled successfully.",
		"registration": cancelled,
	})
}
