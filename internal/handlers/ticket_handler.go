package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/farellandr/eventhub/internal/authz"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/middleware"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/query"
	"github.com/farellandr/eventhub/internal/store"
)

func GenerateTicketQR(c *gin.Context) {
	reg, ok := ownRegistration(c)
	if !ok {
		return
	}

	switch reg.Status {
	case models.StatusCancelled:
		helpers.RespondWithError(c, http.StatusForbidden, "Registration cancelled.")
		return
	case models.StatusAttended:
		helpers.RespondWithError(c, http.StatusForbidden, "Ticket already used.")
		return
	}

	deps := middleware.GetDeps(c)
	qrImage, err := qrcode.Encode(helpers.TicketPayload(*reg, deps.JWTSecret), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}

// ValidateTicket checks in the holder of a scanned ticket. Only the event's
// organizer or an admin may do so.
func ValidateTicket(c *gin.Context) {
	var validationRequest struct {
		QRData string `json:"qr_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&validationRequest); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	registrationID, signature, err := helpers.ParseTicketPayload(validationRequest.QRData)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid QR code format.")
		return
	}

	user := middleware.CurrentUser(c)
	deps := middleware.GetDeps(c)
	ctx := c.Request.Context()

	reg, err := deps.Store.Registration(ctx, registrationID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Registration not found.")
		return
	}

	if !helpers.VerifyTicketSignature(reg, signature, deps.JWTSecret) {
		helpers.RespondWithError(c, http.StatusForbidden, "Invalid QR code signature.")
		return
	}

	event := query.ByID(deps.Store.Events(ctx), reg.EventID)
	if event == nil || !authz.Owns(user, *event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to validate this ticket.")
		return
	}

	reg, err = deps.Store.MarkAttended(ctx, reg.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyAttended):
			helpers.RespondWithError(c, http.StatusForbidden, "Ticket already used.")
		case errors.Is(err, store.ErrAlreadyCancelled):
			helpers.RespondWithError(c, http.StatusForbidden, "Registration cancelled.")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to validate ticket.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket validated successfully.",
		"ticket": gin.H{
			"event_title":  event.Title,
			"ticket_type":  reg.TicketType,
			"ticket_count": reg.TicketCount,
		},
	})
}
