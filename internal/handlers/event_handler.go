package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/authz"
	"github.com/farellandr/eventhub/internal/dashboard"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/middleware"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/query"
)

const maxPageSize = 100

type LocationRequest struct {
	Name        string              `json:"name" binding:"required"`
	Address     string              `json:"address" binding:"required"`
	City        string              `json:"city" binding:"required"`
	State       string              `json:"state" binding:"required"`
	ZipCode     string              `json:"zip_code" binding:"required"`
	Coordinates *models.Coordinates `json:"coordinates"`
}

type SpeakerRequest struct {
	Name     string `json:"name" binding:"required"`
	Bio      string `json:"bio"`
	Company  string `json:"company"`
	Position string `json:"position"`
	ImageURL string `json:"image_url"`
}

type CreateEventRequest struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	ShortDescription string           `json:"short_description"`
	Category         string           `json:"category" binding:"required"`
	StartDate        time.Time        `json:"start_date" binding:"required"`
	EndDate          time.Time        `json:"end_date" binding:"required"`
	Location         LocationRequest  `json:"location"`
	ImageURL         string           `json:"image_url"`
	Price            *float64         `json:"price" binding:"required,min=0"`
	Capacity         int              `json:"capacity" binding:"required,gt=0"`
	Speakers         []SpeakerRequest `json:"speakers" binding:"dive"`
	IsFeatured       bool             `json:"is_featured"`
}

func ListEvents(c *gin.Context) {
	deps := middleware.GetDeps(c)
	if deps == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	filters, err := query.ParseFilters(c.Request.URL.Query())
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid filter: "+err.Error())
		return
	}

	pageNum, err := helpers.QueryInt(c, "page", 1)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}
	limitNum, err := helpers.QueryInt(c, "limit", 10)
	if err != nil || limitNum > maxPageSize {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	ctx := c.Request.Context()
	if err := helpers.Wait(ctx, deps.Latency.Events); err != nil {
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "Failed to fetch events. Please try again later.")
		return
	}

	matching := query.Filter(deps.Store.Events(ctx), filters)

	c.JSON(http.StatusOK, gin.H{
		"events":      query.Paginate(matching, pageNum, limitNum),
		"filters":     query.Values(filters).Encode(),
		"total":       len(matching),
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": query.TotalPages(len(matching), limitNum),
	})
}

func ListFeaturedEvents(c *gin.Context) {
	deps := middleware.GetDeps(c)
	if deps == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	ctx := c.Request.Context()
	if err := helpers.Wait(ctx, deps.Latency.Events); err != nil {
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "Failed to fetch events. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": query.Featured(deps.Store.Events(ctx))})
}

func GetEvent(c *gin.Context) {
	deps := middleware.GetDeps(c)
	if deps == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	event := query.ByID(deps.Store.Events(c.Request.Context()), c.Param("id"))
	if event == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":      event,
		"location":   event.LocationLabel(),
		"spots_left": event.SpotsLeft(),
	})
}

func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.EndDate.Before(req.StartDate) {
		helpers.RespondWithError(c, http.StatusBadRequest, "End date must not be before start date.")
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}
	deps := middleware.GetDeps(c)

	speakers := make([]models.Speaker, 0, len(req.Speakers))
	for i, s := range req.Speakers {
		speakers = append(speakers, models.Speaker{
			ID:       "speaker-" + strconv.Itoa(i+1),
			Name:     s.Name,
			Bio:      s.Bio,
			Company:  s.Company,
			Position: s.Position,
			ImageURL: s.ImageURL,
		})
	}

	event, err := deps.Store.CreateEvent(c.Request.Context(), models.Event{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Location: models.Location{
			Name:        req.Location.Name,
			Address:     req.Location.Address,
			City:        req.Location.City,
			State:       req.Location.State,
			ZipCode:     req.Location.ZipCode,
			Coordinates: req.Location.Coordinates,
		},
		Organizer:  models.Organizer{ID: user.ID, Name: user.Name, Email: user.Email},
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		Price:      *req.Price,
		Capacity:   req.Capacity,
		Speakers:   speakers,
		IsFeatured: req.IsFeatured && authz.CanAccess(user, models.RoleAdmin),
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}
	slog.Info("event created", "event_id", event.ID, "organizer_id", user.ID, "title", event.Title)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"event":   event,
	})
}

// ManageEvent is the organizer view of one event with its registrations.
func ManageEvent(c *gin.Context) {
	user := middleware.CurrentUser(c)
	deps := middleware.GetDeps(c)
	ctx := c.Request.Context()

	event := query.ByID(deps.Store.Events(ctx), c.Param("id"))
	if event == nil || !authz.Owns(user, *event) {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to manage it.")
		return
	}

	now := deps.Now()
	c.JSON(http.StatusOK, gin.H{
		"event":         event,
		"status":        dashboard.Status(*event, now),
		"revenue":       dashboard.Revenue(*event),
		"spots_left":    event.SpotsLeft(),
		"registrations": deps.Store.RegistrationsForEvent(ctx, event.ID),
	})
}
