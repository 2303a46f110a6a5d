// Package dashboard derives organizer and attendee dashboard figures from
// event collections.
package dashboard

import (
	"time"

	"github.com/farellandr/eventhub/internal/authz"
	"github.com/farellandr/eventhub/internal/models"
)

const upcomingWindow = 7 * 24 * time.Hour

const (
	StatusCompleted = "Completed"
	StatusUpcoming  = "Upcoming"
	StatusScheduled = "Scheduled"
)

type Stats struct {
	TotalEvents    int     `json:"totalEvents"`
	TotalAttendees int     `json:"totalAttendees"`
	UpcomingEvents int     `json:"upcomingEvents"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

type Row struct {
	models.Event
	Status  string  `json:"status"`
	Revenue float64 `json:"revenue"`
}

type Report struct {
	Stats  Stats `json:"stats"`
	Events []Row `json:"events"`
}

// Scope returns the events viewer may see on the dashboard: all of them for
// admins, otherwise only the ones viewer organizes.
func Scope(events []models.Event, viewer *models.User) []models.Event {
	result := make([]models.Event, 0)
	if viewer == nil {
		return result
	}
	if authz.CanAccess(viewer, models.RoleAdmin) {
		return append(result, events...)
	}
	for _, e := range events {
		if e.Organizer.ID == viewer.ID {
			result = append(result, e)
		}
	}
	return result
}

func Summarize(events []models.Event, now time.Time) Stats {
	var stats Stats
	stats.TotalEvents = len(events)
	for _, e := range events {
		stats.TotalAttendees += e.AttendeeCount
		stats.TotalRevenue += Revenue(e)
		if e.StartDate.After(now) {
			stats.UpcomingEvents++
		}
	}
	return stats
}

func Revenue(e models.Event) float64 {
	return e.Price * float64(e.AttendeeCount)
}

// Status labels an event relative to now.
func Status(e models.Event, now time.Time) string {
	switch {
	case e.StartDate.Before(now):
		return StatusCompleted
	case e.StartDate.Sub(now) < upcomingWindow:
		return StatusUpcoming
	default:
		return StatusScheduled
	}
}

func Build(events []models.Event, viewer *models.User, now time.Time) Report {
	scoped := Scope(events, viewer)
	rows := make([]Row, 0, len(scoped))
	for _, e := range scoped {
		rows = append(rows, Row{Event: e, Status: Status(e, now), Revenue: Revenue(e)})
	}
	return Report{Stats: Summarize(scoped, now), Events: rows}
}
