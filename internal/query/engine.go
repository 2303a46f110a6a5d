// Package query selects events from a collection. All functions are pure and
// preserve the relative order of their input.
package query

import (
	"strings"

	"github.com/farellandr/eventhub/internal/models"
)

// Filter returns the events matching every set clause of filters.
func Filter(events []models.Event, filters models.EventFilters) []models.Event {
	search := strings.ToLower(filters.Search)
	location := strings.ToLower(filters.Location)

	result := make([]models.Event, 0, len(events))
	for _, event := range events {
		if search != "" &&
			!strings.Contains(strings.ToLower(event.Title), search) &&
			!strings.Contains(strings.ToLower(event.Description), search) {
			continue
		}

		if filters.Category != "" && event.Category != filters.Category {
			continue
		}

		if location != "" && !strings.Contains(strings.ToLower(event.LocationLabel()), location) {
			continue
		}

		if filters.StartDate != nil && event.StartDate.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && event.EndDate.After(*filters.EndDate) {
			continue
		}

		if pr := filters.PriceRange; pr != nil && (event.Price < pr.Min || event.Price > pr.Max) {
			continue
		}

		result = append(result, event)
	}
	return result
}

func Featured(events []models.Event) []models.Event {
	result := make([]models.Event, 0)
	for _, event := range events {
		if event.IsFeatured {
			result = append(result, event)
		}
	}
	return result
}

// ByID returns the first event with id, or nil.
func ByID(events []models.Event, id string) *models.Event {
	for i := range events {
		if events[i].ID == id {
			event := events[i]
			return &event
		}
	}
	return nil
}

// Paginate returns page (1-based) of events holding at most limit items.
func Paginate(events []models.Event, page, limit int) []models.Event {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return []models.Event{}
	}
	// Compare page indexes rather than offsets so huge pages cannot overflow.
	if len(events) == 0 || page-1 > (len(events)-1)/limit {
		return []models.Event{}
	}
	offset := (page - 1) * limit
	end := len(events)
	if limit < end-offset {
		end = offset + limit
	}
	return events[offset:end]
}

func TotalPages(total, limit int) int {
	if limit < 1 || total < 1 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
