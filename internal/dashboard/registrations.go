package dashboard

import (
	"time"

	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/query"
)

type RegistrationView struct {
	models.EventRegistration
	Event models.Event `json:"event"`
}

// SplitRegistrations joins registrations with their events and splits them
// into upcoming (starting at or after now) and past. Registrations whose
// event no longer exists are dropped.
func SplitRegistrations(regs []models.EventRegistration, events []models.Event, now time.Time) (upcoming, past []RegistrationView) {
	upcoming = make([]RegistrationView, 0)
	past = make([]RegistrationView, 0)
	for _, reg := range regs {
		event := query.ByID(events, reg.EventID)
		if event == nil {
			continue
		}
		view := RegistrationView{EventRegistration: reg, Event: *event}
		if event.StartDate.Before(now) {
			past = append(past, view)
		} else {
			upcoming = append(upcoming, view)
		}
	}
	return upcoming, past
}
