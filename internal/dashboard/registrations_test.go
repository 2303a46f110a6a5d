package dashboard

import (
	"testing"
	"time"

	"github.com/farellandr/eventhub/internal/models"
)

func TestSplitRegistrations(t *testing.T) {
	events := []models.Event{
		{ID: "past", StartDate: now.Add(-time.Hour)},
		{ID: "now", StartDate: now},
		{ID: "later", StartDate: now.Add(time.Hour)},
	}
	regs := []models.EventRegistration{
		{ID: "r1", EventID: "past"},
		{ID: "r2", EventID: "now"},
		{ID: "r3", EventID: "later"},
		{ID: "r4", EventID: "deleted"},
	}

	upcoming, past := SplitRegistrations(regs, events, now)

	if len(upcoming) != 2 || upcoming[0].ID != "r2" || upcoming[1].ID != "r3" {
		t.Errorf("upcoming = %+v", upcoming)
	}
	if len(past) != 1 || past[0].ID != "r1" || past[0].Event.ID != "past" {
		t.Errorf("past = %+v", past)
	}
}
