package store

import (
	"time"

	"github.com/farellandr/eventhub/internal/models"
)

// DemoPassword is accepted for every seeded account.
const DemoPassword = "password"

type Fixtures struct {
	Accounts      []models.Account
	Events        []models.Event
	Registrations []models.EventRegistration
	Categories    []string
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var eventCategories = []string{
	"Technology",
	"Music",
	"Business",
	"Health & Wellness",
	"Food & Drink",
	"Marketing",
	"Sports",
	"Education",
	"Art & Culture",
	"Community",
}

func DefaultFixtures() Fixtures {
	admin := models.User{ID: "user-1", Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin}
	organizer := models.User{ID: "user-2", Name: "Olivia Organizer", Email: "organizer@example.com", Role: models.RoleOrganizer}
	attendee := models.User{ID: "user-3", Name: "John Doe", Email: "john@example.com", Role: models.RoleAttendee}

	byOrganizer := models.Organizer{ID: organizer.ID, Name: organizer.Name, Email: organizer.Email}
	byCollective := models.Organizer{ID: "org-2", Name: "Harbor Arts Collective", Email: "hello@harborarts.example.com"}

	created := at("2026-01-05T12:00:00Z")

	events := []models.Event{
		{
			ID:               "event-1",
			Title:            "Tech Innovation Summit",
			Description:      "A full day of talks on cloud infrastructure, AI tooling and developer experience from engineers shipping at scale.",
			ShortDescription: "Talks on cloud, AI and developer experience.",
			StartDate:        at("2026-11-12T09:00:00Z"),
			EndDate:          at("2026-11-12T18:00:00Z"),
			Location: models.Location{
				Name: "Moscone Center", Address: "747 Howard St", City: "San Francisco", State: "CA", ZipCode: "94103",
				Coordinates: &models.Coordinates{Lat: 37.7842, Lng: -122.4016},
			},
			Organizer:     byOrganizer,
			Category:      "Technology",
			ImageURL:      "https://images.example.com/events/tech-summit.jpg",
			Price:         199,
			Capacity:      500,
			AttendeeCount: 342,
			Speakers: []models.Speaker{
				{ID: "speaker-1", Name: "Priya Raman", Bio: "Builds distributed databases.", Company: "Quorum Labs", Position: "Principal Engineer"},
				{ID: "speaker-2", Name: "Marcus Lee", Bio: "Works on developer tooling.", Company: "Forge", Position: "CTO"},
			},
			IsFeatured: true,
			CreatedAt:  created,
			UpdatedAt:  created,
		},
		{
			ID:               "event-2",
			Title:            "Summer Jazz Festival",
			Description:      "Three stages of live jazz by the river with food trucks and late night jam sessions.",
			ShortDescription: "Live jazz by the river.",
			StartDate:        at("2027-06-18T16:00:00Z"),
			EndDate:          at("2027-06-20T23:00:00Z"),
			Location: models.Location{
				Name: "Riverfront Park", Address: "1 Canal St", City: "New Orleans", State: "LA", ZipCode: "70130",
			},
			Organizer:     byCollective,
			Category:      "Music",
			ImageURL:      "https://images.example.com/events/jazz-festival.jpg",
			Price:         75,
			Capacity:      2000,
			AttendeeCount: 1250,
			IsFeatured:    true,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:               "event-3",
			Title:            "Startup Pitch Night",
			Description:      "Early stage founders pitch to a panel of investors. Networking drinks afterwards.",
			ShortDescription: "Founders pitch to investors.",
			StartDate:        at("2026-10-21T18:00:00Z"),
			EndDate:          at("2026-10-21T21:00:00Z"),
			Location: models.Location{
				Name: "Capital Factory", Address: "701 Brazos St", City: "Austin", State: "TX", ZipCode: "78701",
			},
			Organizer:     byOrganizer,
			Category:      "Business",
			ImageURL:      "https://images.example.com/events/pitch-night.jpg",
			Price:         25,
			Capacity:      150,
			AttendeeCount: 98,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:               "event-4",
			Title:            "Mindful Mornings Yoga Retreat",
			Description:      "A weekend of guided yoga, meditation and healthy food in the mountains.",
			ShortDescription: "Weekend yoga and meditation retreat.",
			StartDate:        at("2026-05-09T08:00:00Z"),
			EndDate:          at("2026-05-10T16:00:00Z"),
			Location: models.Location{
				Name: "Aspen Lodge", Address: "55 Pine Rd", City: "Boulder", State: "CO", ZipCode: "80302",
			},
			Organizer:     byOrganizer,
			Category:      "Health & Wellness",
			ImageURL:      "https://images.example.com/events/yoga-retreat.jpg",
			Price:         120,
			Capacity:      40,
			AttendeeCount: 40,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:               "event-5",
			Title:            "Community Food Drive",
			Description:      "Volunteer with neighbours to sort and deliver food to local shelters.",
			ShortDescription: "Volunteer at the local food drive.",
			StartDate:        at("2026-12-05T10:00:00Z"),
			EndDate:          at("2026-12-05T15:00:00Z"),
			Location: models.Location{
				Name: "Eastside Community Hall", Address: "400 E 7th St", City: "Austin", State: "TX", ZipCode: "78702",
			},
			Organizer:     byCollective,
			Category:      "Community",
			ImageURL:      "https://images.example.com/events/food-drive.jpg",
			Price:         0,
			Capacity:      100,
			AttendeeCount: 37,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:               "event-6",
			Title:            "Growth Marketing Workshop",
			Description:      "Hands-on workshop on experiments, funnels and analytics for product teams.",
			ShortDescription: "Hands-on growth marketing workshop.",
			StartDate:        at("2027-02-03T13:00:00Z"),
			EndDate:          at("2027-02-03T17:00:00Z"),
			Location: models.Location{
				Name: "WeWork Midtown", Address: "1460 Broadway", City: "New York", State: "NY", ZipCode: "10036",
			},
			Organizer:     byOrganizer,
			Category:      "Marketing",
			ImageURL:      "https://images.example.com/events/growth-workshop.jpg",
			Price:         89,
			Capacity:      60,
			AttendeeCount: 12,
			IsFeatured:    true,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
	}

	registrations := []models.EventRegistration{
		{
			ID: "reg-1", EventID: "event-1", UserID: attendee.ID, Status: models.StatusRegistered,
			TicketType: "General Admission", TicketCount: 1, TotalPrice: 199, CreatedAt: at("2026-08-01T10:00:00Z"),
		},
		{
			ID: "reg-2", EventID: "event-4", UserID: attendee.ID, Status: models.StatusAttended,
			TicketType: "General Admission", TicketCount: 1, TotalPrice: 120, CreatedAt: at("2026-03-14T08:30:00Z"),
		},
		{
			ID: "reg-3", EventID: "event-2", UserID: attendee.ID, Status: models.StatusRegistered,
			TicketType: "Weekend Pass", TicketCount: 2, TotalPrice: 150, CreatedAt: at("2026-09-20T19:45:00Z"),
		},
	}

	return Fixtures{
		Accounts: []models.Account{
			{User: admin},
			{User: organizer},
			{User: attendee},
		},
		Events:        events,
		Registrations: registrations,
		Categories:    append([]string(nil), eventCategories...),
	}
}
