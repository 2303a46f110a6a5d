package models

import (
	"fmt"
	"time"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Organizer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type Speaker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Location         Location  `json:"location"`
	Organizer        Organizer `json:"organizer"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"imageUrl"`
	Price            float64   `json:"price"`
	Capacity         int       `json:"capacity"`
	AttendeeCount    int       `json:"attendeeCount"`
	Speakers         []Speaker `json:"speakers,omitempty"`
	IsFeatured       bool      `json:"isFeatured,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// LocationLabel is the "{city}, {state}" form used for display and location search.
func (e Event) LocationLabel() string {
	return fmt.Sprintf("%s, %s", e.Location.City, e.Location.State)
}

func (e Event) SpotsLeft() int {
	left := e.Capacity - e.AttendeeCount
	if left < 0 {
		return 0
	}
	return left
}
