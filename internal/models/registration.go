package models

import "time"

type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "registered"
	StatusAttended   RegistrationStatus = "attended"
	StatusCancelled  RegistrationStatus = "cancelled"
)

type EventRegistration struct {
	ID          string             `json:"id"`
	EventID     string             `json:"eventId"`
	UserID      string             `json:"userId"`
	Status      RegistrationStatus `json:"status"`
	TicketType  string             `json:"ticketType,omitempty"`
	TicketCount int                `json:"ticketCount"`
	TotalPrice  float64            `json:"totalPrice"`
	CreatedAt   time.Time          `json:"createdAt"`
}
