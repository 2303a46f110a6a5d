// Package store is the in-memory data store backing the API. Every read
// returns copies, so callers may not mutate stored state through results.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farellandr/eventhub/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrEventNotFound        = errors.New("event not found")
	ErrEventFull            = errors.New("event is at capacity")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidTicketCount   = errors.New("ticket count must be at least 1")
	ErrAlreadyCancelled     = errors.New("registration already cancelled")
	ErrAlreadyAttended      = errors.New("registration already checked in")
)

type MemoryStore struct {
	mu            sync.RWMutex
	accounts      []models.Account
	events        []models.Event
	registrations []models.EventRegistration
	categories    []string
	now           func() time.Time
}

func NewMemoryStore(f Fixtures) *MemoryStore {
	return &MemoryStore{
		accounts:      slices.Clone(f.Accounts),
		events:        cloneEvents(f.Events),
		registrations: slices.Clone(f.Registrations),
		categories:    slices.Clone(f.Categories),
		now:           time.Now,
	}
}

func cloneEvent(e models.Event) models.Event {
	e.Speakers = slices.Clone(e.Speakers)
	if e.Location.Coordinates != nil {
		c := *e.Location.Coordinates
		e.Location.Coordinates = &c
	}
	return e
}

func cloneEvents(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = cloneEvent(e)
	}
	return out
}

func (s *MemoryStore) Events(ctx context.Context) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

func (s *MemoryStore) Categories(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// FindAccount looks an account up by exact, case-sensitive email.
func (s *MemoryStore) FindAccount(ctx context.Context, email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.User.Email == email {
			account := a
			return &account, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) AddAccount(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.User.Email == account.User.Email {
			return ErrUserExists
		}
	}
	s.accounts = append(s.accounts, account)
	return nil
}

// CreateEvent stores event with a fresh id and timestamps and no attendees.
func (s *MemoryStore) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	now := s.now()
	event = cloneEvent(event)
	event.ID = "event-" + uuid.NewString()
	event.AttendeeCount = 0
	event.CreatedAt = now
	event.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.categories, event.Category) {
		s.categories = append(s.categories, event.Category)
	}
	s.events = append(s.events, event)
	return cloneEvent(event), nil
}

func (s *MemoryStore) eventIndex(id string) int {
	return slices.IndexFunc(s.events, func(e models.Event) bool { return e.ID == id })
}

func (s *MemoryStore) registrationIndex(id string) int {
	return slices.IndexFunc(s.registrations, func(r models.EventRegistration) bool { return r.ID == id })
}

// RegisterForEvent books ticketCount seats for userID. The event's attendee
// count never exceeds its capacity.
func (s *MemoryStore) RegisterForEvent(ctx context.Context, eventID, userID, ticketType string, ticketCount int) (models.EventRegistration, error) {
	if ticketCount < 1 {
		return models.EventRegistration{}, ErrInvalidTicketCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(eventID)
	if i < 0 {
		return models.EventRegistration{}, ErrEventNotFound
	}
	event := &s.events[i]
	if event.AttendeeCount+ticketCount > event.Capacity {
		return models.EventRegistration{}, ErrEventFull
	}

	now := s.now()
	reg := models.EventRegistration{
		ID:          "reg-" + uuid.NewString(),
		EventID:     eventID,
		UserID:      userID,
		Status:      models.StatusRegistered,
		TicketType:  ticketType,
		TicketCount: ticketCount,
		TotalPrice:  event.Price * float64(ticketCount),
		CreatedAt:   now,
	}
	event.AttendeeCount += ticketCount
	event.UpdatedAt = now
	s.registrations = append(s.registrations, reg)
	return reg, nil
}

func (s *MemoryStore) Registration(ctx context.Context, id string) (models.EventRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.registrationIndex(id)
	if i < 0 {
		return models.EventRegistration{}, ErrRegistrationNotFound
	}
	return s.registrations[i], nil
}

func (s *MemoryStore) RegistrationsForUser(ctx context.Context, userID string) []models.EventRegistration {
	return s.registrationsWhere(func(r models.EventRegistration) bool { return r.UserID == userID })
}

func (s *MemoryStore) RegistrationsForEvent(ctx context.Context, eventID string) []models.EventRegistration {
	return s.registrationsWhere(func(r models.EventRegistration) bool { return r.EventID == eventID })
}

func (s *MemoryStore) registrationsWhere(keep func(models.EventRegistration) bool) []models.EventRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EventRegistration, 0)
	for _, r := range s.registrations {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// CancelRegistration marks the registration cancelled and releases its seats.
func (s *MemoryStore) CancelRegistration(ctx context.Context, id string) (models.EventRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.registrationIndex(id)
	if i < 0 {
		return models.EventRegistration{}, ErrRegistrationNotFound
	}
	reg := &s.registrations[i]
	if reg.Status == models.StatusCancelled {
		return *reg, ErrAlreadyCancelled
	}
	reg.Status = models.StatusCancelled

	if j := s.eventIndex(reg.EventID); j >= 0 {
		event := &s.events[j]
		event.AttendeeCount = max(event.AttendeeCount-reg.TicketCount, 0)
		event.UpdatedAt = s.now()
	}
	return *reg, nil
}

func (s *MemoryStore) MarkAttended(ctx context.Context, id string) (models.EventRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.registrationIndex(id)
	if i < 0 {
		return models.EventRegistration{}, ErrRegistrationNotFound
	}
	switch s.registrations[i].Status {
	case models.StatusCancelled:
		return s.registrations[i], ErrAlreadyCancelled
	case models.StatusAttended:
		return s.registrations[i], ErrAlreadyAttended
	}
	s.registrations[i].Status = models.StatusAttended
	return s.registrations[i], nil
}
