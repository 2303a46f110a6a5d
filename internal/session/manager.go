package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Manager hands out Stores that share one Storage and Directory.
type Manager struct {
	storage   Storage
	directory Directory
	latency   time.Duration
}

func NewManager(storage Storage, directory Directory, latency time.Duration) *Manager {
	return &Manager{storage: storage, directory: directory, latency: latency}
}

// New returns a store for a fresh session id, already unauthenticated.
func (m *Manager) New() *Store {
	s := m.store(uuid.NewString())
	s.state = StateUnauthenticated
	return s
}

// Open returns the store for sessionID after attempting a restore.
func (m *Manager) Open(ctx context.Context, sessionID string) (*Store, error) {
	s := m.store(sessionID)
	if err := s.Restore(ctx); err != nil {
		return s, err
	}
	return s, nil
}

func (m *Manager) store(sessionID string) *Store {
	return &Store{
		storage:   m.storage,
		directory: m.directory,
		key:       KeyFor(sessionID),
		latency:   m.latency,
		state:     StateLoading,
	}
}
