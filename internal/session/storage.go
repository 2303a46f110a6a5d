package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session record not found")

const memorySweepInterval = time.Minute

// Storage is the durable home of serialized session users.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type memoryRecord struct {
	value   []byte
	expires time.Time
}

// MemoryStorage keeps records in process. Like RedisStorage, records expire
// ttl after their last Set; a zero ttl keeps them until Delete.
type MemoryStorage struct {
	mu        sync.Mutex
	records   map[string]memoryRecord
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryStorage(ttl time.Duration) *MemoryStorage {
	return &MemoryStorage{
		records: make(map[string]memoryRecord),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStorage) expired(r memoryRecord, now time.Time) bool {
	return !r.expires.IsZero() && !now.Before(r.expires)
}

func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(r, m.now()) {
		delete(m.records, key)
		return nil, ErrNotFound
	}
	return append([]byte(nil), r.value...), nil
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > memorySweepInterval {
		for k, r := range m.records {
			if m.expired(r, now) {
				delete(m.records, k)
			}
		}
		m.lastSweep = now
	}

	r := memoryRecord{value: append([]byte(nil), value...)}
	if m.ttl > 0 {
		r.expires = now.Add(m.ttl)
	}
	m.records[key] = r
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

// Len reports how many records are held, expired ones included until swept.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
