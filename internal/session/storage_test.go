package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/store"
)

func newRedisStorage(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStorage(client, ttl), mr
}

func newGormStorage(t *testing.T) *GormStorage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&models.SessionRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStorage(db)
}

func storageBackends(t *testing.T) map[string]Storage {
	redisStorage, _ := newRedisStorage(t, time.Hour)
	return map[string]Storage{
		"memory": NewMemoryStorage(time.Hour),
		"redis":  redisStorage,
		"gorm":   newGormStorage(t),
	}
}

func TestStorageRoundTrip(t *testing.T) {
	for name, s := range storageBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := KeyFor("abc")

			if _, err := s.Get(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			for _, value := range []string{`{"id":"user-1"}`, `{"id":"user-2"}`} {
				if err := s.Set(ctx, key, []byte(value)); err != nil {
					t.Fatalf("Set(%s) error = %v", value, err)
				}
				got, err := s.Get(ctx, key)
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				if string(got) != value {
					t.Errorf("Get() = %s, want %s", got, value)
				}
			}

			if err := s.Delete(ctx, key); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := s.Get(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, key); err != nil {
				t.Errorf("Delete(missing) error = %v", err)
			}
		})
	}
}

func TestSessionLifecycleOnEachBackend(t *testing.T) {
	for name, storage := range storageBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := NewManager(storage, store.NewMemoryStore(store.DefaultFixtures()), 0)

			s := m.New()
			if err := s.Login(ctx, "organizer@example.com", "password"); err != nil {
				t.Fatalf("Login() error = %v", err)
			}

			restored, err := m.Open(ctx, s.ID())
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if restored.State() != StateAuthenticated || restored.User().ID != "user-2" {
				t.Fatalf("restored state=%s user=%+v", restored.State(), restored.User())
			}

			restored.Logout(ctx)
			if _, err := storage.Get(ctx, KeyFor(s.ID())); !errors.Is(err, ErrNotFound) {
				t.Errorf("record survived logout: %v", err)
			}

			again, err := m.Open(ctx, s.ID())
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if again.State() != StateUnauthenticated {
				t.Errorf("state after logout = %s, want unauthenticated", again.State())
			}
		})
	}
}

func TestRedisStorageExpiry(t *testing.T) {
	s, mr := newRedisStorage(t, time.Hour)
	ctx := context.Background()
	key := KeyFor("ttl")

	if err := s.Set(ctx, key, []byte(`{"id":"user-1"}`)); err != nil {
		t.Fatal(err)
	}
	if got := mr.TTL(key); got != time.Hour {
		t.Errorf("TTL = %v, want 1h", got)
	}

	mr.FastForward(time.Hour)
	if _, err := s.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(expired) error = %v, want ErrNotFound", err)
	}
}

func TestRedisStorageConnectionError(t *testing.T) {
	s, mr := newRedisStorage(t, 0)
	mr.Close()

	_, err := s.Get(context.Background(), KeyFor("any"))
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want a connection error", err)
	}
}

func TestMemoryStorageExpiry(t *testing.T) {
	s := NewMemoryStorage(time.Hour)
	clock := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	ctx := context.Background()

	if err := s.Set(ctx, "a", []byte("1")); err != nil {
		t.Fatal(err)
	}

	clock = clock.Add(59 * time.Minute)
	if _, err := s.Get(ctx, "a"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	clock = clock.Add(time.Minute)
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after expiry error = %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expired record kept", s.Len())
	}
}

func TestMemoryStorageSweepsAbandonedRecords(t *testing.T) {
	s := NewMemoryStorage(time.Hour)
	clock := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, key, []byte("1")); err != nil {
			t.Fatal(err)
		}
	}

	clock = clock.Add(2 * time.Hour)
	if err := s.Set(ctx, "d", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after sweep", s.Len())
	}
}

func TestMemoryStorageZeroTTLKeepsRecords(t *testing.T) {
	s := NewMemoryStorage(0)
	clock := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	ctx := context.Background()

	if err := s.Set(ctx, "a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	clock = clock.Add(24 * 365 * time.Hour)
	if _, err := s.Get(ctx, "a"); err != nil {
		t.Errorf("Get() error = %v, want record kept", err)
	}
}

func TestExpiredSessionRestoresUnauthenticated(t *testing.T) {
	storage := NewMemoryStorage(time.Hour)
	clock := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	storage.now = func() time.Time { return clock }
	m := NewManager(storage, store.NewMemoryStore(store.DefaultFixtures()), 0)
	ctx := context.Background()

	s := m.New()
	if err := s.Login(ctx, "john@example.com", "password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	clock = clock.Add(2 * time.Hour)
	restored, err := m.Open(ctx, s.ID())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if restored.State() != StateUnauthenticated {
		t.Errorf("state = %s, want unauthenticated", restored.State())
	}
}
