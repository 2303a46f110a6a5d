// Package session tracks who is signed in. A Store holds at most one user for
// one session id and mirrors it to durable Storage, so any Store created later
// for the same id can restore it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/store"
)

const storageKeyPrefix = "eventHub_user:"

// DefaultLatency is the simulated backend delay applied to login and register.
const DefaultLatency = 800 * time.Millisecond

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user with this email already exists")
)

type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Session interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	User() *models.User
	State() State
	Err() string
}

// Directory is where accounts are looked up and registered.
type Directory interface {
	FindAccount(ctx context.Context, email string) (*models.Account, error)
	AddAccount(ctx context.Context, account models.Account) error
}

type Store struct {
	storage   Storage
	directory Directory
	key       string
	latency   time.Duration

	// op serializes transitions; mu guards the fields below.
	op      sync.Mutex
	mu      sync.RWMutex
	state   State
	user    *models.User
	lastErr error
}

var _ Session = (*Store)(nil)

func KeyFor(sessionID string) string {
	return storageKeyPrefix + sessionID
}

func (s *Store) ID() string {
	return s.key[len(storageKeyPrefix):]
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Err is the message for the last failed Login or Register, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Message(s.lastErr)
}

func (s *Store) set(state State, user *models.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
	s.lastErr = err
}

func (s *Store) snapshot() (State, *models.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.user
}

// Restore loads a previously saved user. A missing record leaves the store
// unauthenticated; an unreadable one is also deleted.
func (s *Store) Restore(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()
	s.set(StateLoading, nil, nil)

	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.set(StateUnauthenticated, nil, nil)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		slog.Warn("discarding unreadable session record", "key", s.key)
		if err := s.storage.Delete(ctx, s.key); err != nil {
			slog.Error("can't delete session record", "key", s.key, "error", err)
		}
		s.set(StateUnauthenticated, nil, nil)
		return nil
	}

	s.set(StateAuthenticated, &user, nil)
	return nil
}

// Login signs in the account with email. On failure the previous state is
// kept and Err reports why.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.op.Lock()
	defer s.op.Unlock()

	prevState, prevUser := s.snapshot()
	s.set(StateLoading, prevUser, nil)

	user, err := s.login(ctx, email, password)
	if err != nil {
		s.set(prevState, prevUser, err)
		return err
	}
	s.set(StateAuthenticated, user, nil)
	return nil
}

func (s *Store) login(ctx context.Context, email, password string) (*models.User, error) {
	if err := helpers.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	account, err := s.directory.FindAccount(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !checkPassword(account, password) {
		return nil, ErrInvalidCredentials
	}

	user := account.User
	if err := s.persist(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func checkPassword(account *models.Account, password string) bool {
	if account.PasswordHash == "" {
		return password == store.DemoPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

// Register creates an attendee account and signs it in.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	s.op.Lock()
	defer s.op.Unlock()

	prevState, prevUser := s.snapshot()
	s.set(StateLoading, prevUser, nil)

	user, err := s.register(ctx, name, email, password)
	if err != nil {
		s.set(prevState, prevUser, err)
		return err
	}
	s.set(StateAuthenticated, user, nil)
	return nil
}

func (s *Store) register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := helpers.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	if _, err := s.directory.FindAccount(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("find account: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:    "user-" + id.String(),
		Name:  name,
		Email: email,
		Role:  models.RoleAttendee,
	}
	if err := s.directory.AddAccount(ctx, models.Account{User: user, PasswordHash: string(hash)}); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("add account: %w", err)
	}

	if err := s.persist(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) persist(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout forgets the user. Storage failures are logged, not returned.
func (s *Store) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	if err := s.storage.Delete(ctx, s.key); err != nil {
		slog.Error("can't delete session record", "key", s.key, "error", err)
	}
	s.set(StateUnauthenticated, nil, nil)
}
