// Package session keeps the logged-in employee on the client, the way a
// browser keeps it in localStorage: one JSON slot with a 24 hour lifetime.
package session

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"idcard/models"
)

// Key is the storage slot holding the session.
const Key = "employeeSession"

const DefaultTTL = 24 * time.Hour

type Session struct {
	IsAuthenticated bool            `json:"isAuthenticated"`
	Employee        *models.Profile `json:"employee"`
	// LoginTime is milliseconds since the Unix epoch.
	LoginTime int64 `json:"loginTime"`
}

func (s Session) LoginAt() time.Time {
	return time.UnixMilli(s.LoginTime)
}

// Storage is a string key/value store.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

type Store struct {
	storage Storage
	now     func() time.Time
	ttl     time.Duration
	logger  *zap.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

func NewStore(storage Storage, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{storage: storage, now: time.Now, ttl: DefaultTTL, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records a fresh login for employee.
func (s *Store) Save(employee models.Profile) error {
	data, err := json.Marshal(Session{
		IsAuthenticated: true,
		Employee:        &employee,
		LoginTime:       s.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := s.storage.SetItem(Key, string(data)); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// Get returns the stored session. Missing, unreadable and expired sessions
// all report false; unreadable and expired ones are also removed.
func (s *Store) Get() (Session, bool) {
	raw, ok, err := s.storage.GetItem(Key)
	if err != nil {
		s.logger.Warn("reading session failed", zap.Error(err))
		s.clear()
		return Session{}, false
	}
	if !ok || raw == "" {
		return Session{}, false
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("discarding corrupted session", zap.Error(err))
		s.clear()
		return Session{}, false
	}

	if s.now().Sub(sess.LoginAt()) > s.ttl {
		s.clear()
		return Session{}, false
	}
	return sess, true
}

// Clear logs the employee out.
func (s *Store) Clear() error {
	if err := s.storage.RemoveItem(Key); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *Store) clear() {
	if err := s.Clear(); err != nil {
		s.logger.Warn("clearing session failed", zap.Error(err))
	}
}

func (s *Store) IsAuthenticated() bool {
	sess, ok := s.Get()
	return ok && sess.IsAuthenticated && sess.Employee != nil
}

func (s *Store) CurrentEmployee() (models.Profile, bool) {
	sess, ok := s.Get()
	if !ok || sess.Employee == nil {
		return models.Profile{}, false
	}
	return *sess.Employee, true
}

// TimeRemaining is the number of whole minutes, rounded up, before the
// session expires. It is 0 when there is no session.
func (s *Store) TimeRemaining() int {
	sess, ok := s.Get()
	if !ok {
		return 0
	}
	remaining := s.ttl - s.now().Sub(sess.LoginAt())
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Minutes()))
}
