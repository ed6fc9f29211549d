package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"praxis/config"
	"praxis/internal/domain/entity"
	"praxis/internal/domain/service"
)

// memoryStore keeps sessions in a mutex-guarded map. All operations take the
// lock, so a Validate racing a Destroy either sees the live session or
// ErrSessionNotFound, never a half-removed one. Expired entries are reaped
// lazily when touched and swept opportunistically on Create.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewMemoryStore builds the in-memory session manager.
func NewMemoryStore(cfg *config.Config, logger *slog.Logger) service.SessionManager {
	return &memoryStore{
		sessions: make(map[string]*entity.Session),
		ttl:      cfg.Session.TTL,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *memoryStore) Create(_ context.Context, principal *entity.Principal) (*entity.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &entity.Session{
		Token:       token,
		PrincipalID: principal.ID,
		Kind:        principal.Kind,
		Role:        principal.Role,
		ClientID:    principal.ClientID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.mu.Lock()
	// Reap abandoned tokens while the lock is held, so the map stays bounded
	// by the number of live sessions even when nobody re-presents an expired
	// token.
	for staleToken, stale := range s.sessions {
		if stale.Expired(now) {
			delete(s.sessions, staleToken)
		}
	}
	s.sessions[token] = sess
	s.mu.Unlock()

	s.logger.Debug("session created",
		slog.String("principal_id", principal.ID.String()),
		slog.String("role", principal.Role.String()),
	)

	return sess, nil
}

func (s *memoryStore) Validate(_ context.Context, token string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)

		return nil, service.ErrSessionNotFound
	}

	// Copy so callers cannot mutate the stored session.
	out := *sess

	return &out, nil
}

func (s *memoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}
