package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"praxis/config"
	"praxis/internal/domain/entity"
	"praxis/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// redisStore keeps sessions in Redis with the TTL enforced server-side, so a
// restart or a second instance sees the same token table. Redis expiry makes
// the lazy reap of the memory store unnecessary; Validate still checks
// ExpiresAt to close the window between logical and key expiry.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewRedisStore builds the Redis-backed session manager.
func NewRedisStore(cfg *config.Config, client *redis.Client, logger *slog.Logger) service.SessionManager {
	return &redisStore{
		client: client,
		ttl:    cfg.Session.TTL,
		now:    time.Now,
		logger: logger,
	}
}

func (s *redisStore) Create(ctx context.Context, principal *entity.Principal) (*entity.Session, error) {
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

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session")
	}

	if err := s.client.Set(ctx, redisKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	s.logger.Debug("session created",
		slog.String("principal_id", principal.ID.String()),
		slog.String("role", principal.Role.String()),
	)

	return sess, nil
}

func (s *redisStore) Validate(ctx context.Context, token string) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	sess := new(entity.Session)
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}
	if sess.Expired(s.now()) {
		return nil, service.ErrSessionNotFound
	}

	return sess, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}
