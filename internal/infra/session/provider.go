package session

import (
	"context"
	"log/slog"

	"praxis/config"
	"praxis/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// New selects the session store from configuration. "memory" is the default
// and suits a single instance; "redis" shares the token table across
// instances and survives restarts.
func New(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.SessionManager, error) {
	switch cfg.Session.Store {
	case "", "memory":
		return NewMemoryStore(cfg, logger), nil
	case "redis":
		if cfg.Redis == nil {
			return nil, errors.New("session store is redis but redis config is missing")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				return errors.Wrap(client.Close(), "failed to close redis client")
			},
		})

		return NewRedisStore(cfg, client, logger), nil
	default:
		return nil, errors.Errorf("unknown session store: %q", cfg.Session.Store)
	}
}
