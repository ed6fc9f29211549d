package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"praxis/config"
	"praxis/internal/domain/entity"
	"praxis/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *memoryStore {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.TTL = ttl
	store := NewMemoryStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	impl, ok := store.(*memoryStore)
	require.True(t, ok)

	return impl
}

func staffPrincipal() *entity.Principal {
	return &entity.Principal{
		ID:         uuid.New(),
		Kind:       entity.KindSystemUser,
		Role:       entity.RoleAdvogado,
		Identifier: "adv@escritorio.br",
	}
}

func TestMemoryStore_CreateValidateDestroy(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, sess.CreatedAt.Add(time.Hour), sess.ExpiresAt)

	got, err := store.Validate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.PrincipalID, got.PrincipalID)
	assert.Equal(t, entity.RoleAdvogado, got.Role)

	require.NoError(t, store.Destroy(ctx, sess.Token))

	_, err = store.Validate(ctx, sess.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_TokensAreUniqueAndOpaque(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for range 64 {
		sess, err := store.Create(ctx, staffPrincipal())
		require.NoError(t, err)
		_, dup := seen[sess.Token]
		require.False(t, dup)
		seen[sess.Token] = struct{}{}

		// 32 random bytes in unpadded base64url.
		assert.Len(t, sess.Token, 43)
	}
}

func TestMemoryStore_ExpiredTokenIndistinguishableFromUnknown(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	sess, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)

	// Exactly at expiry the session is already invalid.
	store.now = func() time.Time { return now.Add(time.Hour) }
	_, errExpired := store.Validate(ctx, sess.Token)
	_, errUnknown := store.Validate(ctx, "nunca-existiu")

	assert.ErrorIs(t, errExpired, service.ErrSessionNotFound)
	assert.Equal(t, errUnknown, errExpired)
}

func TestMemoryStore_CreateSweepsAbandonedTokens(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	abandoned, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)

	// The abandoned token is never re-presented; the next Create after its
	// expiry must still remove it, so the map stays bounded by live sessions.
	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	live, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)

	store.mu.Lock()
	_, stale := store.sessions[abandoned.Token]
	total := len(store.sessions)
	store.mu.Unlock()

	assert.False(t, stale)
	assert.Equal(t, 1, total)

	_, err = store.Validate(ctx, live.Token)
	assert.NoError(t, err)
}

func TestMemoryStore_DestroyIsIdempotent(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	assert.NoError(t, store.Destroy(ctx, "ausente"))

	sess, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)
	assert.NoError(t, store.Destroy(ctx, sess.Token))
	assert.NoError(t, store.Destroy(ctx, sess.Token))
}

func TestMemoryStore_NoResurrectionAfterDestroy(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)

	var wg sync.WaitGroup
	destroyed := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, store.Destroy(ctx, sess.Token))
		close(destroyed)
	}()

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Validate(ctx, sess.Token)
		}()
	}

	wg.Wait()
	<-destroyed

	// Once Destroy returned, no later Validate may succeed.
	_, err = store.Validate(ctx, sess.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_ValidateReturnsCopy(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, staffPrincipal())
	require.NoError(t, err)

	first, err := store.Validate(ctx, sess.Token)
	require.NoError(t, err)
	first.Role = entity.RoleAdmin

	second, err := store.Validate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdvogado, second.Role)
}
