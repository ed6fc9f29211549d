package auth

import (
	"testing"

	"praxis/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := &bcryptHasher{cost: bcrypt.MinCost}

	hash, err := hasher.Hash("Segredo123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Segredo123!", hash)

	assert.True(t, hasher.Check("Segredo123!", hash))
	assert.False(t, hasher.Check("outra", hash))
	assert.False(t, hasher.Check("Segredo123!", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := &bcryptHasher{cost: bcrypt.MinCost}

	first, err := hasher.Hash("Segredo123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Segredo123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostClamp(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MaxCost + 10}}
	hasher := NewBcryptHasher(cfg)

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.LessOrEqual(t, impl.cost, bcrypt.MaxCost)
	assert.GreaterOrEqual(t, impl.cost, bcrypt.MinCost)
}
