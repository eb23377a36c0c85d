package auth

import (
	"strings"
	"testing"

	"tableplay/config"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, hash := range []string{"", "invalid_hash", "$2a$", "$2a$04$short", strings.Repeat("x", 60)} {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("password", hash), "hash %q", hash)
		})
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "configured", cost: 6, want: 6},
		{name: "default when unset", cost: 0, want: DefaultBcryptCost},
		{name: "clamped to minimum", cost: 2, want: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasherWithCost(tt.cost)
			assert.Equal(t, tt.want, hasher.(*bcryptHasher).cost)
		})
	}

	hash, err := NewBcryptHasherWithCost(6).Hash("password")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})
	assert.Equal(t, 5, hasher.(*bcryptHasher).cost)

	hasher = NewBcryptHasher(&config.Config{})
	assert.Equal(t, DefaultBcryptCost, hasher.(*bcryptHasher).cost)
}
