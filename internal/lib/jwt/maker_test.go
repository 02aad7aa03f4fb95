package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewJWTMaker("secret-key", time.Hour)

	token, err := maker.GenerateToken("user-3", "demo@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-3", claims.UserID)
	assert.Equal(t, "demo@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestMaker_ParseGarbage(t *testing.T) {
	maker := NewJWTMaker("secret-key", time.Hour)

	_, err := maker.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestMaker_WrongSecret(t *testing.T) {
	maker := NewJWTMaker("secret-key", time.Hour)
	other := NewJWTMaker("another-key", time.Hour)

	token, err := maker.GenerateToken("user-1", "john@example.com")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_ExpiredToken(t *testing.T) {
	maker := NewJWTMaker("secret-key", -time.Minute)

	token, err := maker.GenerateToken("user-1", "john@example.com")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}
