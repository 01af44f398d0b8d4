package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour, 7*24*time.Hour)

	t.Run("access-токен содержит корректные claims", func(t *testing.T) {
		token, err := maker.GenerateAccessToken("traveler", "uid-123")
		require.NoError(t, err)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "traveler", claims.Username)
		assert.Equal(t, "uid-123", claims.UserUID)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh-токен имеет тип refresh", func(t *testing.T) {
		token, err := maker.GenerateRefreshToken("traveler", "uid-123")
		require.NoError(t, err)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})
}

func TestMaker_ParseInvalid(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour, 7*24*time.Hour)

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := maker.ParseToken("garbage")
		assert.Error(t, err)
	})

	t.Run("чужой ключ подписи", func(t *testing.T) {
		other := NewJWTMaker("another-secret", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken("traveler", "uid-123")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		expired := NewJWTMaker("test-secret", -time.Minute, -time.Minute)
		token, err := expired.GenerateAccessToken("traveler", "uid-123")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})
}
