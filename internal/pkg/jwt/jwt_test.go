//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"shopbot-checkout/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestValidateTokenRejections(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(42)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(42)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("zero user id", func(t *testing.T) {
		token, err := svc.GenerateToken(0)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
