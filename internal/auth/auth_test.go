package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, CheckPassword("correct horse battery staple", hash))
	assert.Error(t, CheckPassword("wrong password", hash))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := MakeSessionToken("admin", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claim, err := ValidateSessionToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claim.Subject)
	assert.True(t, claim.Valid())
	assert.WithinDuration(t, time.Now(), claim.IssuedAt, time.Minute)
}

func TestValidateSessionToken_Failures(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		token, err := MakeSessionToken("admin", "test-secret", -time.Minute)
		require.NoError(t, err)

		_, err = ValidateSessionToken(token, "test-secret")
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := MakeSessionToken("admin", "test-secret", time.Hour)
		require.NoError(t, err)

		_, err = ValidateSessionToken(token, "other-secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateSessionToken("not-a-token", "test-secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
