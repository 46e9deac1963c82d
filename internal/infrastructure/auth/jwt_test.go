package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopadmin/backend/internal/infrastructure/config"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: expiration,
		Issuer:     "shopadmin-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService(time.Hour)
	userID := uuid.New()

	issued, err := service.GenerateToken(GenerateTokenInput{
		UserID: userID,
		Email:  "admin@example.com",
		Role:   "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.JTI)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := service.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issued.JTI, claims.ID)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
	assert.Greater(t, claims.GetRemainingTTL(), 59*time.Minute)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "a-completely-different-secret",
			Expiration: time.Hour,
			Issuer:     "shopadmin-test",
		})
		issued, err := other.GenerateToken(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		_, err = service.ValidateToken(issued.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := newTestJWTService(-time.Minute)
		issued, err := expired.GenerateToken(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		_, err = service.ValidateToken(issued.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
