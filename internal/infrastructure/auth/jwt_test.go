package auth

import (
	"testing"
	"time"

	"github.com/africommerce/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-jwt-signing-32ch",
		AccessTokenExpiration: time.Hour,
		Issuer:                "africommerce-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService()
	vendorID := uuid.New()
	userID := uuid.New()

	token, expiresAt, err := service.GenerateToken(vendorID, userID, "ama")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, vendorID.String(), claims.VendorID)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ama", claims.Username)

	parsedVendor, err := claims.GetVendorUUID()
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsedVendor)
}

func TestJWTService_ValidateToken(t *testing.T) {
	t.Run("rejects garbage", func(t *testing.T) {
		service := newTestService()
		_, err := service.ValidateToken("not-a-token")
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		service := newTestService()
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret-key-32",
			AccessTokenExpiration: time.Hour,
			Issuer:                "africommerce-test",
		})

		token, _, err := other.GenerateToken(uuid.New(), uuid.New(), "kofi")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		service := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-for-jwt-signing-32ch",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "africommerce-test",
		})

		token, _, err := service.GenerateToken(uuid.New(), uuid.New(), "ama")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Equal(t, ErrExpiredToken, err)
	})
}
