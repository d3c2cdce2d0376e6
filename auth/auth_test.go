package auth

import (
	"testing"

	"bamboo/middleware"
	"bamboo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u99", models.RoleDealer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := middleware.ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u99", claims.UserID)
	assert.Equal(t, models.RoleDealer, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(tokenTTL), claims.ExpiresAt.Time, 0)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Skip("Integration test - requires database")
}
