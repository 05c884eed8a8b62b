package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	accessToken, refreshToken, err := GenerateTokens("user-1", "consultant")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	claims, err := ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "consultant", claims.Role)
}

func TestValidateTokenEnforcesRequiredRoles(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	accessToken, _, err := GenerateTokens("user-1", "resident")
	require.NoError(t, err)

	_, err = ValidateToken(accessToken, "hod", "consultant")
	assert.Error(t, err)

	claims, err := ValidateToken(accessToken, "hod", "resident")
	require.NoError(t, err)
	assert.Equal(t, "resident", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
