package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("7", "business")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "business", claims.Category)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("7", "hacker")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("7", "admin")
	assert.Error(t, err)
}
