package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewUtil("test-secret", time.Hour)

	token, err := util.GenerateToken("user-1", "ana@example.com", "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "kurumaya-rental", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	util := NewUtil("test-secret", time.Hour)
	other := NewUtil("other-secret", time.Hour)

	token, err := util.GenerateToken("user-1", "ana@example.com", "client")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	util := NewUtil("test-secret", time.Nanosecond)
	// The constructor replaces non-positive expiry with a default, so build
	// the expired token through a tiny but positive lifetime.
	token, err := util.GenerateToken("user-1", "ana@example.com", "client")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = util.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	util := NewUtil("test-secret", time.Hour)

	_, err := util.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewUtilDefaults(t *testing.T) {
	util := NewUtil("", 0)

	token, err := util.GenerateToken("user-1", "ana@example.com", "client")
	require.NoError(t, err)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
