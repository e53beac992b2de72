package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlaceholderCredentials(t *testing.T) {
	v, err := NewPasswordVerifier(PlaceholderUser, "", zap.NewNop())
	require.NoError(t, err)

	assert.True(t, v.Verify("user", "password"))
	assert.False(t, v.Verify("user", "Password"))
	assert.False(t, v.Verify("admin", "password"))
	assert.False(t, v.Verify("", ""))
}

func TestConfiguredHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	v, err := NewPasswordVerifier("alice", hash, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, v.Verify("alice", "s3cret"))
	assert.False(t, v.Verify("alice", "password"))
	assert.False(t, v.Verify("user", "s3cret"))
}

func TestInvalidHash(t *testing.T) {
	_, err := NewPasswordVerifier("alice", "not-a-bcrypt-hash", zap.NewNop())
	assert.Error(t, err)
}

func TestVerifierFunc(t *testing.T) {
	var v Verifier = VerifierFunc(func(u, p string) bool { return u == p })
	assert.True(t, v.Verify("same", "same"))
	assert.False(t, v.Verify("a", "b"))
}
