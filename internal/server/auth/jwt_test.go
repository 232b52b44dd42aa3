package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("ari@example.com", secret, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := GetEmailFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "ari@example.com", email)
}

func TestGenerateToken_DifferentInstantsDiffer(t *testing.T) {
	secret := []byte("test-secret")

	// Different validity windows stand in for different issuance instants:
	// the ExpiresAt claim shifts and with it the signature.
	t1, err := GenerateToken("ari@example.com", secret, time.Hour)
	require.NoError(t, err)
	t2, err := GenerateToken("ari@example.com", secret, 2*time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestGetEmailFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("ari@example.com", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = GetEmailFromToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestGetEmailFromToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("ari@example.com", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetEmailFromToken(token, secret)
	assert.Error(t, err)
}

func TestGetEmailFromToken_Garbage(t *testing.T) {
	_, err := GetEmailFromToken("not-a-token", []byte("test-secret"))
	assert.Error(t, err)
}
