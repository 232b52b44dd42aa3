package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := &SHA256Hasher{}

	d1, err := h.Hash("secret1")
	require.NoError(t, err)
	d2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
	assert.NotEqual(t, "secret1", d1)
}

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	// Value the legacy service stored for the password "secret1".
	h := &SHA256Hasher{}
	d, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.Equal(t, "5b11618c2e44027877d0cd0921ed166b9f176f50587fc91e7534dd2946db77d6", d)
}

func TestSHA256Hasher_Compare(t *testing.T) {
	h := &SHA256Hasher{}
	d, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NoError(t, h.Compare(d, "secret1"))
	assert.ErrorIs(t, h.Compare(d, "secret2"), ErrMismatch)
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	d, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", d)

	assert.NoError(t, h.Compare(d, "secret1"))
	assert.ErrorIs(t, h.Compare(d, "wrong"), ErrMismatch)
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	d1, err := h.Hash("secret1")
	require.NoError(t, err)
	d2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(SchemeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, &BcryptHasher{}, h)

	h, err = NewHasher(SchemeSHA256)
	require.NoError(t, err)
	assert.IsType(t, &SHA256Hasher{}, h)

	_, err = NewHasher("md5")
	assert.Error(t, err)
}
