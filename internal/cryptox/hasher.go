// Package cryptox provides one-way credential hashing for account passwords.
//
// Two schemes are available: bcrypt (salted, slow, the default) and the
// legacy unsalted sha256 digest, kept so the service can verify passwords in
// stores written before the bcrypt switch. The Hasher interface isolates the
// scheme from registry and authenticator logic, so swapping policies never
// touches them.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Compare when the secret does not match the digest.
var ErrMismatch = errors.New("digest mismatch")

// Hasher turns a plaintext secret into a stored digest and verifies
// candidates against it.
type Hasher interface {
	Hash(secret string) (string, error)
	// Compare returns nil when secret matches digest, ErrMismatch when it
	// does not, and another error for malformed digests.
	Compare(digest string, secret string) error
}

const (
	SchemeBcrypt = "bcrypt"
	SchemeSHA256 = "sha256"
)

// NewHasher returns the Hasher for a configured scheme name.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeBcrypt:
		return &BcryptHasher{}, nil
	case SchemeSHA256:
		return &SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hash scheme %q", scheme)
	}
}

// BcryptHasher hashes with bcrypt. Zero Cost means bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h *BcryptHasher) cost() int {
	if h.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return h.Cost
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost())
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Compare(digest string, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// SHA256Hasher is the legacy deterministic digest: lowercase hex of
// sha256(secret), 64 characters, no salt.
type SHA256Hasher struct{}

func (h *SHA256Hasher) Hash(secret string) (string, error) {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Compare(digest string, secret string) error {
	candidate, err := h.Hash(secret)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(digest), []byte(candidate)) != 1 {
		return ErrMismatch
	}
	return nil
}
