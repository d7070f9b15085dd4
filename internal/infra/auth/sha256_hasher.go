// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"sitter/internal/domain/service"
)

// sha256Hasher is a concrete implementation of the PasswordHasher interface.
//
// It digests passwords with plain, unsalted SHA-256 so that equal passwords
// produce equal digests. The store matches credentials by digest equality,
// and changing the algorithm would invalidate every stored digest.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase hex encoding of the SHA-256 digest of password.
func (h *sha256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}

// Check reports whether password digests to the stored value.
// Plain string comparison, not constant-time.
func (h *sha256Hasher) Check(password, digest string) bool {
	return h.Hash(password) == digest
}
