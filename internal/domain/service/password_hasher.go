// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password digesting and verification.
//
// The digest contract is deliberately deterministic and unsalted so that
// identical passwords produce identical digests and the store can match
// credentials with plain equality. This is a known security weakness
// (rainbow-table attacks against leaked digests); it is preserved because the
// stored-digest format is part of the store's compatibility surface.
type PasswordHasher interface {
	// Hash returns the digest of a plaintext password. Same input, same
	// output, always.
	Hash(password string) string

	// Check reports whether a plaintext password digests to the given
	// stored value. Comparison is exact equality, not constant-time.
	Check(password, digest string) bool
}
