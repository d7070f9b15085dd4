// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core entity in the system, representing a single account.
// Accounts are immutable after registration: no update or delete operation
// exists anywhere in the service.
type User struct {
	ID             int64  // Monotonic, store-assigned identifier.
	Email          string // Login identifier, unique across all users.
	PasswordDigest string // Hex-encoded SHA-256 digest of the password. Never the plaintext.
	Name           string // Display name.
	IsBabysitter   bool   // Role flag: true for babysitters, false for parents.
}
