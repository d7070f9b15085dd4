// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sitter/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when no user matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The store assigns a monotonic ID and
	// writes it back onto the entity. Registering an email that already
	// exists fails with the domain's EmailExists error.
	Create(ctx context.Context, user *entity.User) error

	// FindByCredentials retrieves the user whose email and password digest
	// both match exactly. Returns ErrUserNotFound when no row matches;
	// callers translate that into an invalid-credentials failure so the
	// response never reveals whether the email exists.
	FindByCredentials(ctx context.Context, email, passwordDigest string) (*entity.User, error)
}
