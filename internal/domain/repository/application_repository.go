package repository

import (
	"context"

	"sitter/internal/domain/entity"
)

// ApplicationRepository defines the standard operations for application persistence.
type ApplicationRepository interface {
	// Create persists a new application. The store assigns the ID and
	// AppliedAt. It does not verify that the referenced job exists and
	// does not deduplicate: applying twice to the same job succeeds both
	// times.
	Create(ctx context.Context, application *entity.Application) error
}
