package repository

import (
	"context"

	"sitter/internal/domain/entity"
)

// JobRepository defines the standard operations for job persistence.
// Jobs are append-only: there is no update or delete.
type JobRepository interface {
	// Create persists a new job. PosterID is bound by the caller; the
	// store assigns the ID and CreatedAt.
	Create(ctx context.Context, job *entity.Job) error

	// ListAll returns every job in the store ordered by ID descending, so
	// the most recently created job comes first. The result is a snapshot
	// taken at call time. There is no pagination: the whole table is
	// returned on every call, which is acceptable only while the data
	// volume stays small.
	ListAll(ctx context.Context) ([]*entity.Job, error)
}
