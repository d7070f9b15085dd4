package usecase

import (
	"context"

	"sitter/internal/domain/entity"
)

// PostJobInput defines the data required to publish a job listing.
// PosterID comes from the verified bearer token, never from the request body.
type PostJobInput struct {
	PosterID    int64
	Title       string
	Description string
}

// ApplyInput defines the data required to apply to a job listing.
// ApplicantID comes from the verified bearer token.
type ApplyInput struct {
	ApplicantID int64
	JobID       int64
	Message     string
}

// JobUsecase defines the interface for job-board business operations.
type JobUsecase interface {
	ListJobs(ctx context.Context) ([]*entity.Job, error)
	PostJob(ctx context.Context, input PostJobInput) error
	Apply(ctx context.Context, input ApplyInput) error
}
