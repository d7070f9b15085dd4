package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sitter/internal/domain/entity"
	domainerrors "sitter/internal/domain/errors"
	mockRepo "sitter/internal/mocks/repository"
	"sitter/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobServiceFixtures holds all test dependencies for job service tests.
type jobServiceFixtures struct {
	service         usecase.JobUsecase
	jobRepo         *mockRepo.MockJobRepository
	applicationRepo *mockRepo.MockApplicationRepository
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	applicationRepo := mockRepo.NewMockApplicationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewJobService(JobServiceParams{
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,
		Logger:          logger,
	})

	return jobServiceFixtures{
		service:         service,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func TestJobService_ListJobs(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	listed := []*entity.Job{
		{ID: 2, Title: "evening sit", Description: "two kids", PosterID: 1},
		{ID: 1, Title: "weekend sit", Description: "one kid", PosterID: 1},
	}
	fixtures.jobRepo.EXPECT().ListAll(ctx).Return(listed, nil)

	jobs, err := fixtures.service.ListJobs(ctx)

	require.NoError(t, err)
	assert.Equal(t, listed, jobs)
}

func TestJobService_ListJobs_StorageError(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	storageErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to list jobs")
	fixtures.jobRepo.EXPECT().ListAll(ctx).Return(nil, storageErr)

	jobs, err := fixtures.service.ListJobs(ctx)

	require.Error(t, err)
	assert.Nil(t, jobs)
}

func TestJobService_PostJob(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	input := usecase.PostJobInput{PosterID: 5, Title: "evening sit", Description: "two kids"}

	fixtures.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Run(func(_ context.Context, job *entity.Job) {
			assert.Equal(t, input.Title, job.Title)
			assert.Equal(t, input.Description, job.Description)
			assert.Equal(t, int64(5), job.PosterID)
			job.ID = 11
		}).
		Return(nil)

	require.NoError(t, fixtures.service.PostJob(ctx, input))
}

func TestJobService_Apply(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	input := usecase.ApplyInput{ApplicantID: 9, JobID: 3, Message: "pick me"}

	fixtures.applicationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Application")).
		Run(func(_ context.Context, application *entity.Application) {
			assert.Equal(t, int64(3), application.JobID)
			assert.Equal(t, int64(9), application.ApplicantID)
			assert.Equal(t, "pick me", application.Message)
			application.ID = 21
		}).
		Return(nil)

	require.NoError(t, fixtures.service.Apply(ctx, input))
}
