package impl

import (
	"context"
	"log/slog"

	deliverycontext "sitter/internal/delivery/context"
	"sitter/internal/domain/entity"
	"sitter/internal/domain/repository"
	"sitter/internal/usecase"

	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
	logger          *slog.Logger
}

// JobServiceParams holds dependencies for jobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo         repository.JobRepository
	ApplicationRepo repository.ApplicationRepository
	Logger          *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo:         params.JobRepo,
		applicationRepo: params.ApplicationRepo,
		logger:          params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListJobs returns the whole board, newest listing first.
func (srv *jobService) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	return srv.jobRepo.ListAll(ctx)
}

// PostJob publishes a listing on behalf of the authenticated poster. The
// poster's role is not checked; any authenticated account may post.
func (srv *jobService) PostJob(ctx context.Context, input usecase.PostJobInput) error {
	job := &entity.Job{
		Title:       input.Title,
		Description: input.Description,
		PosterID:    input.PosterID,
	}

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return err
	}

	srv.log(ctx).Info("Job posted", slog.Int64("jobID", job.ID), slog.Int64("posterID", input.PosterID))

	return nil
}

// Apply records an application to a listing. The job id is not checked for
// existence and repeat applications are accepted; each call inserts a row.
func (srv *jobService) Apply(ctx context.Context, input usecase.ApplyInput) error {
	application := &entity.Application{
		JobID:       input.JobID,
		ApplicantID: input.ApplicantID,
		Message:     input.Message,
	}

	if err := srv.applicationRepo.Create(ctx, application); err != nil {
		return err
	}

	srv.log(ctx).Info("Application recorded",
		slog.Int64("applicationID", application.ID),
		slog.Int64("jobID", input.JobID),
		slog.Int64("applicantID", input.ApplicantID),
	)

	return nil
}
