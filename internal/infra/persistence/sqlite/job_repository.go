package sqlite

import (
	"context"

	"sitter/internal/domain/entity"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/repository"
	"sitter/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// Create persists a new job and writes the generated id back onto the entity.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt

	return nil
}

// ListAll returns every job, newest first. Ids are assigned monotonically, so
// ordering by id descending is creation order reversed.
func (repo *jobRepository) ListAll(ctx context.Context) ([]*entity.Job, error) {
	var jobMs []*model.JobModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&jobMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobMs))
	for _, jobM := range jobMs {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		PosterID:    data.ParentID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromJobDomain converts a domain Job entity to a GORM JobModel for persistence.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ParentID:    data.PosterID,
		CreatedAt:   data.CreatedAt,
	}
}
