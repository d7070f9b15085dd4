package sqlite

import (
	"context"

	"sitter/internal/domain/entity"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/repository"
	"sitter/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// applicationRepository implements the domain.ApplicationRepository interface using GORM.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create persists a new application. No uniqueness is enforced; applying to
// the same job twice inserts two rows.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	applicationM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	application.ID = applicationM.ID
	application.AppliedAt = applicationM.AppliedAt

	return nil
}

// fromApplicationDomain converts a domain Application entity to a GORM model for persistence.
func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:           data.ID,
		JobID:        data.JobID,
		BabysitterID: data.ApplicantID,
		Message:      data.Message,
		AppliedAt:    data.AppliedAt,
	}
}
