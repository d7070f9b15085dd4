package sqlite

import (
	"context"

	"sitter/internal/domain/entity"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/repository"
	"sitter/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user and writes the generated id back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// FindByCredentials retrieves the user whose email and password digest both
// match. A miss on either column yields ErrUserNotFound; the caller cannot
// tell which one missed.
func (repo *userRepository) FindByCredentials(ctx context.Context, email, passwordDigest string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND password_hash = ?", email, passwordDigest).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by credentials")
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		PasswordDigest: data.PasswordDigest,
		Name:           data.Name,
		IsBabysitter:   data.IsBabysitter,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Email:          data.Email,
		PasswordDigest: data.PasswordDigest,
		Name:           data.Name,
		IsBabysitter:   data.IsBabysitter,
	}
}
