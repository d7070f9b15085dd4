// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "sitter/internal/delivery/context"
	"sitter/internal/domain/entity"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/repository"
	"sitter/internal/domain/service"
	"sitter/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and immediately issues a session token, so a
// fresh registration needs no follow-up login call. Uniqueness of the email
// is left to the store's unique index; there is no read-before-write.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering account", slog.String("email", input.Email), slog.Bool("isBabysitter", input.IsBabysitter))

	user := &entity.User{
		Email:          input.Email,
		PasswordDigest: srv.hasher.Hash(input.Password),
		Name:           input.Name,
		IsBabysitter:   input.IsBabysitter,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Account registered", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// Login matches the email and password digest against the store and issues a
// fresh token on success. A miss on either field reports the same error.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByCredentials(ctx, input.Email, srv.hasher.Hash(input.Password))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("credential lookup missed")
		}

		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token}, nil
}
