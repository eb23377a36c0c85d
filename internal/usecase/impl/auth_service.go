// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tableplay/internal/delivery/context"
	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/domain/repository"
	"tableplay/internal/domain/service"
	"tableplay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and signs the caller in.
// The unique index on email decides between two concurrent registrations.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	email := strings.TrimSpace(input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  strings.TrimSpace(input.DisplayName),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Info("Registration rejected, email taken", slog.String("email", email))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("register")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", uint64(user.ID)))

	return srv.issue(user.Email)
}

// Login never says which of email or password was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	email := strings.TrimSpace(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("reason", "password mismatch"), slog.Uint64("userID", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
	}

	return srv.issue(user.Email)
}

func (srv *authService) Profile(_ context.Context, user *entity.User) *usecase.ProfileOutput {
	return &usecase.ProfileOutput{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}

func (srv *authService) issue(subject string) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.Issue(subject, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
	}, nil
}
