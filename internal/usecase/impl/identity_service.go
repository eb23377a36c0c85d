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

const bearerPrefix = "bearer "

type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve checks the scheme, then the token, then that the subject still exists.
// Each step has its own rejection so logs can tell them apart.
func (srv *identityService) Resolve(ctx context.Context, authorization string) (*entity.User, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		srv.log(ctx).Debug("Authorization rejected", slog.String("reason", "missing token"))

		return nil, domainerrors.ErrMissingToken
	}

	subject, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Warn("Authorization rejected", slog.String("reason", "invalid token"))

		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Authorization rejected", slog.String("reason", "user not found"))

		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for token")
	}

	return user, nil
}

// bearerToken returns everything after a case-insensitive "Bearer " prefix.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	return header[len(bearerPrefix):], true
}
