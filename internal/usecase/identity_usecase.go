package usecase

import (
	"context"

	"tableplay/internal/domain/entity"
)

// IdentityUsecase turns a raw Authorization header into an authenticated user.
type IdentityUsecase interface {
	// Resolve fails with ErrMissingToken, ErrInvalidToken or ErrUserNotFound from domain/errors.
	Resolve(ctx context.Context, authorization string) (*entity.User, error)
}
