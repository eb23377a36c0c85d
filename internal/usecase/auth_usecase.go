// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tableplay/internal/domain/entity"
)

// TokenTypeBearer is the token_type returned with every access token.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput is the token pair handed back on register and login.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// ProfileOutput is the public view of an account.
type ProfileOutput struct {
	ID          uint
	Email       string
	DisplayName string
}

// AuthUsecase defines account registration, login and profile operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Profile(ctx context.Context, user *entity.User) *ProfileOutput
}
