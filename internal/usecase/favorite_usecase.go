package usecase

import (
	"context"

	"tableplay/internal/domain/entity"
)

// FavoriteUsecase manages the favorites of one authenticated user.
// Every operation is scoped to userID; no call reads or writes another user's rows.
type FavoriteUsecase interface {
	// Add is idempotent and returns the full restaurant.
	Add(ctx context.Context, userID, restaurantID uint) (*entity.Restaurant, error)
	// Remove is idempotent and succeeds when there is nothing to remove.
	Remove(ctx context.Context, userID, restaurantID uint) error
	List(ctx context.Context, userID uint) ([]*entity.Restaurant, error)
}
