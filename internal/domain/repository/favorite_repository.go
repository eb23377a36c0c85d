package repository

import (
	"context"

	"tableplay/internal/domain/entity"
)

// FavoriteRepository manages the (user, restaurant) favorite pairs.
// Implementations must keep at most one row per pair even under concurrent calls.
type FavoriteRepository interface {
	// Add links the restaurant to the user. created is false when the pair already existed.
	// It returns ErrRestaurantNotFound when the restaurant does not exist.
	Add(ctx context.Context, userID, restaurantID uint) (created bool, err error)

	// Remove unlinks the pair. removed is false when there was nothing to remove.
	Remove(ctx context.Context, userID, restaurantID uint) (removed bool, err error)

	// ListRestaurantsByUser returns the user's favorite restaurants in the order they were added.
	ListRestaurantsByUser(ctx context.Context, userID uint) ([]*entity.Restaurant, error)
}
