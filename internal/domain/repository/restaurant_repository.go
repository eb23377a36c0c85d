package repository

import (
	"context"
	"errors"

	"tableplay/internal/domain/entity"
)

// ErrRestaurantNotFound is returned when no restaurant matches the lookup.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines persistence operations for the catalog.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Restaurant, error)

	// FindAll returns every restaurant ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts restaurants and fills in their IDs.
	CreateBatch(ctx context.Context, restaurants []*entity.Restaurant) error

	// Delete removes the restaurant and every favorite pointing at it.
	Delete(ctx context.Context, id uint) error
}
