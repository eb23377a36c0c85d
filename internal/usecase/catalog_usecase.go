package usecase

import (
	"context"

	"tableplay/internal/domain/entity"
)

// CatalogUsecase serves the restaurant catalog.
type CatalogUsecase interface {
	List(ctx context.Context) ([]*entity.Restaurant, error)
	// SeedIfEmpty inserts the built-in restaurants into an empty catalog and reports how many were added.
	SeedIfEmpty(ctx context.Context) (int, error)
}
