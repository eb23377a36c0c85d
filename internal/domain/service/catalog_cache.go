package service

import (
	"context"

	"tableplay/internal/domain/entity"
)

// CatalogCache stores the restaurant listing.
// Implementations treat backend failures as misses; the database stays authoritative.
type CatalogCache interface {
	// Get returns the cached listing and whether it was present.
	Get(ctx context.Context) ([]*entity.Restaurant, bool)
	Set(ctx context.Context, restaurants []*entity.Restaurant)
	Invalidate(ctx context.Context)
}
