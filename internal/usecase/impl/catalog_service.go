package impl

import (
	"context"
	"log/slog"

	deliverycontext "tableplay/internal/delivery/context"
	"tableplay/internal/domain/entity"
	"tableplay/internal/domain/repository"
	"tableplay/internal/domain/service"
	"tableplay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	cache          service.CatalogCache
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	Cache          service.CatalogCache
	Logger         *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		cache:          params.Cache,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) List(ctx context.Context) ([]*entity.Restaurant, error) {
	if restaurants, ok := srv.cache.Get(ctx); ok {
		return restaurants, nil
	}

	restaurants, err := srv.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	srv.cache.Set(ctx, restaurants)

	return restaurants, nil
}

// SeedIfEmpty counts and inserts in one transaction. Two processes racing on
// first boot can still both see zero rows; the unique key makes the loser fail.
func (srv *catalogService) SeedIfEmpty(ctx context.Context) (int, error) {
	inserted := 0

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()

		count, err := restaurantRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count restaurants")
		}
		if count > 0 {
			return nil
		}

		restaurants := seedRestaurants()
		if err := restaurantRepo.CreateBatch(ctx, restaurants); err != nil {
			return errors.Wrap(err, "failed to insert seed restaurants")
		}
		inserted = len(restaurants)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to seed catalog")
	}

	if inserted > 0 {
		srv.cache.Invalidate(ctx)
		srv.log(ctx).Info("Catalog seeded", slog.Int("restaurants", inserted))
	}

	return inserted, nil
}
