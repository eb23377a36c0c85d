package impl

import (
	"context"
	"log/slog"

	deliverycontext "tableplay/internal/delivery/context"
	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/domain/repository"
	"tableplay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	restaurantRepo repository.RestaurantRepository
	favoriteRepo   repository.FavoriteRepository
	logger         *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	FavoriteRepo   repository.FavoriteRepository
	Logger         *slog.Logger
}

func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		restaurantRepo: params.RestaurantRepo,
		favoriteRepo:   params.FavoriteRepo,
		logger:         params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add returns the same restaurant whether or not the favorite already existed.
func (srv *favoriteService) Add(ctx context.Context, userID, restaurantID uint) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	created, err := srv.favoriteRepo.Add(ctx, userID, restaurantID)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		// Deleted between the lookup and the insert.
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added",
		slog.Uint64("userID", uint64(userID)),
		slog.Uint64("restaurantID", uint64(restaurantID)),
		slog.Bool("created", created),
	)

	return restaurant, nil
}

func (srv *favoriteService) Remove(ctx context.Context, userID, restaurantID uint) error {
	removed, err := srv.favoriteRepo.Remove(ctx, userID, restaurantID)
	if err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	srv.log(ctx).Debug("Favorite removed",
		slog.Uint64("userID", uint64(userID)),
		slog.Uint64("restaurantID", uint64(restaurantID)),
		slog.Bool("removed", removed),
	)

	return nil
}

func (srv *favoriteService) List(ctx context.Context, userID uint) ([]*entity.Restaurant, error) {
	restaurants, err := srv.favoriteRepo.ListRestaurantsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return restaurants, nil
}
