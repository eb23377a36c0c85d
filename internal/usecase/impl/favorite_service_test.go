package impl

import (
	"context"
	"testing"

	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/domain/repository"
	mockRepo "tableplay/internal/mocks/repository"
	"tableplay/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service        usecase.FavoriteUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	favoriteRepo   *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	return favoriteServiceFixtures{
		service: NewFavoriteService(FavoriteServiceParams{
			RestaurantRepo: restaurantRepo,
			FavoriteRepo:   favoriteRepo,
			Logger:         newDiscardLogger(),
		}),
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
	}
}

func TestFavoriteService_Add_IdempotentPayload(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: 2, Key: "gg02", Name: "Grill & Grain"}

	fx.restaurantRepo.On("FindByID", ctx, uint(2)).Return(restaurant, nil).Twice()
	fx.favoriteRepo.On("Add", ctx, uint(1), uint(2)).Return(true, nil).Once()
	fx.favoriteRepo.On("Add", ctx, uint(1), uint(2)).Return(false, nil).Once()

	first, err := fx.service.Add(ctx, 1, 2)
	require.NoError(t, err)
	second, err := fx.service.Add(ctx, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "gg02", second.Key)
}

func TestFavoriteService_Add_UnknownRestaurant(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.restaurantRepo.On("FindByID", ctx, uint(999)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := fx.service.Add(ctx, 1, 999)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
	fx.favoriteRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoriteService_Add_RestaurantDeletedMidway(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.restaurantRepo.On("FindByID", ctx, uint(2)).Return(&entity.Restaurant{ID: 2}, nil)
	fx.favoriteRepo.On("Add", ctx, uint(1), uint(2)).Return(false, repository.ErrRestaurantNotFound)

	_, err := fx.service.Add(ctx, 1, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestFavoriteService_Remove(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.On("Remove", ctx, uint(1), uint(2)).Return(true, nil).Once()
	fx.favoriteRepo.On("Remove", ctx, uint(1), uint(2)).Return(false, nil).Once()

	assert.NoError(t, fx.service.Remove(ctx, 1, 2))
	assert.NoError(t, fx.service.Remove(ctx, 1, 2))
}

func TestFavoriteService_Remove_StoreFailure(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	cause := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to remove favorite")

	fx.favoriteRepo.On("Remove", ctx, uint(1), uint(2)).Return(false, cause)

	err := fx.service.Remove(ctx, 1, 2)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestFavoriteService_List(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	favorites := []*entity.Restaurant{{ID: 3, Key: "sh03"}, {ID: 1, Key: "lp01"}}

	fx.favoriteRepo.On("ListRestaurantsByUser", ctx, uint(7)).Return(favorites, nil)

	got, err := fx.service.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}
