package rdb

import (
	"context"

	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/domain/repository"
	"tableplay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const restaurantBatchSize = 100

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).First(&restaurantM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantMs []model.RestaurantModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&restaurantMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list restaurants")
	}

	return toRestaurantDomains(restaurantMs), nil
}

func (repo *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count restaurants")
	}

	return count, nil
}

func (repo *restaurantRepository) CreateBatch(ctx context.Context, restaurants []*entity.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}

	restaurantMs := make([]*model.RestaurantModel, 0, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantMs = append(restaurantMs, fromRestaurantDomain(restaurant))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(restaurantMs, restaurantBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("restaurant key already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurants")
	}

	for i, restaurantM := range restaurantMs {
		restaurants[i].ID = restaurantM.ID
	}

	return nil
}

// Delete removes the restaurant. Favorites pointing at it go through ON DELETE CASCADE.
func (repo *restaurantRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.RestaurantModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func toRestaurantDomains(data []model.RestaurantModel) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(data))
	for i := range data {
		restaurants = append(restaurants, toRestaurantDomain(&data[i]))
	}

	return restaurants
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:             data.ID,
		Key:            data.Key,
		Name:           data.Name,
		Cuisine:        data.Cuisine,
		Price:          entity.PriceTier(data.Price),
		Rating:         data.Rating,
		DistanceKm:     data.DistanceKm,
		Tags:           listOrEmpty(data.Tags),
		Badges:         listOrEmpty(data.Badges),
		MenuHighlights: listOrEmpty(data.MenuHighlights),
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	return &model.RestaurantModel{
		ID:             data.ID,
		Key:            data.Key,
		Name:           data.Name,
		Cuisine:        data.Cuisine,
		Price:          data.Price.String(),
		Rating:         data.Rating,
		DistanceKm:     data.DistanceKm,
		Tags:           datatypes.NewJSONSlice(listOrEmpty(data.Tags)),
		Badges:         datatypes.NewJSONSlice(listOrEmpty(data.Badges)),
		MenuHighlights: datatypes.NewJSONSlice(listOrEmpty(data.MenuHighlights)),
	}
}

// listOrEmpty keeps absent lists serialized as [] rather than null.
func listOrEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}

	return list
}
