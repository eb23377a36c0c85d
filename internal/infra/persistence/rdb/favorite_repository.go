package rdb

import (
	"context"

	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/domain/repository"
	"tableplay/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the pair in a single statement. A conflicting row on the
// (user_id, restaurant_id) unique index turns the insert into a no-op, so
// racing callers converge on one row without a read-then-write window.
func (repo *favoriteRepository) Add(ctx context.Context, userID, restaurantID uint) (bool, error) {
	favoriteM := &model.FavoriteModel{
		UserID:       userID,
		RestaurantID: restaurantID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "restaurant_id"}},
			DoNothing: true,
		}).
		Create(favoriteM)
	if err := result.Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			// Drivers without ON CONFLICT support still report the duplicate.
			return false, nil
		case isForeignKeyConstraintViolation(err):
			return false, repository.ErrRestaurantNotFound
		default:
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
		}
	}

	return result.RowsAffected > 0, nil
}

// Remove deletes the pair if present. Rows of other users are never touched.
func (repo *favoriteRepository) Remove(ctx context.Context, userID, restaurantID uint) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favorite")
	}

	return result.RowsAffected > 0, nil
}

// ListRestaurantsByUser returns favorites in the order they were added.
// It reads from the primary so a favorite added a moment ago is visible.
func (repo *favoriteRepository) ListRestaurantsByUser(ctx context.Context, userID uint) ([]*entity.Restaurant, error) {
	var restaurantMs []model.RestaurantModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RestaurantModel{}).
		Select("restaurants.*").
		Joins("JOIN favorites ON favorites.restaurant_id = restaurants.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id").
		Find(&restaurantMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorites")
	}

	return toRestaurantDomains(restaurantMs), nil
}
