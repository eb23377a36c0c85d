package rdb

import (
	"context"
	"testing"

	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantRepository_ListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	restaurants := []*entity.Restaurant{
		{
			Key:            "lp01",
			Name:           "Luna Plant Kitchen",
			Cuisine:        "Mediterranean",
			Price:          entity.PriceTierModerate,
			Rating:         4.6,
			DistanceKm:     1.1,
			Tags:           []string{"Vegan", "Nut-Free", "Halal"},
			Badges:         []string{"No Peanut Oil", "Allergy-trained Staff"},
			MenuHighlights: []string{"Falafel Bowl", "Hummus Trio", "Za’atar Flatbread"},
		},
		{
			Key:            "x02",
			Name:           "Comma Cafe",
			Cuisine:        "Fusion",
			Price:          entity.PriceTierBudget,
			MenuHighlights: []string{"Salt, Pepper & Lime Wings"},
		},
	}
	require.NoError(t, repo.CreateBatch(ctx, restaurants))
	assert.NotZero(t, restaurants[0].ID)
	assert.Greater(t, restaurants[1].ID, restaurants[0].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, restaurants[0].Tags, all[0].Tags)
	assert.Equal(t, restaurants[0].Badges, all[0].Badges)
	assert.Equal(t, restaurants[0].MenuHighlights, all[0].MenuHighlights)
	assert.Equal(t, entity.PriceTierModerate, all[0].Price)
	assert.InDelta(t, 4.6, all[0].Rating, 1e-9)

	// A comma inside one entry survives storage.
	assert.Equal(t, []string{"Salt, Pepper & Lime Wings"}, all[1].MenuHighlights)
	assert.Equal(t, []string{}, all[1].Tags)
	assert.Equal(t, []string{}, all[1].Badges)
}

func TestRestaurantRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	restaurants := seedRestaurants(t, db, "lp01")

	found, err := repo.FindByID(context.Background(), restaurants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "lp01", found.Key)

	_, err = repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestRestaurantRepository_DuplicateKey(t *testing.T) {
	db := newTestDB(t)
	seedRestaurants(t, db, "lp01")

	err := NewRestaurantRepository(db).CreateBatch(context.Background(), []*entity.Restaurant{
		{Key: "lp01", Name: "Again", Cuisine: "Any", Price: entity.PriceTierBudget},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRestaurantRepository_DeleteCascadesFavorites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "ana@example.com")
	restaurants := seedRestaurants(t, db, "lp01", "gg02")

	favorites := NewFavoriteRepository(db)
	for _, r := range restaurants {
		_, err := favorites.Add(ctx, user.ID, r.ID)
		require.NoError(t, err)
	}

	repo := NewRestaurantRepository(db)
	require.NoError(t, repo.Delete(ctx, restaurants[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, restaurants[0].ID), repository.ErrRestaurantNotFound)

	list, err := favorites.ListRestaurantsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "gg02", list[0].Key)
}
