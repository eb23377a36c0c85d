package rdb

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"tableplay/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_AddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "ana@example.com")
	restaurant := seedRestaurants(t, db, "lp01")[0]

	created, err := repo.Add(ctx, user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Add(ctx, user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Table("favorites").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteRepository_AddUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")

	created, err := NewFavoriteRepository(db).Add(context.Background(), user.ID, 999)
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
	assert.False(t, created)
}

func TestFavoriteRepository_ConcurrentAdd(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "ana@example.com")
	restaurant := seedRestaurants(t, db, "lp01")[0]

	const workers = 16
	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ok, err := repo.Add(ctx, user.ID, restaurant.ID)
			assert.NoError(t, err)
			if ok {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, created.Load())

	var count int64
	require.NoError(t, db.Table("favorites").Where("user_id = ? AND restaurant_id = ?", user.ID, restaurant.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteRepository_RemoveIsIdempotentAndScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	ana := seedUser(t, db, "ana@example.com")
	bo := seedUser(t, db, "bo@example.com")
	restaurant := seedRestaurants(t, db, "lp01")[0]

	_, err := repo.Add(ctx, ana.ID, restaurant.ID)
	require.NoError(t, err)
	_, err = repo.Add(ctx, bo.ID, restaurant.ID)
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, ana.ID, restaurant.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, ana.ID, restaurant.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = repo.Remove(ctx, ana.ID, 999)
	require.NoError(t, err)
	assert.False(t, removed)

	boList, err := repo.ListRestaurantsByUser(ctx, bo.ID)
	require.NoError(t, err)
	require.Len(t, boList, 1)
	assert.Equal(t, restaurant.ID, boList[0].ID)
}

func TestFavoriteRepository_ListIsScopedInInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	ana := seedUser(t, db, "ana@example.com")
	bo := seedUser(t, db, "bo@example.com")
	restaurants := seedRestaurants(t, db, "lp01", "gg02", "sh03")

	for _, r := range []int{2, 0} {
		_, err := repo.Add(ctx, ana.ID, restaurants[r].ID)
		require.NoError(t, err)
	}
	_, err := repo.Add(ctx, bo.ID, restaurants[1].ID)
	require.NoError(t, err)

	list, err := repo.ListRestaurantsByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sh03", list[0].Key)
	assert.Equal(t, "lp01", list[1].Key)
	assert.Equal(t, []string{"Vegan", "Halal"}, list[1].Tags)

	empty, err := repo.ListRestaurantsByUser(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
