package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tableplay/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCodec(t *testing.T) {
	restaurants := []*entity.Restaurant{
		{
			ID:             1,
			Key:            "lp01",
			Name:           "Luna Plant Kitchen",
			Cuisine:        "Mediterranean",
			Price:          entity.PriceTierModerate,
			Rating:         4.6,
			DistanceKm:     1.1,
			Tags:           []string{"Vegan", "Nut-Free", "Halal"},
			Badges:         []string{"No Peanut Oil"},
			MenuHighlights: []string{"Falafel Bowl", "Salt, Pepper Fries"},
		},
	}

	raw, err := encodeCatalog(restaurants)
	require.NoError(t, err)

	decoded, err := decodeCatalog(raw)
	require.NoError(t, err)
	assert.Equal(t, restaurants, decoded)

	_, err = decodeCatalog([]byte("{not json"))
	assert.Error(t, err)
}

func TestRedisCatalogCache_UnreachableBehavesAsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCatalogCache(client, time.Minute, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.Set(ctx, []*entity.Restaurant{{ID: 1, Key: "lp01"}})
		c.Invalidate(ctx)
	})

	restaurants, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, restaurants)
}

func TestNewRedisCatalogCache_DefaultTTL(t *testing.T) {
	c := NewRedisCatalogCache(redis.NewClient(&redis.Options{}), 0, slog.Default())
	assert.Equal(t, defaultCatalogTTL, c.(*redisCatalogCache).ttl)
}

func TestNoopCache(t *testing.T) {
	var c noopCache
	ctx := context.Background()

	c.Set(ctx, []*entity.Restaurant{{ID: 1}})
	c.Invalidate(ctx)

	restaurants, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, restaurants)
}
