// Package cache keeps the restaurant listing in Redis.
// The database stays authoritative: every Redis failure behaves like a miss.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tableplay/config"
	deliverycontext "tableplay/internal/delivery/context"
	"tableplay/internal/domain/entity"
	"tableplay/internal/domain/lifecycle"
	"tableplay/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	catalogKey        = "tableplay:catalog:v1"
	defaultCatalogTTL = 5 * time.Minute
)

// Params defines the parameters required for the catalog cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache when redis is configured and a no-op cache otherwise.
func New(params Params) service.CatalogCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	c := NewRedisCatalogCache(client, cfg.CatalogTTL, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable Redis only costs cache hits, so startup continues.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, catalog cache will miss",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return c
}

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}

	return &redisCatalogCache{client: client, ttl: ttl, logger: logger}
}

// cachedRestaurant is the JSON shape stored under catalogKey.
type cachedRestaurant struct {
	ID             uint     `json:"id"`
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Cuisine        string   `json:"cuisine"`
	Price          string   `json:"price"`
	Rating         float64  `json:"rating"`
	DistanceKm     float64  `json:"distance_km"`
	Tags           []string `json:"tags"`
	Badges         []string `json:"badges"`
	MenuHighlights []string `json:"menu_highlights"`
}

func (c *redisCatalogCache) Get(ctx context.Context) ([]*entity.Restaurant, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log(ctx).Debug("Catalog cache read failed", slog.Any("error", err))

		return nil, false
	}

	restaurants, err := decodeCatalog(raw)
	if err != nil {
		c.log(ctx).Warn("Catalog cache entry is corrupt", slog.Any("error", err))

		return nil, false
	}

	return restaurants, true
}

func (c *redisCatalogCache) Set(ctx context.Context, restaurants []*entity.Restaurant) {
	raw, err := encodeCatalog(restaurants)
	if err != nil {
		c.log(ctx).Warn("Catalog cache encode failed", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.log(ctx).Debug("Catalog cache write failed", slog.Any("error", err))
	}
}

func (c *redisCatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.log(ctx).Debug("Catalog cache invalidate failed", slog.Any("error", err))
	}
}

func (c *redisCatalogCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func encodeCatalog(restaurants []*entity.Restaurant) ([]byte, error) {
	cached := make([]cachedRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		cached = append(cached, cachedRestaurant{
			ID:             r.ID,
			Key:            r.Key,
			Name:           r.Name,
			Cuisine:        r.Cuisine,
			Price:          r.Price.String(),
			Rating:         r.Rating,
			DistanceKm:     r.DistanceKm,
			Tags:           r.Tags,
			Badges:         r.Badges,
			MenuHighlights: r.MenuHighlights,
		})
	}

	return json.Marshal(cached)
}

func decodeCatalog(raw []byte) ([]*entity.Restaurant, error) {
	var cached []cachedRestaurant
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}

	restaurants := make([]*entity.Restaurant, 0, len(cached))
	for _, r := range cached {
		restaurants = append(restaurants, &entity.Restaurant{
			ID:             r.ID,
			Key:            r.Key,
			Name:           r.Name,
			Cuisine:        r.Cuisine,
			Price:          entity.PriceTier(r.Price),
			Rating:         r.Rating,
			DistanceKm:     r.DistanceKm,
			Tags:           r.Tags,
			Badges:         r.Badges,
			MenuHighlights: r.MenuHighlights,
		})
	}

	return restaurants, nil
}

// noopCache is used when Redis is not configured.
type noopCache struct{}

func (noopCache) Get(context.Context) ([]*entity.Restaurant, bool) { return nil, false }
func (noopCache) Set(context.Context, []*entity.Restaurant)        {}
func (noopCache) Invalidate(context.Context)                       {}
