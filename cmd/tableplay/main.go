package main

import (
	"context"
	"log/slog"
	"os"

	"tableplay/config"
	"tableplay/internal/delivery"
	"tableplay/internal/delivery/api"
	"tableplay/internal/delivery/api/middleware"
	"tableplay/internal/delivery/api/router/handler"
	"tableplay/internal/domain/lifecycle"
	"tableplay/internal/infra/auth"
	"tableplay/internal/infra/cache"
	logs "tableplay/internal/infra/log"
	"tableplay/internal/infra/persistence/rdb"
	"tableplay/internal/usecase"
	"tableplay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedCatalogParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Catalog usecase.CatalogUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		rdb.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rdb.NewUserRepository,
			rdb.NewRestaurantRepository,
			rdb.NewFavoriteRepository,
			rdb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewFavoriteService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRestaurantHandler,
			handler.NewFavoriteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog runs after the database hook has migrated the schema.
// A failed seed is logged and startup continues; another instance may have won the race.
func seedCatalog(params seedCatalogParams) {
	if !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := params.Catalog.SeedIfEmpty(ctx); err != nil {
				params.Logger.Error("Failed to seed catalog", slog.Any("error", err))
			}

			return nil
		},
	})
}

// startServer launches every delivery once the earlier start hooks (database, seed) have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
