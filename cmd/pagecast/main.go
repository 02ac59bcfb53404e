package main

import (
	"context"
	"log/slog"
	"os"

	"pagecast/config"
	"pagecast/internal/delivery"
	"pagecast/internal/delivery/http"
	"pagecast/internal/delivery/http/middleware"
	"pagecast/internal/delivery/http/router/handler"
	"pagecast/internal/infra/auth"
	"pagecast/internal/infra/cache"
	logs "pagecast/internal/infra/log"
	"pagecast/internal/infra/persistence/postgres"
	"pagecast/internal/infra/pubsub"
	"pagecast/internal/infra/qrcode"
	"pagecast/internal/infra/render"
	"pagecast/internal/infra/storage"
	"pagecast/internal/usecase/impl"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.New,
		cache.NewResponseCache,
		cache.NewTagInvalidator,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewBusinessRepository,
			postgres.NewUpdateRepository,
			postgres.NewPageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewIDTokenVerifier,
			qrcode.NewQRCodeService,
			render.NewPageRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSiteWriter,
			impl.NewGenerationService,
			impl.NewPublishService,
			impl.NewExpirationService,
			impl.NewResolutionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewExpirationHandler,
			handler.NewServeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
