package main

import (
	"context"
	"log/slog"
	"os"

	"mealhub/config"
	"mealhub/internal/delivery"
	"mealhub/internal/delivery/http"
	"mealhub/internal/delivery/http/middleware"
	"mealhub/internal/delivery/http/router/handler"
	"mealhub/internal/domain/service"
	"mealhub/internal/infra/auth"
	logs "mealhub/internal/infra/log"
	"mealhub/internal/infra/mail"
	"mealhub/internal/infra/persistence/postgres"
	"mealhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMealRepository,
			postgres.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newMailer,
		),
	)
}

// newMailer creates the outgoing mail gateway. SMTP is optional; without it
// notifications are logged and dropped instead of failing order operations.
func newMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.SMTP == nil {
		logger.Warn("SMTP is not configured, order notifications will be logged only")

		return mail.NewNoopMailer(logger)
	}

	return mail.NewSMTPMailer(cfg.SMTP)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMealService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMealHandler,
			handler.NewOrderHandler,
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
				os.Exit(1)
			}
		}()
	}
}
