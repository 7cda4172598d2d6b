package main

import (
	"context"
	"log/slog"
	"os"

	"ayurfresh/config"
	"ayurfresh/internal/delivery"
	"ayurfresh/internal/delivery/http"
	"ayurfresh/internal/delivery/http/middleware"
	"ayurfresh/internal/delivery/http/router/handler"
	"ayurfresh/internal/infra/auth"
	logs "ayurfresh/internal/infra/log"
	"ayurfresh/internal/infra/mail"
	"ayurfresh/internal/infra/persistence/postgres"
	"ayurfresh/internal/infra/pincode"
	"ayurfresh/internal/infra/sms"
	"ayurfresh/internal/infra/storage"
	"ayurfresh/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewVerificationRepository,
			postgres.NewAddressRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewCartRepository,
			postgres.NewReviewRepository,
			postgres.NewEnquiryRepository,
			postgres.NewPincodeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCodeGenerator,
			mail.NewSMTPSender,
			sms.NewTwilioSender,
			storage.NewBlobStore,
			pincode.NewHTTPDirectory,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotifier,
			impl.NewAuthService,
			impl.NewVerificationService,
			impl.NewProfileService,
			impl.NewAddressService,
			impl.NewCatalogService,
			impl.NewCategoryService,
			impl.NewCartService,
			impl.NewReviewService,
			impl.NewEnquiryService,
			impl.NewPincodeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVerificationHandler,
			handler.NewProfileHandler,
			handler.NewAddressHandler,
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewCartHandler,
			handler.NewReviewHandler,
			handler.NewEnquiryHandler,
			handler.NewPincodeHandler,
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
