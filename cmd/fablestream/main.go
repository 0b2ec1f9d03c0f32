package main

import (
	"context"
	"flag"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/fablestream/fablestream/internal/config"
	"github.com/fablestream/fablestream/internal/infrastructure/providers"
	"github.com/fablestream/fablestream/internal/infrastructure/repository"
	"github.com/fablestream/fablestream/internal/present/rest"
	"github.com/fablestream/fablestream/internal/service"
	"github.com/fablestream/fablestream/internal/tracing"
	"github.com/fablestream/fablestream/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := tracing.Setup(ctx, "fablestream", conf.Server.TraceEndpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up tracing")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("trace exporter shutdown failed")
			}
		}()
	}

	db, err := providers.NewDatabase(conf.Server)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := providers.MigrateDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	rdb := providers.NewRedis(conf.Server)

	var provider service.IdentityProvider
	if gw := providers.NewProviderGateway(conf.Auth); gw != nil {
		provider = gw
		log.Info().Str("url", conf.Auth.ProviderURL).Msg("identity provider enabled")
	}

	auth := service.NewAuthService(&conf.Auth, provider)
	counter := service.NewCounterService(rdb)

	catalogUC := usecase.NewCatalogUsecase(repository.NewCatalogRepository(db))
	likeUC := usecase.NewLikeUsecase(repository.NewLikeRepository(db))
	ratingUC := usecase.NewRatingUsecase(repository.NewRatingRepository(db))
	commentUC := usecase.NewCommentUsecase(repository.NewCommentRepository(db))
	watchUC := usecase.NewWatchUsecase(repository.NewWatchRepository(db))
	userRepo := repository.NewUserRepository(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("fablestream"))
	}

	handler := rest.NewHandler(
		catalogUC,
		likeUC,
		ratingUC,
		commentUC,
		watchUC,
		auth,
		counter,
		userRepo,
		db,
		rdb,
	)
	handler.RegisterRoutes(e)

	log.Info().Str("listen", conf.Server.Listen).Msg("starting server")
	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
