package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"anveshai/internal/http/handlers"
	httpapi "anveshai/internal/http/httpapi"
	"anveshai/internal/infra"
	"anveshai/internal/infra/geoip"
	"anveshai/internal/middleware"
	image "anveshai/internal/providers/image"
	"anveshai/internal/store"
	"anveshai/internal/watermark"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	recordStore, cleanup, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize record store")
	}
	defer cleanup()

	processor, err := watermark.NewProcessor(cfg.WatermarkText, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize watermark processor")
	}

	chain := image.NewChain(logger, processor,
		image.NewPollinations(image.PollinationsOptions{
			BaseURL: cfg.PollinationsURL,
			Logger:  &logger,
		}),
		image.NewHuggingFace(image.HuggingFaceOptions{
			APIKey:  cfg.HuggingFaceAPIKey,
			BaseURL: cfg.HuggingFaceBaseURL,
			Logger:  &logger,
		}),
		image.NewPlaceholder(),
	)

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	app := handlers.NewApp(cfg, logger, recordStore, chain)
	router := httpapi.NewRouter(app, lookup, cfg.RateLimitPerMin)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func buildStore(ctx context.Context, cfg *infra.Config, logger infra.Logger) (store.Store, func(), error) {
	switch cfg.StorageMode {
	case infra.StorageModeMemory:
		return store.NewMemoryStore(), func() {}, nil
	case infra.StorageModePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pg, err := store.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		fs, err := store.NewFileStore(cfg.StoragePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
