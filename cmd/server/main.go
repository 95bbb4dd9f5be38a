package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"scenic-seat-service/internal/adapters/ephemeris"
	"scenic-seat-service/internal/adapters/repositories"
	"scenic-seat-service/internal/api"
	"scenic-seat-service/internal/config"
	"scenic-seat-service/internal/platform/db"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/platform/metrics"
	"scenic-seat-service/internal/ports"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (city store, NOAA ephemeris) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if envErr != nil {
		logging.Info().Msg("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cities, closeCities, err := openCities(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("city store unavailable")
	}
	defer closeCities()

	router := api.NewRouter(api.Deps{
		Cities:            cities,
		Ephemeris:         ephemeris.NewNOAAProvider(),
		Metrics:           metrics.New(),
		AllowedOrigins:    cfg.AllowedOrigins(),
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openCities uses Postgres when DATABASE_URL is set and the JSON city file otherwise.
func openCities(ctx context.Context, cfg config.Config) (ports.CityRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		repo, err := repositories.NewJSONCityRepository(cfg.CityDBPath)
		if err != nil {
			return nil, nil, err
		}
		logging.Info().Str("path", cfg.CityDBPath).Msg("cities loaded from JSON")
		return repo, func() {}, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logging.Info().Msg("cities served from Postgres")
	return repositories.NewSQLCityRepository(conn), func() { closeDB(conn) }, nil
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("close database")
	}
}
