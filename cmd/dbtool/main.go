package main

import (
	"context"
	"database/sql"
	"fmt"
	"scenic-seat-service/internal/adapters/repositories"
	"scenic-seat-service/internal/config"
	"scenic-seat-service/internal/platform/db"
	"scenic-seat-service/internal/platform/logging"
	"time"

	"github.com/joho/godotenv"
)

// dbtool creates the cities table in Postgres and loads the JSON city file into it.
func main() {
	if err := godotenv.Load(); err != nil {
		logging.Info().Msg("No .env file found (using environment variables)")
	}
	logging.Init(logging.Config{
		Level:  config.Get("LOG_LEVEL", "info"),
		Format: config.Get("LOG_FORMAT", "console"),
	})

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		logging.Fatal().Msg("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	seedPath := config.Get("CITY_DB_PATH", "data/citydb.json")
	if err := initAndSeed(ctx, conn, seedPath); err != nil {
		logging.Fatal().Err(err).Msg("dbtool failed")
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	logging.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logging.Info().Msg("Schema ready.")

	logging.Info().Str("path", seedPath).Msg("Seeding cities...")
	n, err := repositories.SeedFromJSON(ctx, conn, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logging.Info().Int("cities", n).Msg("Seeding complete.")

	return nil
}
