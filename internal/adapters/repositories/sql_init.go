package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema holding the city lookup table.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCitiesQuery := `
	CREATE TABLE IF NOT EXISTS cities (
		name_key TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
		lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180),
		tz TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_cities_name
	ON cities(name);
	`

	statements := []string{
		createCitiesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Upsert the given cities in one transaction.
func SeedCities(ctx context.Context, db *sql.DB, seeds []CitySeed) error {
	if db == nil {
		return errors.New("seed cities: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed cities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO cities (name_key, name, lat, lon, tz)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (name_key) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		tz = EXCLUDED.tz;
	`)
	if err != nil {
		return fmt.Errorf("seed cities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range seeds {
		if _, err := stmt.ExecContext(ctx, cityKey(c.Name), c.Name, c.Lat, c.Lon, c.TZ); err != nil {
			return fmt.Errorf("seed cities: insert %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed cities: commit tx: %w", err)
	}

	return nil
}

// Populate the database with the cities of a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) (int, error) {
	seeds, err := LoadCitySeeds(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed from json: %w", err)
	}
	if err := SeedCities(ctx, db, seeds); err != nil {
		return 0, fmt.Errorf("seed from json: %w", err)
	}
	return len(seeds), nil
}
