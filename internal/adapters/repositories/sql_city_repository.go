package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"scenic-seat-service/internal/domain"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/platform/obs"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// Breaker settings for city lookups: trip after consecutive database failures,
// probe again after a short cool-down.
const (
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 15 * time.Second
	breakerHalfOpenRequests = 1
)

// Postgres-backed implementation of the CityRepository port.
// Queries run through a circuit breaker so a failing database rejects lookups
// quickly instead of holding requests on connection timeouts.
type SQLCityRepository struct {
	DB *sql.DB

	findBreaker *gobreaker.CircuitBreaker[*domain.City]
	listBreaker *gobreaker.CircuitBreaker[[]*domain.City]
}

func NewSQLCityRepository(db *sql.DB) *SQLCityRepository {
	return &SQLCityRepository{
		DB:          db,
		findBreaker: gobreaker.NewCircuitBreaker[*domain.City](breakerSettings("cities.find")),
		listBreaker: gobreaker.NewCircuitBreaker[[]*domain.City](breakerSettings("cities.list")),
	}
}

func breakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: breakerHalfOpenRequests,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		// A missing city is an answer, not a database failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrCityNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	}
}

// Find a city by case-insensitive name.
func (s *SQLCityRepository) FindCity(ctx context.Context, name string) (_ *domain.City, err error) {
	defer obs.Time(ctx, "cities.FindCity")(&err)

	if s.DB == nil {
		return nil, errors.New("sql city repository: DB is nil")
	}

	return s.findBreaker.Execute(func() (*domain.City, error) {
		query := `
		SELECT name, lat, lon, tz
		FROM cities
		WHERE name_key = $1;
		`

		var c domain.City
		err := s.DB.QueryRowContext(ctx, query, cityKey(name)).Scan(&c.Name, &c.Lat, &c.Lon, &c.TZ)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find city %q: %w", name, domain.ErrCityNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("find city %q: query cities table: %w", name, err)
		}
		return &c, nil
	})
}

// Return all cities ordered by name.
func (s *SQLCityRepository) ListCities(ctx context.Context) (_ []*domain.City, err error) {
	defer obs.Time(ctx, "cities.ListCities")(&err)

	if s.DB == nil {
		return nil, errors.New("sql city repository: DB is nil")
	}

	return s.listBreaker.Execute(func() ([]*domain.City, error) {
		query := `
		SELECT name, lat, lon, tz
		FROM cities
		ORDER BY name;
		`

		rows, err := s.DB.QueryContext(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("list cities: query cities table: %w", err)
		}
		defer rows.Close()

		cities := make([]*domain.City, 0, 64)
		for rows.Next() {
			var c domain.City
			if err := rows.Scan(&c.Name, &c.Lat, &c.Lon, &c.TZ); err != nil {
				return nil, fmt.Errorf("list cities: scan row: %w", err)
			}
			cities = append(cities, &c)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("list cities: row iteration: %w", err)
		}

		return cities, nil
	})
}
