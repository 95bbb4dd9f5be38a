package ports

import (
	"context"
	"scenic-seat-service/internal/domain"
)

// Port: a boundary for resolving City entries from a lookup table.
type CityRepository interface {
	// Find a city by name, case-insensitively. Returns domain.ErrCityNotFound when absent.
	FindCity(ctx context.Context, name string) (*domain.City, error)
	// Retrieve all cities ordered by name.
	ListCities(ctx context.Context) ([]*domain.City, error)
}
