package repositories

import (
	"context"
	"fmt"
	"scenic-seat-service/internal/domain"
	"sort"
)

// In-memory implementation of the CityRepository port, loaded once from a JSON file.
type JSONCityRepository struct {
	byKey  map[string]*domain.City
	sorted []*domain.City
}

func NewJSONCityRepository(jsonPath string) (*JSONCityRepository, error) {
	seeds, err := LoadCitySeeds(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("json city repository: %w", err)
	}
	return NewMemoryCityRepository(seeds), nil
}

// Build the repository from already loaded seeds.
func NewMemoryCityRepository(seeds []CitySeed) *JSONCityRepository {
	r := &JSONCityRepository{
		byKey:  make(map[string]*domain.City, len(seeds)),
		sorted: make([]*domain.City, 0, len(seeds)),
	}
	for _, s := range seeds {
		c := s.toDomain()
		r.byKey[cityKey(s.Name)] = c
		r.sorted = append(r.sorted, c)
	}
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].Name < r.sorted[j].Name })
	return r
}

func (r *JSONCityRepository) FindCity(ctx context.Context, name string) (*domain.City, error) {
	c, ok := r.byKey[cityKey(name)]
	if !ok {
		return nil, fmt.Errorf("find city %q: %w", name, domain.ErrCityNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *JSONCityRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	out := make([]*domain.City, 0, len(r.sorted))
	for _, c := range r.sorted {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
