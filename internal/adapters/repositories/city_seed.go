package repositories

import (
	"fmt"
	"os"
	"scenic-seat-service/internal/domain"
	"strings"

	"github.com/goccy/go-json"
)

type CitySeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	TZ   string  `json:"tz"`
}

type cityFile struct {
	Cities []CitySeed `json:"cities"`
}

// Read and check the city table from a JSON file of the form {"cities": [...]}.
func LoadCitySeeds(jsonPath string) ([]CitySeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load cities: read %q: %w", jsonPath, err)
	}

	var data cityFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load cities: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(data.Cities))
	out := make([]CitySeed, 0, len(data.Cities))
	for i, c := range data.Cities {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("load cities: item at index %d: name cannot be empty", i+1)
		}
		if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
			return nil, fmt.Errorf("load cities: %q: coordinates out of range (%v, %v)", name, c.Lat, c.Lon)
		}
		if strings.TrimSpace(c.TZ) == "" {
			return nil, fmt.Errorf("load cities: %q: tz cannot be empty", name)
		}

		key := cityKey(name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("load cities: duplicate city %q", name)
		}
		seen[key] = struct{}{}

		out = append(out, CitySeed{Name: name, Lat: c.Lat, Lon: c.Lon, TZ: strings.TrimSpace(c.TZ)})
	}

	return out, nil
}

func (s CitySeed) toDomain() *domain.City {
	return &domain.City{Name: s.Name, Lat: s.Lat, Lon: s.Lon, TZ: s.TZ}
}

// Lookup key used by every repository: names match case-insensitively.
func cityKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
