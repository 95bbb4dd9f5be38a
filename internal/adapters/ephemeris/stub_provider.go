package ephemeris

import (
	"context"
	"fmt"
	"scenic-seat-service/internal/domain"
	"time"
)

// StubProvider is a deterministic SolarEphemeris for tests and local demos.
// Azimuths are looked up by point; unknown points get DefaultAzimuth, or
// DefaultErr when that is set.
type StubProvider struct {
	Azimuths       map[domain.GeoPoint]float64
	Errors         map[domain.GeoPoint]error
	DefaultAzimuth float64
	DefaultErr     error

	// Offsets from local midnight of the requested day; zero offsets mean undefined.
	CivilDawn, Sunrise, Sunset, CivilDusk time.Duration
	PhaseErr                              error
}

func NewStubProvider(defaultAzimuth float64) *StubProvider {
	return &StubProvider{
		Azimuths:       map[domain.GeoPoint]float64{},
		Errors:         map[domain.GeoPoint]error{},
		DefaultAzimuth: defaultAzimuth,
		CivilDawn:      5*time.Hour + 30*time.Minute,
		Sunrise:        6 * time.Hour,
		Sunset:         18 * time.Hour,
		CivilDusk:      18*time.Hour + 30*time.Minute,
	}
}

func (s *StubProvider) SunAzimuth(ctx context.Context, p domain.GeoPoint, at time.Time) (float64, error) {
	if err, ok := s.Errors[p]; ok {
		return 0, err
	}
	if az, ok := s.Azimuths[p]; ok {
		return az, nil
	}
	if s.DefaultErr != nil {
		return 0, fmt.Errorf("stub azimuth at %v: %w", p, s.DefaultErr)
	}
	return s.DefaultAzimuth, nil
}

func (s *StubProvider) PhaseTimes(ctx context.Context, p domain.GeoPoint, day time.Time) (domain.PhaseTimes, error) {
	if s.PhaseErr != nil {
		return domain.PhaseTimes{}, s.PhaseErr
	}

	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	at := func(off time.Duration) *time.Time {
		if off == 0 {
			return nil
		}
		t := midnight.Add(off)
		return &t
	}

	return domain.PhaseTimes{
		CivilDawn: at(s.CivilDawn),
		Sunrise:   at(s.Sunrise),
		Sunset:    at(s.Sunset),
		CivilDusk: at(s.CivilDusk),
	}, nil
}
