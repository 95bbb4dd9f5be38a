package ports

import (
	"context"
	"scenic-seat-service/internal/domain"
	"time"
)

// Contract for computing the sun's position and daily phases.
type SolarEphemeris interface {
	// Return the sun azimuth in degrees, [0, 360), clockwise from North, seen from p at the given instant.
	// Fails with domain.ErrSunUndefined when the azimuth has no meaning at p.
	SunAzimuth(ctx context.Context, p domain.GeoPoint, at time.Time) (float64, error)

	// Return civil dawn, sunrise, sunset and civil dusk at p for the calendar
	// date of day in day.Location(). Phases that do not occur are left nil.
	PhaseTimes(ctx context.Context, p domain.GeoPoint, day time.Time) (domain.PhaseTimes, error)
}
