package services

import (
	"context"
	"errors"
	"fmt"
	"scenic-seat-service/internal/domain"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/platform/obs"
	"scenic-seat-service/internal/ports"
	"time"
)

const notesSuffix = "; departure snapshot; great-circle assumption."

type RecommendRequest struct {
	Origin      domain.GeoPoint
	Destination domain.GeoPoint
	// Departure instant; its Location is the origin timezone.
	DepartAt time.Time
	Interest domain.Interest
}

// Recommend builds the seat recommendation for one flight.
//
// The decision is a single snapshot: the bearing is the initial great-circle
// bearing and the sun is sampled at departure. A second sample at the route
// midpoint, taken at the same instant, only feeds the stability grade. When the
// midpoint azimuth cannot be computed the departure azimuth is reused.
func Recommend(
	ctx context.Context,
	req RecommendRequest,
	ephem ports.SolarEphemeris,
) (_ *domain.Recommendation, err error) {
	defer obs.Time(ctx, "services.Recommend")(&err)

	if ephem == nil {
		return nil, errors.New("recommend: ephemeris provider must be non-nil")
	}

	log := logging.Ctx(ctx)

	bearing := InitialBearing(req.Origin, req.Destination)

	sunAz, err := ephem.SunAzimuth(ctx, req.Origin, req.DepartAt)
	if err != nil {
		if errors.Is(err, domain.ErrSunUndefined) {
			return nil, fmt.Errorf("recommend: departure sun azimuth: %w", err)
		}
		return nil, fmt.Errorf("recommend: departure sun azimuth: %w: %w", domain.ErrEphemerisUnavailable, err)
	}

	departure := DecideSeat(bearing, sunAz)

	log.Debug().
		Float64("origin_lat", req.Origin.Lat).
		Float64("origin_lon", req.Origin.Lon).
		Float64("dest_lat", req.Destination.Lat).
		Float64("dest_lon", req.Destination.Lon).
		Float64("bearing", bearing).
		Float64("sun_azimuth", sunAz).
		Float64("relative_angle", departure.RelativeAngle).
		Str("side", string(departure.Side)).
		Str("confidence", string(departure.Confidence)).
		Str("interest", string(req.Interest)).
		Time("depart_at", req.DepartAt).
		Msg("departure seat decision")

	phases, err := ephem.PhaseTimes(ctx, req.Origin, req.DepartAt)
	if err != nil {
		if errors.Is(err, domain.ErrSunUndefined) {
			return nil, fmt.Errorf("recommend: solar phases: %w", err)
		}
		return nil, fmt.Errorf("recommend: solar phases: %w: %w", domain.ErrEphemerisUnavailable, err)
	}
	if !phases.Defined() {
		return nil, fmt.Errorf("recommend: solar phases undefined on %s: %w",
			req.DepartAt.Format(time.DateOnly), domain.ErrSunUndefined)
	}

	golden := IsGoldenHour(req.DepartAt, phases, req.Interest)

	mid := Midpoint(req.Origin, req.Destination)

	fallback := false
	midSunAz, err := ephem.SunAzimuth(ctx, mid, req.DepartAt)
	if err != nil {
		log.Warn().Err(err).
			Float64("mid_lat", mid.Lat).
			Float64("mid_lon", mid.Lon).
			Msg("midpoint sun azimuth failed, reusing departure azimuth")
		midSunAz = sunAz
		fallback = true
	}

	midDecision := DecideSeat(bearing, midSunAz)
	stability := ClassifyStability(departure, midDecision)

	log.Debug().
		Float64("mid_sun_azimuth", midSunAz).
		Float64("mid_relative_angle", midDecision.RelativeAngle).
		Str("stability", string(stability)).
		Bool("golden_hour", golden).
		Msg("midpoint stability")

	return &domain.Recommendation{
		Departure:                departure,
		BearingDeg:               bearing,
		SunAzimuthDeg:            sunAz,
		Midpoint:                 mid,
		MidpointSunAzimuthDeg:    midSunAz,
		MidpointRelativeAngleDeg: midDecision.RelativeAngle,
		MidpointSunFallback:      fallback,
		Stability:                stability,
		GoldenHour:               golden,
		PhaseTimes:               phases,
		Notes:                    departure.Explanation + notesSuffix,
	}, nil
}
