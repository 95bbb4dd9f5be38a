package services

import (
	"context"
	"errors"
	"fmt"
	"scenic-seat-service/internal/adapters/ephemeris"
	"scenic-seat-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	delhi     = domain.GeoPoint{Lat: 28.5562, Lon: 77.1}
	singapore = domain.GeoPoint{Lat: 1.3644, Lon: 103.9915}
)

func delhiDeparture(t *testing.T) time.Time {
	t.Helper()
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return time.Date(2025, 9, 10, 6, 0, 0, 0, ist)
}

func TestRecommendDelhiSingapore(t *testing.T) {
	stub := ephemeris.NewStubProvider(97.5)
	stub.Azimuths[delhi] = 83.1

	req := RecommendRequest{
		Origin:      delhi,
		Destination: singapore,
		DepartAt:    delhiDeparture(t),
		Interest:    domain.InterestSunrise,
	}

	rec, err := Recommend(context.Background(), req, stub)
	require.NoError(t, err)

	assert.InDelta(t, 131.87, rec.BearingDeg, 0.01)
	assert.Equal(t, 83.1, rec.SunAzimuthDeg)
	assert.Equal(t, domain.SideLeft, rec.Departure.Side)
	assert.Equal(t, domain.ConfidenceHigh, rec.Departure.Confidence)
	assert.InDelta(t, -48.77, rec.Departure.RelativeAngle, 0.01)

	assert.InDelta(t, 15.36, rec.Midpoint.Lat, 0.01)
	assert.InDelta(t, 91.43, rec.Midpoint.Lon, 0.01)
	assert.Equal(t, 97.5, rec.MidpointSunAzimuthDeg)
	assert.InDelta(t, -34.37, rec.MidpointRelativeAngleDeg, 0.01)
	assert.False(t, rec.MidpointSunFallback)

	// 48.8 at departure vs 34.4 at the midpoint crosses the 45 degree boundary.
	assert.Equal(t, domain.StabilityMedium, rec.Stability)

	// Stub sunrise is 06:00 local, the departure time.
	assert.True(t, rec.GoldenHour)
	assert.True(t, rec.PhaseTimes.Defined())
	assert.Equal(t, "sun on left side of flight path; departure snapshot; great-circle assumption.", rec.Notes)
}

func TestRecommendMidpointFallbackReusesDepartureAzimuth(t *testing.T) {
	stub := ephemeris.NewStubProvider(0)
	stub.Azimuths[delhi] = 83.1
	stub.DefaultErr = errors.New("backend down")

	rec, err := Recommend(context.Background(), RecommendRequest{
		Origin:      delhi,
		Destination: singapore,
		DepartAt:    delhiDeparture(t),
		Interest:    domain.InterestSunset,
	}, stub)
	require.NoError(t, err)

	assert.True(t, rec.MidpointSunFallback)
	assert.Equal(t, rec.SunAzimuthDeg, rec.MidpointSunAzimuthDeg)
	assert.Equal(t, rec.Departure.RelativeAngle, rec.MidpointRelativeAngleDeg)
	assert.Equal(t, domain.StabilityHigh, rec.Stability)
	assert.False(t, rec.GoldenHour)
}

func TestRecommendSidesDifferIsLowStability(t *testing.T) {
	stub := ephemeris.NewStubProvider(60)
	stub.Azimuths[delhi] = 200

	rec, err := Recommend(context.Background(), RecommendRequest{
		Origin:      delhi,
		Destination: singapore,
		DepartAt:    delhiDeparture(t),
		Interest:    domain.InterestSunrise,
	}, stub)
	require.NoError(t, err)

	assert.Equal(t, domain.SideRight, rec.Departure.Side)
	assert.Equal(t, domain.StabilityLow, rec.Stability)
}

func TestRecommendDepartureSunUndefined(t *testing.T) {
	stub := ephemeris.NewStubProvider(90)
	stub.Errors[delhi] = fmt.Errorf("polar: %w", domain.ErrSunUndefined)

	_, err := Recommend(context.Background(), RecommendRequest{
		Origin: delhi, Destination: singapore, DepartAt: delhiDeparture(t), Interest: domain.InterestSunrise,
	}, stub)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSunUndefined)
	assert.NotErrorIs(t, err, domain.ErrEphemerisUnavailable)
}

func TestRecommendDepartureGenericFailure(t *testing.T) {
	stub := ephemeris.NewStubProvider(90)
	stub.Errors[delhi] = errors.New("timeout")

	_, err := Recommend(context.Background(), RecommendRequest{
		Origin: delhi, Destination: singapore, DepartAt: delhiDeparture(t), Interest: domain.InterestSunrise,
	}, stub)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEphemerisUnavailable)
	assert.NotErrorIs(t, err, domain.ErrSunUndefined)
	assert.Contains(t, err.Error(), "timeout")
}

func TestRecommendUndefinedPhasesFail(t *testing.T) {
	stub := ephemeris.NewStubProvider(90)
	stub.Sunrise = 0

	_, err := Recommend(context.Background(), RecommendRequest{
		Origin: delhi, Destination: singapore, DepartAt: delhiDeparture(t), Interest: domain.InterestSunrise,
	}, stub)

	assert.ErrorIs(t, err, domain.ErrSunUndefined)
}

func TestRecommendPhaseProviderFailure(t *testing.T) {
	stub := ephemeris.NewStubProvider(90)
	stub.PhaseErr = errors.New("phase backend down")

	_, err := Recommend(context.Background(), RecommendRequest{
		Origin: delhi, Destination: singapore, DepartAt: delhiDeparture(t), Interest: domain.InterestSunrise,
	}, stub)

	assert.ErrorIs(t, err, domain.ErrEphemerisUnavailable)
}

func TestRecommendZeroDistanceRoute(t *testing.T) {
	stub := ephemeris.NewStubProvider(90)

	rec, err := Recommend(context.Background(), RecommendRequest{
		Origin: delhi, Destination: delhi, DepartAt: delhiDeparture(t), Interest: domain.InterestSunrise,
	}, stub)
	require.NoError(t, err)

	assert.Equal(t, 0.0, rec.BearingDeg)
	assert.Equal(t, domain.SideRight, rec.Departure.Side)
	assert.InDelta(t, delhi.Lat, rec.Midpoint.Lat, 1e-9)
	assert.InDelta(t, delhi.Lon, rec.Midpoint.Lon, 1e-9)
}

func TestRecommendWithNOAAProvider(t *testing.T) {
	rec, err := Recommend(context.Background(), RecommendRequest{
		Origin:      delhi,
		Destination: singapore,
		DepartAt:    delhiDeparture(t),
		Interest:    domain.InterestSunrise,
	}, ephemeris.NewNOAAProvider())
	require.NoError(t, err)

	// Morning sun in the East, flight heading South-East: sun on the left.
	assert.Equal(t, domain.SideLeft, rec.Departure.Side)
	assert.True(t, rec.GoldenHour)
	assert.False(t, rec.MidpointSunFallback)
}

func TestRecommendRequiresProvider(t *testing.T) {
	_, err := Recommend(context.Background(), RecommendRequest{Origin: delhi, Destination: singapore}, nil)
	assert.Error(t, err)
}
