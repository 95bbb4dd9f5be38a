package ephemeris

import (
	"context"
	"scenic-seat-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func assertNear(t *testing.T, want, got time.Time, tol time.Duration) {
	t.Helper()
	diff := got.Sub(want)
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqualf(t, diff, tol, "got %v, want %v ± %v", got, want, tol)
}

func TestNOAASunAzimuthMorningDelhi(t *testing.T) {
	p := NewNOAAProvider()
	ist := mustLoad(t, "Asia/Kolkata")

	az, err := p.SunAzimuth(context.Background(),
		domain.GeoPoint{Lat: 28.5562, Lon: 77.1},
		time.Date(2025, 9, 10, 6, 0, 0, 0, ist))
	require.NoError(t, err)

	// Shortly after sunrise, close to due East.
	assert.InDelta(t, 83.5, az, 1.0)
}

func TestNOAASunAzimuthQuadrants(t *testing.T) {
	p := NewNOAAProvider()
	ctx := context.Background()

	// Southern hemisphere winter noon: sun to the North.
	syd := mustLoad(t, "Australia/Sydney")
	az, err := p.SunAzimuth(ctx, domain.GeoPoint{Lat: -33.9, Lon: 151.2}, time.Date(2025, 6, 21, 12, 0, 0, 0, syd))
	require.NoError(t, err)
	assert.True(t, az > 350 || az < 10, "azimuth %v should be near North", az)

	// Northern summer evening in London: sun in the North-West.
	lon := mustLoad(t, "Europe/London")
	az, err = p.SunAzimuth(ctx, domain.GeoPoint{Lat: 51.47, Lon: -0.45}, time.Date(2025, 6, 21, 20, 0, 0, 0, lon))
	require.NoError(t, err)
	assert.InDelta(t, 295.4, az, 1.0)
}

func TestNOAASunAzimuthUndefinedAtPole(t *testing.T) {
	p := NewNOAAProvider()

	_, err := p.SunAzimuth(context.Background(), domain.GeoPoint{Lat: 90, Lon: 0}, time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrSunUndefined)
}

func TestNOAAPhaseTimesDelhi(t *testing.T) {
	p := NewNOAAProvider()
	ist := mustLoad(t, "Asia/Kolkata")

	got, err := p.PhaseTimes(context.Background(),
		domain.GeoPoint{Lat: 28.5562, Lon: 77.1},
		time.Date(2025, 9, 10, 6, 0, 0, 0, ist))
	require.NoError(t, err)
	require.True(t, got.Defined())

	assertNear(t, time.Date(2025, 9, 10, 5, 40, 0, 0, ist), *got.CivilDawn, 5*time.Minute)
	assertNear(t, time.Date(2025, 9, 10, 6, 4, 0, 0, ist), *got.Sunrise, 5*time.Minute)
	assertNear(t, time.Date(2025, 9, 10, 18, 33, 0, 0, ist), *got.Sunset, 5*time.Minute)
	assertNear(t, time.Date(2025, 9, 10, 18, 56, 0, 0, ist), *got.CivilDusk, 5*time.Minute)

	assert.Equal(t, ist, got.Sunrise.Location())
}

func TestNOAAPhaseTimesLondonMidsummer(t *testing.T) {
	p := NewNOAAProvider()
	lon := mustLoad(t, "Europe/London")

	got, err := p.PhaseTimes(context.Background(),
		domain.GeoPoint{Lat: 51.47, Lon: -0.4543},
		time.Date(2025, 6, 21, 0, 30, 0, 0, lon))
	require.NoError(t, err)
	require.True(t, got.Defined())

	assertNear(t, time.Date(2025, 6, 21, 4, 44, 0, 0, lon), *got.Sunrise, 5*time.Minute)
	assertNear(t, time.Date(2025, 6, 21, 21, 22, 0, 0, lon), *got.Sunset, 5*time.Minute)
	assert.True(t, got.CivilDawn.Before(*got.Sunrise))
	assert.True(t, got.Sunset.Before(*got.CivilDusk))
}

func TestNOAAPhaseTimesStayOnLocalDate(t *testing.T) {
	p := NewNOAAProvider()
	apia := mustLoad(t, "Pacific/Apia")

	got, err := p.PhaseTimes(context.Background(),
		domain.GeoPoint{Lat: -13.8, Lon: -171.8},
		time.Date(2025, 1, 15, 9, 0, 0, 0, apia))
	require.NoError(t, err)
	require.True(t, got.Defined())

	for _, ts := range []*time.Time{got.CivilDawn, got.Sunrise, got.Sunset, got.CivilDusk} {
		y, m, d := ts.Date()
		assert.Equal(t, 2025, y)
		assert.Equal(t, time.January, m)
		assert.Equal(t, 15, d)
	}
}

func TestNOAAPhaseTimesMidnightSun(t *testing.T) {
	p := NewNOAAProvider()
	oslo := mustLoad(t, "Europe/Oslo")

	got, err := p.PhaseTimes(context.Background(),
		domain.GeoPoint{Lat: 69.65, Lon: 18.96},
		time.Date(2025, 6, 21, 12, 0, 0, 0, oslo))
	require.NoError(t, err)

	assert.False(t, got.Defined())
	assert.Nil(t, got.Sunrise)
	assert.Nil(t, got.Sunset)
}

func TestNOAAHonoursCancelledContext(t *testing.T) {
	p := NewNOAAProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.SunAzimuth(ctx, domain.GeoPoint{}, time.Now())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = p.PhaseTimes(ctx, domain.GeoPoint{}, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}
