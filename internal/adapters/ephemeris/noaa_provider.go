package ephemeris

import (
	"context"
	"fmt"
	"math"
	"scenic-seat-service/internal/domain"
	"time"
)

// Zenith angles, in degrees, that define the daily phases.
const (
	officialZenith = 90.833 // sunrise/sunset: upper limb on the horizon, with refraction
	civilZenith    = 96.0   // civil dawn/dusk

	// Above this |latitude| the observer is treated as standing on a pole.
	poleLatitude = 89.9999
)

// NOAAProvider computes solar positions with the NOAA solar calculator
// equations (Meeus-based, good to about a minute of time between 1800 and 2100).
// It is pure computation and safe for concurrent use.
type NOAAProvider struct{}

func NewNOAAProvider() *NOAAProvider {
	return &NOAAProvider{}
}

// SunAzimuth returns the sun azimuth seen from p at the given instant.
func (n *NOAAProvider) SunAzimuth(ctx context.Context, p domain.GeoPoint, at time.Time) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if math.Abs(p.Lat) > poleLatitude {
		return 0, fmt.Errorf("sun azimuth at lat=%.4f: no horizontal direction at a pole: %w", p.Lat, domain.ErrSunUndefined)
	}

	s := solarAt(at)

	utc := at.UTC()
	minutes := float64(utc.Hour()*60+utc.Minute()) +
		(float64(utc.Second())+float64(utc.Nanosecond())/1e9)/60

	trueSolarTime := minutes + s.eqTimeMinutes + 4*p.Lon
	hourAngle := radians(domain.NormalizeSigned(trueSolarTime/4 - 180))
	lat := radians(p.Lat)

	// Measured from South towards West, then rotated to North-clockwise.
	az := degrees(math.Atan2(
		math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(lat)-math.Tan(s.declination)*math.Cos(lat),
	)) + 180

	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az, nil
}

// PhaseTimes returns civil dawn, sunrise, sunset and civil dusk at p for the
// calendar date of day in day.Location(). Phases the sun never reaches that
// day (midnight sun, polar night) are left nil.
func (n *NOAAProvider) PhaseTimes(ctx context.Context, p domain.GeoPoint, day time.Time) (domain.PhaseTimes, error) {
	if err := ctx.Err(); err != nil {
		return domain.PhaseTimes{}, err
	}

	loc := day.Location()
	y, m, d := day.Date()
	noon := solarNoon(time.Date(y, m, d, 12, 0, 0, 0, loc), p.Lon)

	return domain.PhaseTimes{
		CivilDawn: phaseEvent(noon, p.Lat, civilZenith, -1, loc),
		Sunrise:   phaseEvent(noon, p.Lat, officialZenith, -1, loc),
		Sunset:    phaseEvent(noon, p.Lat, officialZenith, 1, loc),
		CivilDusk: phaseEvent(noon, p.Lat, civilZenith, 1, loc),
	}, nil
}

type solarState struct {
	declination   float64 // radians
	eqTimeMinutes float64
}

// solarAt evaluates the sun's declination and the equation of time at t.
func solarAt(t time.Time) solarState {
	jc := (julianDay(t) - 2451545.0) / 36525.0

	meanLong := math.Mod(280.46646+jc*(36000.76983+jc*0.0003032), 360)
	meanAnom := radians(357.52911 + jc*(35999.05029-0.0001537*jc))
	ecc := 0.016708634 - jc*(0.000042037+0.0000001267*jc)

	center := math.Sin(meanAnom)*(1.914602-jc*(0.004817+0.000014*jc)) +
		math.Sin(2*meanAnom)*(0.019993-0.000101*jc) +
		math.Sin(3*meanAnom)*0.000289

	omega := radians(125.04 - 1934.136*jc)
	apparentLong := radians(meanLong + center - 0.00569 - 0.00478*math.Sin(omega))

	meanObliq := 23 + (26+(21.448-jc*(46.815+jc*(0.00059-jc*0.001813)))/60)/60
	obliq := radians(meanObliq + 0.00256*math.Cos(omega))

	y := math.Tan(obliq/2) * math.Tan(obliq/2)
	l0 := radians(meanLong)

	eqTime := 4 * degrees(y*math.Sin(2*l0)-
		2*ecc*math.Sin(meanAnom)+
		4*ecc*y*math.Sin(meanAnom)*math.Cos(2*l0)-
		0.5*y*y*math.Sin(4*l0)-
		1.25*ecc*ecc*math.Sin(2*meanAnom))

	return solarState{
		declination:   math.Asin(math.Sin(obliq) * math.Sin(apparentLong)),
		eqTimeMinutes: eqTime,
	}
}

// solarNoon returns the solar transit at longitude lon closest to near.
func solarNoon(near time.Time, lon float64) time.Time {
	t := near
	for i := 0; i < 2; i++ {
		s := solarAt(t)
		u := t.UTC()
		midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
		t = midnight.Add(minutesToDuration(720 - 4*lon - s.eqTimeMinutes))

		for t.Sub(near) > 12*time.Hour {
			t = t.Add(-24 * time.Hour)
		}
		for near.Sub(t) > 12*time.Hour {
			t = t.Add(24 * time.Hour)
		}
	}
	return t
}

// phaseEvent returns the instant the sun crosses zenith before (dir=-1) or
// after (dir=1) the given solar noon, or nil when it never does.
func phaseEvent(noon time.Time, lat, zenith, dir float64, loc *time.Location) *time.Time {
	t := noon
	for i := 0; i < 2; i++ {
		s := solarAt(t)
		ha, ok := hourAngle(lat, s.declination, zenith)
		if !ok {
			return nil
		}
		t = noon.Add(minutesToDuration(dir * 4 * degrees(ha)))
	}

	out := t.In(loc)
	return &out
}

// hourAngle solves for the hour angle (radians) at which the sun reaches zenith.
func hourAngle(lat, decl, zenith float64) (float64, bool) {
	phi := radians(lat)
	cosH := math.Cos(radians(zenith))/(math.Cos(phi)*math.Cos(decl)) - math.Tan(phi)*math.Tan(decl)
	if math.IsNaN(cosH) || cosH > 1 || cosH < -1 {
		return 0, false
	}
	return math.Acos(cosH), true
}

func julianDay(t time.Time) float64 {
	return float64(t.Unix())/86400 + float64(t.Nanosecond())/86400e9 + 2440587.5
}

func minutesToDuration(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
