package services

import (
	"math"
	"scenic-seat-service/internal/domain"
)

// InitialBearing returns the forward azimuth of the great-circle path from
// origin to destination at its start, in degrees clockwise from North within
// [0, 360).
//
// Coincident points have no defined bearing; atan2(0, 0) yields 0 and that is
// what is returned.
func InitialBearing(origin, destination domain.GeoPoint) float64 {
	lat1 := radians(origin.Lat)
	lat2 := radians(destination.Lat)
	dLon := radians(destination.Lon - origin.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Mod(degrees(math.Atan2(y, x))+360, 360)
	// Tiny negative results of atan2 round to exactly 360 after the shift.
	if bearing >= 360 {
		bearing -= 360
	}
	return bearing
}

// Midpoint returns the point halfway along the great-circle arc between a and b.
// The longitude is wrapped into (-180, 180] so antimeridian routes stay canonical.
func Midpoint(a, b domain.GeoPoint) domain.GeoPoint {
	lat1 := radians(a.Lat)
	lon1 := radians(a.Lon)
	lat2 := radians(b.Lat)
	dLon := radians(b.Lon - a.Lon)

	bx := math.Cos(lat2) * math.Cos(dLon)
	by := math.Cos(lat2) * math.Sin(dLon)

	latMid := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lonMid := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return domain.GeoPoint{
		Lat: degrees(latMid),
		Lon: degrees(lonMid),
	}.Normalized()
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
