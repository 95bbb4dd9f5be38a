package domain

// Immutable geographic point in degrees.
// Lat is within [-90, 90]; Lon is kept within (-180, 180].
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Return the point with its longitude wrapped into (-180, 180].
func (p GeoPoint) Normalized() GeoPoint {
	return GeoPoint{Lat: p.Lat, Lon: NormalizeSigned(p.Lon)}
}
