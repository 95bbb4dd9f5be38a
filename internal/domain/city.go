package domain

// Entry of the city lookup table used by the HTTP layer to check route endpoints.
type City struct {
	Name string
	Lat  float64
	Lon  float64
	TZ   string
}

// Return the city location as a GeoPoint.
func (c City) Point() GeoPoint { return GeoPoint{Lat: c.Lat, Lon: c.Lon} }
