package domain

import "math"

// NormalizeSigned wraps x onto the circle and returns its representative in
// (-180, 180]. Any finite input is accepted, including values many turns away
// from zero. An input landing on -180 is reported as +180.
//
// Absolute bearings and azimuths live in [0, 360); relative angles between
// them always go through this function.
func NormalizeSigned(x float64) float64 {
	r := math.Mod(x, 360)
	if r > 180 {
		r -= 360
	} else if r <= -180 {
		r += 360
	}
	return r
}
