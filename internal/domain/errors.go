package domain

import "errors"

var (
	// The sun position (or a solar phase) does not exist for the requested
	// place and time, e.g. polar day or night.
	ErrSunUndefined = errors.New("sun position undefined")

	// The ephemeris backend failed for a reason other than an undefined sun.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	ErrCityNotFound = errors.New("city not found")
)
