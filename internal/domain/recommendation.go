package domain

import (
	"fmt"
	"strings"
	"time"
)

// Stability grades how well the departure recommendation holds at the route midpoint.
type Stability string

const (
	StabilityHigh   Stability = "HIGH"
	StabilityMedium Stability = "MEDIUM"
	StabilityLow    Stability = "LOW"
)

// Viewing interest of the passenger.
type Interest string

const (
	InterestSunrise Interest = "sunrise"
	InterestSunset  Interest = "sunset"
)

// Parse an interest name case-insensitively.
func ParseInterest(s string) (Interest, error) {
	switch Interest(strings.ToLower(strings.TrimSpace(s))) {
	case InterestSunrise:
		return InterestSunrise, nil
	case InterestSunset:
		return InterestSunset, nil
	}
	return "", fmt.Errorf("parse interest: unknown interest %q", s)
}

// Solar phase times for one calendar day at one place.
// A nil field marks a phase that does not occur that day (polar day or night).
type PhaseTimes struct {
	CivilDawn *time.Time
	Sunrise   *time.Time
	Sunset    *time.Time
	CivilDusk *time.Time
}

// Defined reports whether all four phases occur.
func (p PhaseTimes) Defined() bool {
	return p.CivilDawn != nil && p.Sunrise != nil && p.Sunset != nil && p.CivilDusk != nil
}

// Represents the seat recommendation for a single flight request.
// It is built once by the recommendation service and never mutated; values keep
// full precision and are rounded only when rendered for clients.
type Recommendation struct {
	Departure     SeatDecision
	BearingDeg    float64
	SunAzimuthDeg float64

	Midpoint                 GeoPoint
	MidpointSunAzimuthDeg    float64
	MidpointRelativeAngleDeg float64
	// Set when the midpoint azimuth could not be computed and the departure value was reused.
	MidpointSunFallback bool

	Stability  Stability
	GoldenHour bool
	PhaseTimes PhaseTimes
	Notes      string
}
