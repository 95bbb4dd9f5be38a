package services

import (
	"scenic-seat-service/internal/domain"
	"time"
)

// Half-width of the golden-hour window around sunrise or sunset.
const GoldenHourWindow = 45 * time.Minute

// IsGoldenHour reports whether at lies within GoldenHourWindow of the sunrise
// or sunset selected by interest. An undefined phase is never golden hour.
func IsGoldenHour(at time.Time, phases domain.PhaseTimes, interest domain.Interest) bool {
	var target *time.Time
	switch interest {
	case domain.InterestSunrise:
		target = phases.Sunrise
	case domain.InterestSunset:
		target = phases.Sunset
	}
	if target == nil {
		return false
	}

	diff := at.Sub(*target)
	if diff < 0 {
		diff = -diff
	}
	return diff <= GoldenHourWindow
}
