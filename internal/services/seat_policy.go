package services

import (
	"math"
	"scenic-seat-service/internal/domain"
)

// Relative-angle thresholds in degrees.
const (
	aheadCutoff    = 15.0  // below: sun roughly ahead
	behindCutoff   = 150.0 // above: sun roughly behind
	highBandLow    = 45.0
	highBandHigh   = 135.0
	mediumBandHigh = 165.0
)

// DecideSeat maps a flight bearing and a sun azimuth, both in [0, 360), to a
// window side with a confidence and a short explanation.
//
// The relative angle is sun azimuth minus bearing wrapped into (-180, 180];
// positive puts the sun on the right of the nose. Angles within 15° of the nose
// or beyond 150° from it give EITHER with LOW confidence and take precedence
// over the confidence bands. A positive angle gives RIGHT; anything else falls
// through to LEFT.
func DecideSeat(bearing, sunAzimuth float64) domain.SeatDecision {
	delta := domain.NormalizeSigned(sunAzimuth - bearing)
	abs := math.Abs(delta)

	switch {
	case abs < aheadCutoff:
		return domain.SeatDecision{
			Side:          domain.SideEither,
			RelativeAngle: delta,
			Confidence:    domain.ConfidenceLow,
			Explanation:   "sun roughly ahead of flight path",
		}
	case abs > behindCutoff:
		return domain.SeatDecision{
			Side:          domain.SideEither,
			RelativeAngle: delta,
			Confidence:    domain.ConfidenceLow,
			Explanation:   "sun roughly behind flight path",
		}
	}

	d := domain.SeatDecision{
		Side:          domain.SideLeft,
		RelativeAngle: delta,
		Confidence:    sideConfidence(abs),
		Explanation:   "sun on left side of flight path",
	}
	if delta > 0 {
		d.Side = domain.SideRight
		d.Explanation = "sun on right side of flight path"
	}
	return d
}

// sideConfidence grades |delta| for a LEFT/RIGHT decision. The MEDIUM band
// reaches 165° but DecideSeat never passes more than 150°.
func sideConfidence(abs float64) domain.Confidence {
	switch {
	case abs >= highBandLow && abs <= highBandHigh:
		return domain.ConfidenceHigh
	case (abs >= aheadCutoff && abs < highBandLow) || (abs > highBandHigh && abs <= mediumBandHigh):
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
