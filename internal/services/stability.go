package services

import (
	"math"
	"scenic-seat-service/internal/domain"
)

// ClassifyStability grades whether the departure decision still holds at the
// route midpoint. Rules apply in order, first match wins:
//
//  1. both sides are concrete and differ: LOW
//  2. either sample has the sun within 15° of the nose or beyond 150°: LOW
//  3. the samples sit on different sides of the 45° or 135° confidence boundary: MEDIUM
//  4. otherwise: HIGH
func ClassifyStability(departure, midpoint domain.SeatDecision) domain.Stability {
	if departure.Concrete() && midpoint.Concrete() && departure.Side != midpoint.Side {
		return domain.StabilityLow
	}

	dep := math.Abs(departure.RelativeAngle)
	mid := math.Abs(midpoint.RelativeAngle)

	if ambiguous(dep) || ambiguous(mid) {
		return domain.StabilityLow
	}

	if (dep < highBandLow) != (mid < highBandLow) || (dep <= highBandHigh) != (mid <= highBandHigh) {
		return domain.StabilityMedium
	}

	return domain.StabilityHigh
}

// ambiguous reports whether |delta| lies in the sun-ahead or sun-behind zone.
func ambiguous(abs float64) bool {
	return abs < aheadCutoff || abs > behindCutoff
}
