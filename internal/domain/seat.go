package domain

// Window side recommended to the passenger.
type Side string

const (
	SideLeft   Side = "LEFT"
	SideRight  Side = "RIGHT"
	SideEither Side = "EITHER"
)

// Confidence attached to a seat decision.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Represents the outcome of comparing the flight bearing with the sun azimuth.
// RelativeAngle is sun azimuth minus bearing in (-180, 180]; positive means the
// sun is to the right of the nose.
type SeatDecision struct {
	Side          Side
	RelativeAngle float64
	Confidence    Confidence
	Explanation   string
}

// Concrete reports whether the decision names an actual window side.
func (d SeatDecision) Concrete() bool {
	return d.Side == SideLeft || d.Side == SideRight
}
