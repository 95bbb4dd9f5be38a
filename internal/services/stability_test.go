package services

import (
	"scenic-seat-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decision(delta float64) domain.SeatDecision {
	return DecideSeat(0, delta)
}

func TestClassifyStability(t *testing.T) {
	tests := []struct {
		name     string
		dep, mid domain.SeatDecision
		want     domain.Stability
	}{
		{"sides differ", decision(60), decision(-60), domain.StabilityLow},
		{"sides differ any angle", decision(60), decision(-100), domain.StabilityLow},
		{"crosses 45", decision(40), decision(50), domain.StabilityMedium},
		{"crosses 45 reversed", decision(-50), decision(-40), domain.StabilityMedium},
		{"crosses 135", decision(130), decision(140), domain.StabilityMedium},
		{"stays high band", decision(90), decision(100), domain.StabilityHigh},
		{"stays medium band", decision(20), decision(40), domain.StabilityHigh},
		{"departure ahead", decision(10), decision(30), domain.StabilityLow},
		{"midpoint behind", decision(120), decision(160), domain.StabilityLow},
		{"both either", decision(5), decision(-5), domain.StabilityLow},
		{"boundary 45 both", decision(45), decision(90), domain.StabilityHigh},
		{"boundary 135 both", decision(135), decision(90), domain.StabilityHigh},
		{"boundary 150 kept", decision(150), decision(140), domain.StabilityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStability(tt.dep, tt.mid))
		})
	}
}

func TestClassifyStabilityUsesRelativeAngleOnly(t *testing.T) {
	// Side mismatch only counts when both sides are concrete.
	dep := domain.SeatDecision{Side: domain.SideEither, RelativeAngle: 60}
	mid := domain.SeatDecision{Side: domain.SideLeft, RelativeAngle: -70}
	assert.Equal(t, domain.StabilityHigh, ClassifyStability(dep, mid))
}
