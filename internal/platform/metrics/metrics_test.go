package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRecommendation(t *testing.T) {
	m := New()

	m.ObserveRecommendation("LEFT", "HIGH", false)
	m.ObserveRecommendation("LEFT", "HIGH", true)
	m.ObserveRecommendation("EITHER", "LOW", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Recommendations.WithLabelValues("LEFT", "HIGH")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Recommendations.WithLabelValues("EITHER", "LOW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MidpointFallbacks))
}

func TestNewUsesIndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.MidpointFallbacks.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.MidpointFallbacks))
}
