package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func impactPtr(v float64) *float64 { return &v }

func TestImpactSignificanceOf(t *testing.T) {
	cases := []struct {
		name     string
		impact   *float64
		inverted bool
		want     ImpactSignificance
	}{
		{"nil", nil, false, ImpactInsufficientData},
		{"very positive", impactPtr(10), false, ImpactVeryPositive},
		{"very positive boundary", impactPtr(10.0), false, ImpactVeryPositive},
		{"positive boundary", impactPtr(5), false, ImpactPositive},
		{"positive", impactPtr(7.5), false, ImpactPositive},
		{"just under threshold", impactPtr(4.99), false, ImpactNeutral},
		{"zero", impactPtr(0), false, ImpactNeutral},
		{"just above negative threshold", impactPtr(-4.99), false, ImpactNeutral},
		{"negative boundary", impactPtr(-5), false, ImpactNegative},
		{"negative", impactPtr(-7.5), false, ImpactNegative},
		{"very negative", impactPtr(-10), false, ImpactVeryNegative},
		// Inverted metrics (reaction time): a drop is an improvement.
		{"inverted drop", impactPtr(-12), true, ImpactVeryPositive},
		{"inverted rise", impactPtr(6), true, ImpactNegative},
		{"inverted nil", nil, true, ImpactInsufficientData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ImpactSignificanceOf(tc.impact, tc.inverted, DefaultImpactThreshold))
		})
	}
}

func TestImpactSignificanceOfCustomThreshold(t *testing.T) {
	assert.Equal(t, ImpactNeutral, ImpactSignificanceOf(impactPtr(8), false, 10))
	assert.Equal(t, ImpactPositive, ImpactSignificanceOf(impactPtr(12), false, 10))
	assert.Equal(t, ImpactVeryPositive, ImpactSignificanceOf(impactPtr(20), false, 10))
}

func TestConfidenceLevelOf(t *testing.T) {
	cases := []struct {
		name       string
		confidence *float64
		want       ConfidenceLevel
	}{
		{"nil", nil, ConfidenceVeryLow},
		{"zero", impactPtr(0), ConfidenceVeryLow},
		{"just under low", impactPtr(0.19), ConfidenceVeryLow},
		{"low boundary", impactPtr(0.2), ConfidenceLow},
		{"moderate boundary", impactPtr(0.4), ConfidenceModerate},
		{"high boundary", impactPtr(0.6), ConfidenceHigh},
		{"very high boundary", impactPtr(0.8), ConfidenceVeryHigh},
		{"full confidence", impactPtr(1), ConfidenceVeryHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConfidenceLevelOf(tc.confidence))
		})
	}
}

func TestImpactDescription(t *testing.T) {
	assert.Equal(t,
		"Insufficient data to assess the impact on score",
		ImpactDescription(nil, "score", false))

	assert.Equal(t,
		"score improved strongly by 12.0%",
		ImpactDescription(impactPtr(12), "score", false))

	assert.Equal(t,
		"score decreased by 6.0%",
		ImpactDescription(impactPtr(-6), "score", false))

	assert.Equal(t,
		"No meaningful change in score (2.0%)",
		ImpactDescription(impactPtr(2), "score", false))

	// Reaction time drop reads as an improvement.
	assert.Equal(t,
		"reaction time improved by 6.0%",
		ImpactDescription(impactPtr(-6), "reaction time", true))
}
