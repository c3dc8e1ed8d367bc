package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretationNotSignificant(t *testing.T) {
	sig := MetricSignificance{IsSignificant: false, ChangePercent: 42}
	assert.Equal(t, "Not statistically significant", Interpretation(sig))
}

func TestInterpretationSignificant(t *testing.T) {
	increase := MetricSignificance{
		IsSignificant:            true,
		ChangePercent:            12.34,
		EffectSizeInterpretation: EffectLarge,
	}
	assert.Equal(t, "Statistically significant increase of 12.3% (large effect)", Interpretation(increase))

	decrease := MetricSignificance{
		IsSignificant:            true,
		ChangePercent:            -8.5,
		EffectSizeInterpretation: EffectMedium,
	}
	assert.Equal(t, "Statistically significant decrease of 8.5% (medium effect)", Interpretation(decrease))
}

func TestColorNotSignificant(t *testing.T) {
	sig := MetricSignificance{IsSignificant: false, ChangePercent: 50, EffectSize: 2}
	assert.Equal(t, "text-gray-500", Color(sig, true))
	assert.Equal(t, "text-gray-500", Color(sig, false))
}

func TestColorTiers(t *testing.T) {
	cases := []struct {
		name           string
		change         float64
		effect         float64
		isPositiveGood bool
		want           string
	}{
		{"good large", 10, 0.9, true, "text-green-700"},
		{"good medium", 10, 0.6, true, "text-green-600"},
		{"good small", 10, 0.3, true, "text-green-500"},
		{"bad large", -10, -0.9, true, "text-red-700"},
		{"bad medium", -10, -0.6, true, "text-red-600"},
		{"bad small", -10, -0.3, true, "text-red-500"},
		// Reaction time: a decrease is good.
		{"rt improvement", -10, -0.9, false, "text-green-700"},
		{"rt regression", 10, 0.9, false, "text-red-700"},
		// Boundaries are inclusive.
		{"large boundary", 10, 0.8, true, "text-green-700"},
		{"medium boundary", 10, 0.5, true, "text-green-600"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig := MetricSignificance{
				IsSignificant: true,
				ChangePercent: tc.change,
				EffectSize:    tc.effect,
			}
			assert.Equal(t, tc.want, Color(sig, tc.isPositiveGood))
		})
	}
}

func significant(change float64) MetricSignificance {
	return MetricSignificance{IsSignificant: true, ChangePercent: change}
}

func TestRecommendationNoSignificantChanges(t *testing.T) {
	analysis := SignificanceAnalysis{Alpha: 0.05}
	assert.Contains(t, Recommendation(analysis), "No statistically significant changes")
}

func TestRecommendationAllPositive(t *testing.T) {
	// A significant drop in reaction time is an improvement.
	analysis := SignificanceAnalysis{
		Score:        significant(15),
		ReactionTime: significant(-10),
		Accuracy:     MetricSignificance{IsSignificant: false},
	}
	assert.Contains(t, Recommendation(analysis), "significant positive impact")
}

func TestRecommendationAllNegative(t *testing.T) {
	analysis := SignificanceAnalysis{
		Score:        significant(-15),
		ReactionTime: significant(20),
	}
	assert.Contains(t, Recommendation(analysis), "significant negative impact")
}

func TestRecommendationMixed(t *testing.T) {
	analysis := SignificanceAnalysis{
		Score:        significant(15),
		ReactionTime: significant(20),
	}
	assert.Contains(t, Recommendation(analysis), "mixed")
}
