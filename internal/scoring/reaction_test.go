package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognitrack/internal/models"
)

func buildReactionTrials(correct, incorrect, tooEarly int, rt float64) []ReactionTrial {
	var trials []ReactionTrial
	for i := 0; i < correct; i++ {
		trials = append(trials, ReactionTrial{ReactionTime: floatPtr(rt), Correct: true})
	}
	for i := 0; i < incorrect; i++ {
		trials = append(trials, ReactionTrial{Correct: false})
	}
	for i := 0; i < tooEarly; i++ {
		trials = append(trials, ReactionTrial{TooEarly: true})
	}
	return trials
}

func TestCalculateReactionTestResults(t *testing.T) {
	trials := buildReactionTrials(8, 2, 0, 250)

	result := CalculateReactionTestResults(trials, EnvironmentalFactors{})
	require.NotNil(t, result)

	assert.Equal(t, models.TestTypeReaction, result.TestType)
	assert.Equal(t, 80, result.Accuracy)
	assert.Equal(t, 250, result.ReactionTime)
	// rt band score 80 * 0.6 + accuracy 80 * 0.4, no early penalty
	assert.Equal(t, 80, result.Score)
}

func TestReactionTimeScoreBands(t *testing.T) {
	cases := []struct {
		rt   float64
		want float64
	}{
		{150, 100},
		{200, 100},
		{250, 80},
		{300, 70},
		{350, 60},
		{400, 50},
		{500, 35},
		{600, 20},
		{700, 18},
		{1100, 10},
		{2000, 10}, // floor
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, reactionTimeScore(tc.rt), 1e-9, "rt=%v", tc.rt)
	}
}

func TestReactionTimeScoreMonotonic(t *testing.T) {
	prev := reactionTimeScore(200)
	for rt := 210.0; rt <= 1200; rt += 10 {
		s := reactionTimeScore(rt)
		assert.LessOrEqual(t, s, prev, "rt=%v", rt)
		prev = s
	}
}

func TestCalculateReactionTestResultsEarlyPenalty(t *testing.T) {
	trials := buildReactionTrials(8, 0, 2, 250)

	result := CalculateReactionTestResults(trials, EnvironmentalFactors{})

	// Early responses count against accuracy and add 2/10 * 30 = 6 penalty.
	assert.Equal(t, 80, result.Accuracy)
	assert.Equal(t, 74, result.Score)
}

func TestCalculateReactionTestResultsAllTooEarly(t *testing.T) {
	trials := buildReactionTrials(0, 0, 5, 0)

	result := CalculateReactionTestResults(trials, EnvironmentalFactors{})

	assert.Equal(t, 0, result.Accuracy)
	assert.Equal(t, 0, result.ReactionTime)
	// Composite would be -30; the final score is clamped at 0.
	assert.Equal(t, 0, result.Score)
}

func TestCalculateReactionTestResultsEmpty(t *testing.T) {
	result := CalculateReactionTestResults(nil, EnvironmentalFactors{})
	require.NotNil(t, result)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Accuracy)
	assert.Equal(t, 0, result.ReactionTime)
}

func TestCalculateReactionTestResultsValidityPenalty(t *testing.T) {
	trials := buildReactionTrials(10, 0, 0, 250)

	clean := CalculateReactionTestResults(trials, EnvironmentalFactors{})
	distracted := CalculateReactionTestResults(trials, EnvironmentalFactors{WindowSwitches: 4})

	assert.Greater(t, clean.Score, distracted.Score)
	// 4 switches cost 20%: round(88 * 0.8)
	assert.Equal(t, 88, clean.Score)
	assert.Equal(t, 70, distracted.Score)
}
