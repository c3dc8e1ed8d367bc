package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognitrack/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

// buildSession constructs a 20-trial 2-back session: the first two trials
// are structural non-targets, then 5 responded targets and 13 correctly
// ignored non-targets.
func buildSession(rt float64) (sequence []int, responses []NBackResponse) {
	sequence = make([]int, 20)
	for i := 0; i < 20; i++ {
		isTarget := i >= 2 && i < 7
		r := NBackResponse{
			StimulusIndex: i,
			IsTarget:      isTarget,
			Responded:     isTarget,
			Correct:       true,
		}
		if isTarget {
			r.ReactionTime = floatPtr(rt)
		}
		responses = append(responses, r)
	}
	return sequence, responses
}

func TestCalculateTestResultsPerfectSession(t *testing.T) {
	sequence, responses := buildSession(250)

	result := CalculateTestResults(2, sequence, responses, EnvironmentalFactors{})
	require.NotNil(t, result)

	assert.Equal(t, models.TestTypeNBack, result.TestType)
	assert.Equal(t, 100, result.Accuracy)
	assert.Equal(t, 250, result.ReactionTime)

	// accuracy 100 * 0.5 + normalized RT 93.75 * 0.2 + d' ceiling 100 * 0.3
	assert.Equal(t, 99, result.Score)
}

func TestCalculateTestResultsScoreBounds(t *testing.T) {
	sequence, responses := buildSession(250)

	for _, switches := range []int{0, 1, 3, 6, 10, 100} {
		result := CalculateTestResults(2, sequence, responses, EnvironmentalFactors{WindowSwitches: switches})
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.GreaterOrEqual(t, result.Accuracy, 0)
		assert.LessOrEqual(t, result.Accuracy, 100)
	}
}

func TestValidityPenaltyFloor(t *testing.T) {
	sequence, responses := buildSession(250)

	atFloor := CalculateTestResults(2, sequence, responses, EnvironmentalFactors{WindowSwitches: 6})
	pastFloor := CalculateTestResults(2, sequence, responses, EnvironmentalFactors{WindowSwitches: 20})

	// The penalty bottoms out at a 0.7 multiplier.
	assert.Equal(t, atFloor.Score, pastFloor.Score)
	assert.Equal(t, 69, atFloor.Score) // round(99 * 0.7)
}

func TestCalculateTestResultsEmptySession(t *testing.T) {
	result := CalculateTestResults(2, nil, nil, EnvironmentalFactors{})
	require.NotNil(t, result)

	assert.Equal(t, 0, result.Accuracy)
	assert.Equal(t, 0, result.ReactionTime)
	// Only the d' component survives: both rates are 0, clamped to 0.01,
	// so d' is exactly 0 and the whole composite collapses to 0.
	assert.Equal(t, 0, result.Score)
}

func TestCalculateTestResultsDiscardsWarmupTrials(t *testing.T) {
	// Respond to the two warm-up trials; they must not count as false alarms.
	sequence, responses := buildSession(250)
	responses[0].Responded = true
	responses[0].ReactionTime = floatPtr(300)
	responses[1].Responded = true
	responses[1].ReactionTime = floatPtr(300)

	result := CalculateTestResults(2, sequence, responses, EnvironmentalFactors{})
	assert.Equal(t, 100, result.Accuracy)
	assert.Equal(t, 99, result.Score)
}

func TestDPrimeHighSensitivity(t *testing.T) {
	d := DPrime(0.99, 0.01)
	assert.Greater(t, d, 3.5)
}

func TestDPrimeChancePerformance(t *testing.T) {
	assert.InDelta(t, 0.0, DPrime(0.5, 0.5), 1e-9)
}

func TestDPrimeClampsDegenerateRates(t *testing.T) {
	// Perfect rates clamp to 0.99/0.01 rather than producing infinities.
	assert.InDelta(t, DPrime(0.99, 0.01), DPrime(1, 0), 1e-9)
}

func TestCalculateTestResultsMissedTargets(t *testing.T) {
	sequence, responses := buildSession(250)
	// Miss all five targets.
	for i := 2; i < 7; i++ {
		responses[i].Responded = false
		responses[i].ReactionTime = nil
	}

	result := CalculateTestResults(2, sequence, responses, EnvironmentalFactors{})

	// 13 of 18 valid trials correct.
	assert.Equal(t, 72, result.Accuracy)
	// No responded-correct trials carry a reaction time.
	assert.Equal(t, 0, result.ReactionTime)
	assert.LessOrEqual(t, result.Score, 100)
	assert.GreaterOrEqual(t, result.Score, 0)
}
