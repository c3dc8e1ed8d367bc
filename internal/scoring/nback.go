package scoring

import (
	"math"
	"time"

	"cognitrack/internal/models"
)

// NBackResponse is the trial-level record produced by the n-back test UI.
// ReactionTime is non-nil only when the user responded.
type NBackResponse struct {
	StimulusIndex int      `json:"stimulusIndex"`
	IsTarget      bool     `json:"isTarget"`
	Responded     bool     `json:"responded"`
	Correct       bool     `json:"correct"`
	ReactionTime  *float64 `json:"reactionTime"`
}

// NBackData is the raw session payload stored alongside the scored result.
type NBackData struct {
	NBackLevel           int                  `json:"nBackLevel"`
	Sequence             []int                `json:"sequence"`
	Responses            []NBackResponse      `json:"responses"`
	EnvironmentalFactors EnvironmentalFactors `json:"environmentalFactors"`
}

// Reaction-time normalization bounds and the d' ceiling for the n-back
// composite. A d' of 4 is treated as the ceiling of excellent performance.
const (
	minReactionTime = 200.0  // ms, maps to a normalized score of 100
	maxReactionTime = 1000.0 // ms, maps to a normalized score of 0
	dPrimeCeiling   = 4.0
)

// clampRate keeps hit and false-alarm rates away from 0 and 1 so the
// inverse normal CDF never produces an infinite z-score.
func clampRate(rate float64) float64 {
	if rate == 0 {
		return 0.01
	}
	if rate == 1 {
		return 0.99
	}
	return rate
}

// DPrime computes the signal-detection sensitivity index from a hit rate
// and a false-alarm rate.
func DPrime(hitRate, falseAlarmRate float64) float64 {
	return InvNormalCDF(clampRate(hitRate)) - InvNormalCDF(clampRate(falseAlarmRate))
}

// CalculateTestResults converts a completed n-back session into a scored
// TestResult. The first nBackLevel responses structurally cannot be targets
// and are excluded from every metric.
func CalculateTestResults(nBackLevel int, sequence []int, responses []NBackResponse, env EnvironmentalFactors) *models.TestResult {
	valid := responses
	if nBackLevel > 0 && nBackLevel < len(responses) {
		valid = responses[nBackLevel:]
	} else if nBackLevel >= len(responses) {
		valid = nil
	}

	var truePositives, falsePositives, falseNegatives, trueNegatives int
	for _, r := range valid {
		switch {
		case r.IsTarget && r.Responded:
			truePositives++
		case r.IsTarget && !r.Responded:
			falseNegatives++
		case !r.IsTarget && r.Responded:
			falsePositives++
		default:
			trueNegatives++
		}
	}

	targets := truePositives + falseNegatives
	nonTargets := falsePositives + trueNegatives

	hitRate := 0.0
	if targets > 0 {
		hitRate = float64(truePositives) / float64(targets)
	}
	falseAlarmRate := 0.0
	if nonTargets > 0 {
		falseAlarmRate = float64(falsePositives) / float64(nonTargets)
	}

	dPrime := DPrime(hitRate, falseAlarmRate)

	accuracy := 0
	if len(valid) > 0 {
		accuracy = int(math.Round(100 * float64(truePositives+trueNegatives) / float64(len(valid))))
	}

	// Average reaction time only over correct responses that carry a
	// measured time: responded targets and (vacuously) non-responded
	// non-targets, the latter never having one.
	var rtSum float64
	var rtCount int
	for _, r := range valid {
		correctResponse := (r.IsTarget && r.Responded) || (!r.IsTarget && !r.Responded)
		if correctResponse && r.ReactionTime != nil {
			rtSum += *r.ReactionTime
			rtCount++
		}
	}

	var avgReactionTime float64
	normalizedReactionTime := 0.0
	if rtCount > 0 {
		avgReactionTime = rtSum / float64(rtCount)
		normalizedReactionTime = (maxReactionTime - avgReactionTime) / (maxReactionTime - minReactionTime) * 100
		normalizedReactionTime = math.Max(0, math.Min(100, normalizedReactionTime))
	}

	normalizedDPrime := math.Max(0, math.Min(100, dPrime/dPrimeCeiling*100))

	composite := math.Round(float64(accuracy)*0.5 + normalizedReactionTime*0.2 + normalizedDPrime*0.3)
	score := int(math.Round(composite * validityFactor(env)))

	return &models.TestResult{
		TestType:     models.TestTypeNBack,
		Score:        clampScore(score),
		Accuracy:     clampScore(accuracy),
		ReactionTime: int(math.Round(avgReactionTime)),
		RawData: serializeRawData(NBackData{
			NBackLevel:           nBackLevel,
			Sequence:             sequence,
			Responses:            responses,
			EnvironmentalFactors: env,
		}),
		CreatedAt: time.Now(),
	}
}
