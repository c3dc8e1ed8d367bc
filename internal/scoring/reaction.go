package scoring

import (
	"math"
	"time"

	"cognitrack/internal/models"
)

// ReactionTrial is one round of the reaction-time test. A trial flagged
// TooEarly is never a valid hit regardless of Correct.
type ReactionTrial struct {
	ReactionTime *float64 `json:"reactionTime"`
	Correct      bool     `json:"correct"`
	TooEarly     bool     `json:"tooEarly"`
}

// ReactionData is the raw session payload stored alongside the result.
type ReactionData struct {
	Trials               []ReactionTrial      `json:"trials"`
	EnvironmentalFactors EnvironmentalFactors `json:"environmentalFactors"`
}

// Benchmark bands for the reaction-time score. Anything at or under 200ms
// is ceiling performance; past 600ms the score decays slowly to a floor.
const (
	reactionEarlyPenaltyMax = 30.0
	reactionSlowTailFloor   = 10.0
)

// reactionTimeScore maps an average reaction time in ms onto a 0-100 scale
// by piecewise linear interpolation between fixed bands.
func reactionTimeScore(rt float64) float64 {
	switch {
	case rt <= 200:
		return 100
	case rt <= 300:
		return 90 - (rt-200)/100*20
	case rt <= 400:
		return 70 - (rt-300)/100*20
	case rt <= 600:
		return 50 - (rt-400)/200*30
	default:
		return math.Max(reactionSlowTailFloor, 20-(rt-600)/100*2)
	}
}

// CalculateReactionTestResults converts a completed reaction-time session
// into a scored TestResult.
func CalculateReactionTestResults(trials []ReactionTrial, env EnvironmentalFactors) *models.TestResult {
	var correctCount, tooEarlyCount int
	var rtSum float64
	var rtCount int

	for _, t := range trials {
		if t.TooEarly {
			tooEarlyCount++
			continue
		}
		if t.Correct {
			correctCount++
			if t.ReactionTime != nil {
				rtSum += *t.ReactionTime
				rtCount++
			}
		}
	}

	accuracy := 0
	if len(trials) > 0 {
		accuracy = int(math.Round(100 * float64(correctCount) / float64(len(trials))))
	}

	avgReactionTime := 0.0
	if rtCount > 0 {
		avgReactionTime = rtSum / float64(rtCount)
	}

	rtScore := 0.0
	if rtCount > 0 {
		rtScore = reactionTimeScore(avgReactionTime)
	}

	penalty := 0.0
	if len(trials) > 0 {
		penalty = float64(tooEarlyCount) / float64(len(trials)) * reactionEarlyPenaltyMax
	}

	composite := math.Round(rtScore*0.6 + float64(accuracy)*0.4 - penalty)
	score := int(math.Round(composite * validityFactor(env)))

	return &models.TestResult{
		TestType:     models.TestTypeReaction,
		Score:        clampScore(score),
		Accuracy:     clampScore(accuracy),
		ReactionTime: int(math.Round(avgReactionTime)),
		RawData: serializeRawData(ReactionData{
			Trials:               trials,
			EnvironmentalFactors: env,
		}),
		CreatedAt: time.Now(),
	}
}
