package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cognitrack/internal/interpret"
	"cognitrack/internal/models"
)

func resultsFromScores(scores ...int) []models.TestResult {
	out := make([]models.TestResult, len(scores))
	for i, s := range scores {
		out[i] = models.TestResult{
			Score:        s,
			Accuracy:     s,
			ReactionTime: 1000 - s,
		}
	}
	return out
}

func TestSummarize(t *testing.T) {
	ps := Summarize(resultsFromScores(60, 70, 80))

	assert.Equal(t, 3, ps.Count)
	assert.InDelta(t, 70, ps.MeanScore, 1e-9)
	assert.InDelta(t, 10, ps.SDScore, 1e-9)
	assert.InDelta(t, 930, ps.MeanReactionTime, 1e-9)
	assert.InDelta(t, 70, ps.MeanAccuracy, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	ps := Summarize(nil)
	assert.Equal(t, 0, ps.Count)
	assert.Zero(t, ps.MeanScore)
	assert.Zero(t, ps.SDScore)
}

func TestAnalyzeWellSeparatedSamples(t *testing.T) {
	baseline := resultsFromScores(50, 52, 48, 51, 49, 50, 53, 47)
	comparison := resultsFromScores(70, 72, 68, 71, 69, 70, 73, 67)

	result := Analyze(baseline, comparison, DefaultAlpha)
	score := result.SignificanceAnalysis.Score

	assert.True(t, score.IsSignificant)
	assert.Less(t, score.PValue, 0.01)
	assert.Equal(t, interpret.EffectLarge, score.EffectSizeInterpretation)
	assert.InDelta(t, 40, score.ChangePercent, 1e-9)
	assert.Greater(t, score.TStatistic, 0.0)

	// Reaction time dropped by the same margin, so its t goes negative.
	assert.True(t, result.SignificanceAnalysis.ReactionTime.IsSignificant)
	assert.Less(t, result.SignificanceAnalysis.ReactionTime.TStatistic, 0.0)
	assert.Less(t, result.SignificanceAnalysis.ReactionTime.ChangePercent, 0.0)
}

func TestAnalyzeIdenticalSamples(t *testing.T) {
	a := resultsFromScores(60, 65, 70, 75, 80)
	b := resultsFromScores(60, 65, 70, 75, 80)

	result := Analyze(a, b, DefaultAlpha)
	score := result.SignificanceAnalysis.Score

	assert.False(t, score.IsSignificant)
	assert.InDelta(t, 0, score.ChangePercent, 1e-9)
	assert.Equal(t, interpret.EffectNegligible, score.EffectSizeInterpretation)
}

func TestAnalyzeTooFewSamples(t *testing.T) {
	result := Analyze(resultsFromScores(50), resultsFromScores(90, 95, 92), DefaultAlpha)
	score := result.SignificanceAnalysis.Score

	assert.False(t, score.IsSignificant)
	assert.Equal(t, 1.0, score.PValue)
	// The percentage change is still reported even when the test cannot run.
	assert.InDelta(t, 84.67, score.ChangePercent, 0.01)
}

func TestAnalyzeZeroVariance(t *testing.T) {
	result := Analyze(resultsFromScores(50, 50, 50), resultsFromScores(50, 50, 50), DefaultAlpha)
	score := result.SignificanceAnalysis.Score

	assert.False(t, score.IsSignificant)
	assert.Equal(t, 1.0, score.PValue)
}

func TestAnalyzeInvalidAlphaFallsBack(t *testing.T) {
	baseline := resultsFromScores(50, 52, 48, 51)
	comparison := resultsFromScores(70, 72, 68, 71)

	result := Analyze(baseline, comparison, -1)
	assert.Equal(t, DefaultAlpha, result.SignificanceAnalysis.Alpha)
}

func TestImpact(t *testing.T) {
	onDays := []float64{80, 82, 78, 81, 79}
	offDays := []float64{60, 62, 58, 61, 59}

	impact, confidence := Impact(onDays, offDays)

	assert.NotNil(t, impact)
	assert.InDelta(t, 33.33, *impact, 0.01)
	assert.Greater(t, confidence, 0.95)
}

func TestImpactInsufficientData(t *testing.T) {
	impact, confidence := Impact([]float64{80}, []float64{60, 62, 58})
	assert.Nil(t, impact)
	assert.Zero(t, confidence)

	impact, confidence = Impact([]float64{80, 82}, nil)
	assert.Nil(t, impact)
	assert.Zero(t, confidence)
}

func TestImpactZeroBaseline(t *testing.T) {
	impact, confidence := Impact([]float64{10, 12}, []float64{0, 0})
	assert.Nil(t, impact)
	assert.Zero(t, confidence)
}

func TestImpactNoDifference(t *testing.T) {
	same := []float64{70, 71, 69, 70}
	impact, confidence := Impact(same, same)

	assert.NotNil(t, impact)
	assert.InDelta(t, 0, *impact, 1e-9)
	assert.Less(t, confidence, 0.5)
}
