package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"cognitrack/internal/interpret"
	"cognitrack/internal/models"
)

// DefaultAlpha is the significance level used when the caller does not
// supply one.
const DefaultAlpha = 0.05

// PeriodStats summarizes one observation window.
type PeriodStats struct {
	Count            int     `json:"count"`
	MeanScore        float64 `json:"meanScore"`
	SDScore          float64 `json:"sdScore"`
	MeanReactionTime float64 `json:"meanReactionTime"`
	SDReactionTime   float64 `json:"sdReactionTime"`
	MeanAccuracy     float64 `json:"meanAccuracy"`
	SDAccuracy       float64 `json:"sdAccuracy"`
}

// AnalysisResult is the full payload persisted for one analysis run.
type AnalysisResult struct {
	BaselinePeriod       PeriodStats                    `json:"baselinePeriod"`
	ComparisonPeriod     PeriodStats                    `json:"comparisonPeriod"`
	SignificanceAnalysis interpret.SignificanceAnalysis `json:"significanceAnalysis"`
}

// Summarize computes descriptive statistics over a set of test results.
func Summarize(results []models.TestResult) PeriodStats {
	scores := make([]float64, len(results))
	reactionTimes := make([]float64, len(results))
	accuracies := make([]float64, len(results))
	for i, r := range results {
		scores[i] = float64(r.Score)
		reactionTimes[i] = float64(r.ReactionTime)
		accuracies[i] = float64(r.Accuracy)
	}

	ps := PeriodStats{Count: len(results)}
	if len(results) == 0 {
		return ps
	}

	ps.MeanScore = stat.Mean(scores, nil)
	ps.MeanReactionTime = stat.Mean(reactionTimes, nil)
	ps.MeanAccuracy = stat.Mean(accuracies, nil)
	if len(results) > 1 {
		ps.SDScore = stat.StdDev(scores, nil)
		ps.SDReactionTime = stat.StdDev(reactionTimes, nil)
		ps.SDAccuracy = stat.StdDev(accuracies, nil)
	}
	return ps
}

// Analyze compares a baseline window against a comparison window and
// returns per-metric significance. Degenerate inputs (fewer than two
// samples on either side, or zero variance) yield a non-significant result
// rather than NaN.
func Analyze(baseline, comparison []models.TestResult, alpha float64) AnalysisResult {
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}

	metric := func(pick func(models.TestResult) float64) interpret.MetricSignificance {
		a := make([]float64, len(baseline))
		for i, r := range baseline {
			a[i] = pick(r)
		}
		b := make([]float64, len(comparison))
		for i, r := range comparison {
			b[i] = pick(r)
		}
		return welchTTest(a, b, alpha)
	}

	return AnalysisResult{
		BaselinePeriod:   Summarize(baseline),
		ComparisonPeriod: Summarize(comparison),
		SignificanceAnalysis: interpret.SignificanceAnalysis{
			Score:        metric(func(r models.TestResult) float64 { return float64(r.Score) }),
			ReactionTime: metric(func(r models.TestResult) float64 { return float64(r.ReactionTime) }),
			Accuracy:     metric(func(r models.TestResult) float64 { return float64(r.Accuracy) }),
			Alpha:        alpha,
		},
	}
}

// welchTTest runs Welch's unequal-variance t-test of b against a and
// attaches a pooled-SD Cohen's d effect size.
func welchTTest(a, b []float64, alpha float64) interpret.MetricSignificance {
	sig := interpret.MetricSignificance{
		PValue:                   1,
		EffectSizeInterpretation: interpret.EffectNegligible,
	}

	n1, n2 := float64(len(a)), float64(len(b))
	if len(a) > 0 && len(b) > 0 {
		m1 := stat.Mean(a, nil)
		m2 := stat.Mean(b, nil)
		if m1 != 0 {
			sig.ChangePercent = (m2 - m1) / math.Abs(m1) * 100
		}
	}
	if len(a) < 2 || len(b) < 2 {
		return sig
	}

	m1, v1 := stat.MeanVariance(a, nil)
	m2, v2 := stat.MeanVariance(b, nil)

	se := math.Sqrt(v1/n1 + v2/n2)
	if se == 0 {
		return sig
	}

	t := (m2 - m1) / se

	// Welch-Satterthwaite degrees of freedom.
	num := math.Pow(v1/n1+v2/n2, 2)
	den := math.Pow(v1/n1, 2)/(n1-1) + math.Pow(v2/n2, 2)/(n2-1)
	df := num / den

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(t))

	pooledVar := ((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2)
	d := 0.0
	if pooledVar > 0 {
		d = (m2 - m1) / math.Sqrt(pooledVar)
	}

	sig.TStatistic = t
	sig.PValue = p
	sig.IsSignificant = p < alpha
	sig.EffectSize = d
	sig.EffectSizeInterpretation = effectSizeLabel(d)
	return sig
}

func effectSizeLabel(d float64) interpret.EffectSizeLabel {
	switch abs := math.Abs(d); {
	case abs >= 0.8:
		return interpret.EffectLarge
	case abs >= 0.5:
		return interpret.EffectMedium
	case abs >= 0.2:
		return interpret.EffectSmall
	default:
		return interpret.EffectNegligible
	}
}
