package interpret

import (
	"fmt"
	"math"
	"strings"
)

// EffectSizeLabel categorizes the magnitude of a standardized effect.
type EffectSizeLabel string

const (
	EffectNegligible EffectSizeLabel = "Negligible"
	EffectSmall      EffectSizeLabel = "Small"
	EffectMedium     EffectSizeLabel = "Medium"
	EffectLarge      EffectSizeLabel = "Large"
)

// MetricSignificance is the precomputed test statistic for one metric,
// produced by the stats engine and consumed here for display.
type MetricSignificance struct {
	TStatistic               float64         `json:"tStatistic"`
	PValue                   float64         `json:"pValue"`
	IsSignificant            bool            `json:"isSignificant"`
	EffectSize               float64         `json:"effectSize"`
	EffectSizeInterpretation EffectSizeLabel `json:"effectSizeInterpretation"`
	ChangePercent            float64         `json:"changePercent"`
}

// SignificanceAnalysis bundles per-metric significance for one analysis run.
type SignificanceAnalysis struct {
	Score        MetricSignificance `json:"score"`
	ReactionTime MetricSignificance `json:"reactionTime"`
	Accuracy     MetricSignificance `json:"accuracy"`
	Alpha        float64            `json:"alpha"`
}

// Display color tokens consumed by the frontend. Tiers follow the usual
// effect-size conventions (0.8 large, 0.5 medium).
const (
	colorNeutral = "text-gray-500"

	colorGoodStrong   = "text-green-700"
	colorGoodModerate = "text-green-600"
	colorGoodWeak     = "text-green-500"

	colorBadStrong   = "text-red-700"
	colorBadModerate = "text-red-600"
	colorBadWeak     = "text-red-500"
)

// Interpretation renders a MetricSignificance as a human-readable sentence.
func Interpretation(sig MetricSignificance) string {
	if !sig.IsSignificant {
		return "Not statistically significant"
	}

	direction := "increase"
	if sig.ChangePercent < 0 {
		direction = "decrease"
	}

	return fmt.Sprintf("Statistically significant %s of %.1f%% (%s effect)",
		direction,
		math.Abs(sig.ChangePercent),
		strings.ToLower(string(sig.EffectSizeInterpretation)))
}

// Color picks a display color token for a metric. isPositiveGood is false
// for metrics where a decrease is an improvement, such as reaction time.
func Color(sig MetricSignificance, isPositiveGood bool) string {
	if !sig.IsSignificant {
		return colorNeutral
	}

	isGood := (sig.ChangePercent > 0) == isPositiveGood

	abs := math.Abs(sig.EffectSize)
	switch {
	case isGood && abs >= 0.8:
		return colorGoodStrong
	case isGood && abs >= 0.5:
		return colorGoodModerate
	case isGood:
		return colorGoodWeak
	case abs >= 0.8:
		return colorBadStrong
	case abs >= 0.5:
		return colorBadModerate
	default:
		return colorBadWeak
	}
}

// Recommendation messages, one per overall outcome.
const (
	recommendationNone = "No statistically significant changes were detected. " +
		"Consider a longer tracking period or more consistent dosing before drawing conclusions."
	recommendationPositive = "This supplement shows a significant positive impact on your cognitive performance. " +
		"Continuing it appears worthwhile."
	recommendationNegative = "This supplement shows a significant negative impact on your cognitive performance. " +
		"Consider discontinuing it or reviewing confounding factors."
	recommendationMixed = "Results are mixed: some metrics improved while others declined. " +
		"Review the individual metrics and your confounding factors before deciding."
)

// Recommendation tallies significant changes across all metrics and returns
// one of four categorical recommendation strings. Reaction time counts as
// improved when its change is negative.
func Recommendation(analysis SignificanceAnalysis) string {
	var positive, negative int

	tally := func(sig MetricSignificance, isPositiveGood bool) {
		if !sig.IsSignificant {
			return
		}
		if (sig.ChangePercent > 0) == isPositiveGood {
			positive++
		} else {
			negative++
		}
	}

	tally(analysis.Score, true)
	tally(analysis.ReactionTime, false)
	tally(analysis.Accuracy, true)

	switch {
	case positive == 0 && negative == 0:
		return recommendationNone
	case negative == 0:
		return recommendationPositive
	case positive == 0:
		return recommendationNegative
	default:
		return recommendationMixed
	}
}
