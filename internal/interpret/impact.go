package interpret

import (
	"fmt"
	"math"
)

// ImpactSignificance buckets a percentage impact into discrete tiers.
type ImpactSignificance string

const (
	ImpactVeryPositive     ImpactSignificance = "very_positive"
	ImpactPositive         ImpactSignificance = "positive"
	ImpactNeutral          ImpactSignificance = "neutral"
	ImpactNegative         ImpactSignificance = "negative"
	ImpactVeryNegative     ImpactSignificance = "very_negative"
	ImpactInsufficientData ImpactSignificance = "insufficient_data"
)

// ConfidenceLevel buckets a [0,1] confidence scalar.
type ConfidenceLevel string

const (
	ConfidenceVeryLow  ConfidenceLevel = "very_low"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
)

// DefaultImpactThreshold is the percentage-point boundary between a neutral
// and a meaningful impact; twice the threshold marks a strong one.
const DefaultImpactThreshold = 5.0

// ImpactSignificanceOf classifies a percentage impact. A nil impact means
// there was not enough data to compute one. inverted flips the sign first,
// for metrics like reaction time where lower is better. Boundaries are
// inclusive at the threshold.
func ImpactSignificanceOf(impact *float64, inverted bool, threshold float64) ImpactSignificance {
	if impact == nil {
		return ImpactInsufficientData
	}

	normalized := *impact
	if inverted {
		normalized = -normalized
	}

	switch {
	case normalized >= 2*threshold:
		return ImpactVeryPositive
	case normalized >= threshold:
		return ImpactPositive
	case normalized <= -2*threshold:
		return ImpactVeryNegative
	case normalized <= -threshold:
		return ImpactNegative
	default:
		return ImpactNeutral
	}
}

// ConfidenceLevelOf maps a confidence scalar onto five tiers with fixed
// cutoffs at 0.2, 0.4, 0.6 and 0.8. A nil confidence is treated as the
// lowest tier, never an error.
func ConfidenceLevelOf(confidence *float64) ConfidenceLevel {
	if confidence == nil {
		return ConfidenceVeryLow
	}

	switch {
	case *confidence >= 0.8:
		return ConfidenceVeryHigh
	case *confidence >= 0.6:
		return ConfidenceHigh
	case *confidence >= 0.4:
		return ConfidenceModerate
	case *confidence >= 0.2:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// ImpactDescription renders a human sentence combining the impact bucket,
// direction and metric name.
func ImpactDescription(impact *float64, metric string, inverted bool) string {
	if impact == nil {
		return fmt.Sprintf("Insufficient data to assess the impact on %s", metric)
	}

	significance := ImpactSignificanceOf(impact, inverted, DefaultImpactThreshold)

	improved := *impact > 0
	if inverted {
		improved = !improved
	}
	direction := "decreased"
	if improved {
		direction = "improved"
	}

	switch significance {
	case ImpactVeryPositive, ImpactVeryNegative:
		return fmt.Sprintf("%s %s strongly by %.1f%%", metric, direction, math.Abs(*impact))
	case ImpactPositive, ImpactNegative:
		return fmt.Sprintf("%s %s by %.1f%%", metric, direction, math.Abs(*impact))
	default:
		return fmt.Sprintf("No meaningful change in %s (%.1f%%)", metric, *impact)
	}
}
