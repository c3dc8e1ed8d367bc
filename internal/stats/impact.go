package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Impact compares a metric between days a supplement was taken and days it
// was not, returning the percentage change and a [0,1] confidence value.
// With fewer than two samples on either side the impact is nil and
// confidence zero; callers classify that as insufficient data.
func Impact(onDays, offDays []float64) (*float64, float64) {
	if len(onDays) < 2 || len(offDays) < 2 {
		return nil, 0
	}

	meanOff := stat.Mean(offDays, nil)
	meanOn := stat.Mean(onDays, nil)
	if meanOff == 0 {
		return nil, 0
	}

	impact := (meanOn - meanOff) / math.Abs(meanOff) * 100

	// Confidence is the complement of the Welch p-value for the two
	// samples: strong separation gives confidence near 1.
	sig := welchTTest(offDays, onDays, DefaultAlpha)
	confidence := 1 - sig.PValue
	if confidence < 0 {
		confidence = 0
	}

	return &impact, confidence
}
