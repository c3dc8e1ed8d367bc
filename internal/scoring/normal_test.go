package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvNormalCDFKnownValues(t *testing.T) {
	assert.InDelta(t, 0.0, InvNormalCDF(0.5), 1e-9)
	assert.InDelta(t, 1.96, InvNormalCDF(0.975), 0.01)
	assert.InDelta(t, -1.96, InvNormalCDF(0.025), 0.01)

	// Tail regions use a separate rational approximation.
	assert.InDelta(t, -2.3263, InvNormalCDF(0.01), 0.001)
	assert.InDelta(t, 2.3263, InvNormalCDF(0.99), 0.001)
}

func TestInvNormalCDFSymmetry(t *testing.T) {
	for _, p := range []float64{0.001, 0.01, 0.1, 0.25, 0.4, 0.49} {
		assert.InDelta(t, -InvNormalCDF(1-p), InvNormalCDF(p), 1e-8, "p=%v", p)
	}
}

func TestInvNormalCDFOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, InvNormalCDF(0))
	assert.Equal(t, 0.0, InvNormalCDF(1))
	assert.Equal(t, 0.0, InvNormalCDF(-0.5))
	assert.Equal(t, 0.0, InvNormalCDF(1.5))
}

func TestInvNormalCDFMonotonic(t *testing.T) {
	prev := InvNormalCDF(0.001)
	for p := 0.002; p < 1; p += 0.001 {
		z := InvNormalCDF(p)
		assert.Greater(t, z, prev, "p=%v", p)
		prev = z
	}
}
