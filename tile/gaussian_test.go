package tile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianPowerSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 0.9, 1.0, 1.5, 2.0, 2.22726} {
		assert.Equal(t, gaussianPower(x), gaussianPower(-x))
	}
}

func TestGaussianPowerApproximationErrorBound(t *testing.T) {
	for x := 0.0; x <= gaussianXLimit; x += 0.01 {
		approx := gaussianPower(x)
		exact := gaussianPowerExact(x)
		assert.Less(t, math.Abs(approx-exact), 0.02, "x=%v approx=%v exact=%v", x, approx, exact)
	}
}

func TestGaussianPowerClipsBeyondLimit(t *testing.T) {
	atLimit := gaussianPower(gaussianXLimit)
	beyond := gaussianPower(gaussianXLimit + 1.0)
	assert.Equal(t, atLimit, beyond)
}

func TestGaussianPowerPeaksAtZero(t *testing.T) {
	assert.InDelta(t, 1.0, gaussianPower(0), 0.02)
}
