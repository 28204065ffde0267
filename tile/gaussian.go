package tile

import "math"

// gaussianXLimit is where the approximation clips; beyond it the curve is
// held flat rather than extrapolated (spec §4.9 "clipped at |x| = 2.22726").
const gaussianXLimit = 2.22726

// gaussianCrossover selects which of the two Taylor expansions to use.
const gaussianCrossover = 1.0

const (
	gaussianInnerOffset = 0.5
	gaussianOuterOffset = 1.5
)

// Horner-scheme coefficients for the inner piece, a degree-7 Taylor
// expansion of 2^(-2x^2) centred at x=0.5.
const (
	innerA0 = 0.70710678118658
	innerA1 = -0.98025814346860
	innerA2 = -0.30079497510241
	innerA3 = 1.04494768376740
	innerA4 = -0.15365608149925
	innerA5 = -0.53683952080211
	innerA6 = 0.19504045319711
	innerA7 = 0.17400738865300
)

// Outer piece, centred at x=1.5, giving much better accuracy out to about
// x=2.23 with smaller slope at the seams than a single-piece expansion.
const (
	outerB0 = 0.04419417382416
	outerB1 = -0.18379840190035
	outerB2 = 0.32093189823918
	outerB3 = -0.27504028874093
	outerB4 = 0.06351206060550
	outerB5 = 0.09968687365662
	outerB6 = -0.09844647924079
	outerB7 = 0.01900524221070
)

// gaussianPower approximates 2^(-2x^2) with a two-piece, degree-7 Horner
// polynomial, reflected around x=0 (spec §4.9). Beyond the x=2.22726 clip
// point the value is held at the clip value, so there is no hard cutoff.
// At the x=1 seam the two pieces are not exactly equal: the inner piece
// gives about 0.25042 and the outer about 0.24987, a step of about 5.5e-4.
func gaussianPower(x float64) float64 {
	xAbs := math.Abs(x)
	xClip := xAbs
	if xClip > gaussianXLimit {
		xClip = gaussianXLimit
	}

	if xClip < gaussianCrossover {
		xx := xClip - gaussianInnerOffset
		return innerA0 + xx*(innerA1+xx*(innerA2+xx*(innerA3+xx*(innerA4+xx*(innerA5+xx*(innerA6+xx*innerA7))))))
	}

	xx := xClip - gaussianOuterOffset
	return outerB0 + xx*(outerB1+xx*(outerB2+xx*(outerB3+xx*(outerB4+xx*(outerB5+xx*(outerB6+xx*outerB7))))))
}

// gaussianPowerExact is the direct pow()-based evaluation of 2^(-2x^2),
// kept only as a reference for tests of the polynomial's error bound.
func gaussianPowerExact(x float64) float64 {
	return math.Pow(2, -2*x*x)
}
