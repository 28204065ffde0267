package tile

import (
	"math"

	"github.com/kallsyms/go-nexrad-tiles/cut"
)

// Fixed sampler parameters (spec §4.9).
const (
	angularResolutionDeg  = 0.5
	rangeResolutionM      = 250.0
	maxFilterAspect        = 2.0
	maxAzimuthFilterScale  = 20.0
	washoutAllowanceSamples = 2.00
)

// Sample is a reflectivity measurement paired with a validity weight in
// [0,1] (spec §3 "radar_value_t").
type Sample struct {
	DBZ      float32
	Validity float32
}

// gateVal returns the interpreted value of gate k of rad. Out-of-range
// indices clamp to the nearest real gate but report zero validity, so
// interpolation fades to transparent at the edges of coverage instead of
// the measurement itself collapsing to zero (spec §4.9).
func gateVal(rad cut.SimpleRadial, k int) (z float32, v float32) {
	n := rad.NrGates()
	idx := k
	validityScale := float32(1.0)
	if idx < 0 {
		idx = 0
		validityScale = 0
	} else if idx > n-1 {
		idx = n - 1
		validityScale = 0
	}

	value, ok := rad.Value(idx)
	if !ok {
		return 0, 0
	}
	return value, validityScale
}

// sampleRadialGaussian filters rad with a Gaussian kernel of the given
// width centred at the slant range implied by centralAngleRad (spec §4.9
// step 6).
func sampleRadialGaussian(rad cut.SimpleRadial, centralAngleRad float64, filterWidthM float32) (z, v float32) {
	elevationRad := float64(rad.Elevation) * math.Pi / 180
	rangeM := inclinedSlantRange(centralAngleRad, elevationRad)

	filterScale := float32(1.0)
	if filterWidthM > rad.RangeResM {
		filterScale = filterWidthM / rad.RangeResM
	}
	position := (float32(rangeM) - rad.StartRangeM) / rad.RangeResM

	washout := float32(math.Ceil(float64(filterScale) * washoutAllowanceSamples))
	nearIdx := int(position - washout)
	farIdx := int(position + washout)
	if nearIdx < 0 {
		nearIdx = 0
	}
	if farIdx < 0 {
		farIdx = 0
	}
	if farIdx > rad.NrGates() {
		farIdx = rad.NrGates()
	}

	if nearIdx > rad.NrGates() {
		z, v = gateVal(rad, nearIdx)
		return
	}

	var zAccum, vAccum, coefAccum float64
	for k := nearIdx; k <= farIdx; k++ {
		zk, vk := gateVal(rad, k)
		coef := gaussianPower((float64(k) - float64(position)) / float64(filterScale))
		zAccum += coef * float64(zk)
		vAccum += coef * float64(vk)
		coefAccum += coef
	}
	if coefAccum == 0 {
		return 0, 0
	}
	return float32(zAccum / coefAccum), float32(vAccum / coefAccum)
}

// SampleGaussian evaluates c at (lat,lon), both in radians, using a
// separable two-dimensional Gaussian filter of the requested width in
// metres, returning the reflectivity/validity pair described in spec §4.9.
func SampleGaussian(c *cut.Cut, lat, lon float64, filterWidthM float32) Sample {
	siteLat := float64(c.Latitude) * math.Pi / 180
	siteLon := float64(c.Longitude) * math.Pi / 180

	thetaDeg := initialBearingDeg(siteLat, siteLon, lat, lon)
	angularDistance := centralAngle(siteLat, siteLon, lat, lon)

	calculatedFilterWidth := float32(angularResolutionDeg*math.Pi/180*angularDistance) * MeanEarthRadiusM
	effectiveFilterWidth := calculatedFilterWidth
	if effectiveFilterWidth < filterWidthM {
		effectiveFilterWidth = filterWidthM
	}
	if effectiveFilterWidth < rangeResolutionM/maxFilterAspect {
		effectiveFilterWidth = rangeResolutionM / maxFilterAspect
	}

	rangeAtAngularDistance := float32(angularDistance) * MeanEarthRadiusM

	// The 0.5 factor corrects an empirical 2x overshoot in this
	// calculation; the source leaves it unexplained and we retain it
	// verbatim to preserve visual output (spec §9 open question).
	calculatedAzFilterScale := float32(1.0)
	if effectiveFilterWidth > rangeAtAngularDistance {
		calculatedAzFilterScale = effectiveFilterWidth / rangeAtAngularDistance
	}
	calculatedAzFilterScale *= 0.5

	azFilterScale := calculatedAzFilterScale
	if azFilterScale > maxAzimuthFilterScale {
		azFilterScale = maxAzimuthFilterScale
	}

	rangeFilterWidth := effectiveFilterWidth / maxFilterAspect
	if rangeFilterWidth < filterWidthM {
		rangeFilterWidth = filterWidthM
	}

	thetaStart := thetaDeg - float64(azFilterScale)*washoutAllowanceSamples
	thetaStop := thetaDeg + float64(azFilterScale)*washoutAllowanceSamples
	if thetaStart < 0 {
		thetaStart += 360
	}
	if thetaStop >= 360 {
		thetaStop -= 360
	}

	if c.Len() == 0 {
		return Sample{}
	}

	startIdx := c.LowerBound(float32(thetaStart))
	if startIdx >= c.Len() {
		startIdx = c.Len() - 1
	}
	stopIdx := c.LowerBound(float32(thetaStop))
	if stopIdx >= c.Len() {
		stopIdx = 0
	}

	var zAccum, vAccum, coefAccum float64
	i := startIdx
	for {
		rad := c.At(i)
		z, v := sampleRadialGaussian(rad, angularDistance, rangeFilterWidth)

		x := float64(rad.Azimuth) - thetaDeg
		if x > 180 {
			x -= 360
		}
		if x < -180 {
			x += 360
		}

		coef := gaussianPower(x / float64(azFilterScale))
		zAccum += coef * float64(z)
		vAccum += coef * float64(v)
		coefAccum += coef

		if i == stopIdx {
			break
		}
		i = (i + 1) % c.Len()
		if i == startIdx {
			break // guard against a degenerate single-radial cut looping forever
		}
	}

	if coefAccum == 0 {
		return Sample{}
	}
	return Sample{DBZ: float32(zAccum / coefAccum), Validity: float32(vAccum / coefAccum)}
}
