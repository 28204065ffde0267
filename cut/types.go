// Package cut builds and serves the compact, serialisable representation
// of a single radar elevation cut: an azimuth-keyed container with a
// bucketed direct-index for constant-time "first radial at or after angle
// theta" lookups, and the state machine that accumulates it from a stream
// of decoded Message-31 radials.
package cut

import "time"

// SimpleRadial is the rendering-side flattened form of a single moment of
// a single radial (spec §3 "Simple radial").
type SimpleRadial struct {
	AzimuthNr    uint16
	Azimuth      float32
	Elevation    float32
	StartRangeM  float32
	RangeResM    float32
	Scale        float32
	Offset       float32
	Gates        []byte
}

// NrGates is the number of range gates carried by this radial.
func (r SimpleRadial) NrGates() int { return len(r.Gates) }

// Value decodes gate k's code into a physical reflectivity value, mirroring
// archive2.RadialMoment.Value's reserved-code handling.
func (r SimpleRadial) Value(k int) (v float32, ok bool) {
	if k < 0 || k >= len(r.Gates) {
		return 0, false
	}
	g := r.Gates[k]
	if g == 0 || g == 1 {
		return 0, false
	}
	if r.Scale == 0 {
		return float32(g), true
	}
	return (float32(g) - r.Offset) / r.Scale, true
}

// Cut is the frozen, persistable representation of one elevation cut (spec
// §3 "Simple cut"). Once Builder.Push has returned it, it is read-only.
type Cut struct {
	RadarIdentifier string
	Latitude        float32
	Longitude       float32
	GeoElevation    int32
	VCP             uint32
	StartTimestamp  time.Time
	EndTimestamp    time.Time

	radials *azimuthMap
}

// Len returns the number of radials in the cut.
func (c *Cut) Len() int {
	if c.radials == nil {
		return 0
	}
	return c.radials.len()
}

// LowerBound returns the index of the first radial with azimuth >= theta
// (degrees), or Len() if every radial's azimuth is less than theta.
func (c *Cut) LowerBound(theta float32) int {
	return c.radials.lowerBound(theta)
}

// At returns the radial at store position i, wrapping around the circle
// so callers iterating past the end continue from azimuth 0 (spec §4.4
// "forward iteration that MAY wrap around").
func (c *Cut) At(i int) SimpleRadial {
	_, r := c.radials.at(i)
	return r
}
