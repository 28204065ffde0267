package tile

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallsyms/go-nexrad-tiles/archive2"
	"github.com/kallsyms/go-nexrad-tiles/cut"
)

func radialWithGates(az float32, status uint8, gateFill byte) archive2.Radial {
	gates := make([]byte, 460)
	for i := range gates {
		gates[i] = gateFill
	}
	return archive2.Radial{
		RadarIdentifier: "KLVX",
		Timestamp:       time.Unix(0, 0),
		Azimuth:         az,
		Elevation:       0.5,
		RadialStatus:    status,
		VolumeConstants: archive2.VolumeConstants{
			Latitude:     38.0,
			Longitude:    -85.9,
			GeoElevation: 510,
			VCP:          212,
		},
		Moments: []archive2.RadialMoment{
			{
				MomentType:   "REF",
				NrGates:      uint16(len(gates)),
				StartRangeKm: 2.125,
				RangeResKm:   0.25,
				Scale:        2,
				Offset:       66,
				Gates:        gates,
			},
		},
	}
}

func buildFullCircleCut(t *testing.T, gateFill byte) *cut.Cut {
	t.Helper()
	b := cut.NewBuilder()

	_, err := b.Push(radialWithGates(0.0, 3, gateFill))
	require.NoError(t, err)

	for az := float32(0.5); az < 359.5; az += 0.5 {
		_, err := b.Push(radialWithGates(az, 1, gateFill))
		require.NoError(t, err)
	}

	c, err := b.Push(radialWithGates(359.5, 0, gateFill))
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestRenderAllReservedCodesIsNotSignificant(t *testing.T) {
	c := buildFullCircleCut(t, 0) // gate code 0: below-threshold, reserved

	var coord Coord
	coord.X, coord.Y, _, _ = LatLonToPixelMercator(38.0, -85.9, 10)
	coord.Z = 10

	r := Render(c, coord, SchemeNOAA)
	assert.False(t, r.Significant)
	for i := 3; i < len(r.Pix); i += 4 { // alpha byte of every pixel
		assert.Equal(t, byte(0), r.Pix[i])
	}
}

func TestRenderWithSignalIsSignificant(t *testing.T) {
	c := buildFullCircleCut(t, 120)

	var coord Coord
	coord.X, coord.Y, _, _ = LatLonToPixelMercator(38.0, -85.9, 10)
	coord.Z = 10

	r := Render(c, coord, SchemeNOAA)
	assert.True(t, r.Significant)
}

func TestFilterWidthMetersPositive(t *testing.T) {
	w := filterWidthMeters(300, 10)
	assert.True(t, w > 0)
	assert.False(t, math.IsNaN(float64(w)))
}
