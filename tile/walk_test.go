package tile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWalkThresholdPrunesEmptySubtrees(t *testing.T) {
	c := buildFullCircleCut(t, 0) // all below-threshold: every tile is insignificant

	results := RenderWalkThreshold(c, Coord{X: 0, Y: 0, Z: 0}, 38.0*math.Pi/180, -85.9*math.Pi/180, 300000, 5, SchemeNOAA)

	require.NotEmpty(t, results)
	for _, r := range results {
		assert.False(t, r.Rendered.Significant)
		// nothing below the root should have been reached once it proved insignificant
		assert.Equal(t, 0, r.Coord.Z)
	}
}

func TestRenderWalkThresholdRecursesWhileSignificant(t *testing.T) {
	c := buildFullCircleCut(t, 120)

	results := RenderWalkThreshold(c, Coord{X: 0, Y: 0, Z: 0}, 38.0*math.Pi/180, -85.9*math.Pi/180, 300000, 2, SchemeNOAA)

	maxZ := 0
	for _, r := range results {
		if r.Coord.Z > maxZ {
			maxZ = r.Coord.Z
		}
	}
	assert.Equal(t, 2, maxZ)
}

func TestRenderWalkMatchesFindIntersectingTilesCount(t *testing.T) {
	c := buildFullCircleCut(t, 120)
	lat := 38.0 * math.Pi / 180
	lon := -85.9 * math.Pi / 180

	coords := FindIntersectingTiles(Coord{X: 0, Y: 0, Z: 0}, lat, lon, 300000, 3)
	results := RenderWalk(c, Coord{X: 0, Y: 0, Z: 0}, lat, lon, 300000, 3, SchemeNOAA)

	assert.Len(t, results, len(coords))
}
