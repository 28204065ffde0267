package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSetCoversEveryCoordInOrder(t *testing.T) {
	c := buildFullCircleCut(t, 120)

	coords := []Coord{
		{X: 0, Y: 0, Z: 10},
		{X: 1, Y: 0, Z: 10},
		{X: 0, Y: 1, Z: 10},
	}

	results := RenderSet(c, coords, SchemeNOAA)
	require.Len(t, results, len(coords))
	for i, coord := range coords {
		assert.Equal(t, coord, results[i].Coord)
		assert.Equal(t, TileDimensionPixels, results[i].Rendered.Width)
	}
}
