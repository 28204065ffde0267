package tile

import (
	"runtime"

	"github.com/alitto/pond"

	"github.com/kallsyms/go-nexrad-tiles/cut"
)

// RenderResult pairs a tile's render output with its coordinate, for
// RenderSet callers that need to know which tile each result belongs to.
type RenderResult struct {
	Coord    Coord
	Rendered Rendered
}

// RenderSet renders every tile in coords against c in parallel, exploiting
// the "distinct tiles are independent pure functions" guarantee of spec §5.
// A cut is immutable once built, so sharing it across workers is safe.
func RenderSet(c *cut.Cut, coords []Coord, scheme ColorScheme) []RenderResult {
	n := runtime.NumCPU() * 2
	pool := pond.New(n, 0, pond.MinWorkers(n))

	results := make([]RenderResult, len(coords))
	for i, coord := range coords {
		i, coord := i, coord
		pool.Submit(func() {
			results[i] = RenderResult{
				Coord:    coord,
				Rendered: Render(c, coord, scheme),
			}
		})
	}
	pool.StopAndWait()

	return results
}
