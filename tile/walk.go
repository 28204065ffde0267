package tile

import "github.com/kallsyms/go-nexrad-tiles/cut"

// RenderWalk renders every tile of the quadtree rooted at start down to
// maxZoom that intersects c's coverage disk, exactly as FindIntersectingTiles
// enumerates it, and returns the results of rendering each (spec §4.8,
// §6 "generate").
func RenderWalk(c *cut.Cut, start Coord, lat, lon, distanceM float64, maxZoom int, scheme ColorScheme) []RenderResult {
	coords := FindIntersectingTiles(start, lat, lon, distanceM, maxZoom)
	return RenderSet(c, coords, scheme)
}

// RenderWalkThreshold performs the same quadtree walk as RenderWalk, but
// additionally prunes any subtree whose root tile rendered with no
// significant data (spec §6 "gen_thresh": "same as generate but prunes
// subtrees whose rendered tile has no significant data"). Unlike
// RenderWalk, rendering happens depth-first as the walk proceeds, since the
// decision to recurse into a tile's children depends on that tile's own
// render result.
func RenderWalkThreshold(c *cut.Cut, start Coord, lat, lon, distanceM float64, maxZoom int, scheme ColorScheme) []RenderResult {
	var out []RenderResult
	renderWalkThreshold(c, start, lat, lon, distanceM, maxZoom, scheme, &out)
	return out
}

func renderWalkThreshold(c *cut.Cut, coord Coord, lat, lon, distanceM float64, maxZoom int, scheme ColorScheme, out *[]RenderResult) {
	if !TestIntersection(coord, lat, lon, distanceM) {
		return
	}

	rendered := Render(c, coord, scheme)
	*out = append(*out, RenderResult{Coord: coord, Rendered: rendered})

	if !rendered.Significant || coord.Z == maxZoom {
		return
	}

	nextZ := coord.Z + 1
	children := [4]Coord{
		{X: coord.X * 2, Y: coord.Y * 2, Z: nextZ},
		{X: coord.X*2 + 1, Y: coord.Y * 2, Z: nextZ},
		{X: coord.X * 2, Y: coord.Y*2 + 1, Z: nextZ},
		{X: coord.X*2 + 1, Y: coord.Y*2 + 1, Z: nextZ},
	}
	for _, child := range children {
		renderWalkThreshold(c, child, lat, lon, distanceM, maxZoom, scheme, out)
	}
}
