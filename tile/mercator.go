// Package tile renders web-Mercator raster tiles from a persisted radar
// elevation cut: Mercator/geodesic math, a quadtree coverage search, a
// Gaussian-filtered resampler, and a piecewise-linear reflectivity tone map.
package tile

import "math"

// TileDimensionPixels is the width and height of every rendered tile.
const TileDimensionPixels = 256

// sphereCircumferencePixels is S = 2^z * 256, the sphere's circumference in
// pixels at zoom z (spec §4.6).
func sphereCircumferencePixels(zoom int) float64 {
	return float64(uint64(1)<<uint(zoom)) * TileDimensionPixels
}

func falseOffset(circumferencePixels float64) (easting, northing float64) {
	return -circumferencePixels / 2, circumferencePixels / 2
}

// LatLonToPixelMercator projects latDeg/lonDeg into the tile/pixel
// coordinate at the given zoom level (spec §4.6 forward transform).
func LatLonToPixelMercator(latDeg, lonDeg float64, zoom int) (tx, ty int64, dx, dy float64) {
	circ := sphereCircumferencePixels(zoom)
	r := circ / (2 * math.Pi)

	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180

	px := r * lon
	py := (r / 2) * math.Log((1+math.Sin(lat))/(1-math.Sin(lat)))

	falseEasting, falseNorthing := falseOffset(circ)
	zx := px - falseEasting
	zy := falseNorthing - py

	tx = int64(math.Floor(zx / TileDimensionPixels))
	ty = int64(math.Floor(zy / TileDimensionPixels))
	dx = math.Mod(zx, TileDimensionPixels)
	dy = math.Mod(zy, TileDimensionPixels)
	return
}

// PixelMercatorToLatLon inverts LatLonToPixelMercator, returning latitude
// and longitude in radians (spec §4.6 inverse transform).
func PixelMercatorToLatLon(tx, ty int64, dx, dy float64, zoom int) (latRad, lonRad float64) {
	circ := sphereCircumferencePixels(zoom)
	r := circ / (2 * math.Pi)

	zx := float64(tx)*TileDimensionPixels + dx
	zy := float64(ty)*TileDimensionPixels + dy

	falseEasting, falseNorthing := falseOffset(circ)
	px := zx + falseEasting
	py := falseNorthing - zy

	latRad = math.Pi/2 - 2*math.Atan(math.Exp(-py/r))
	lonRad = px / r
	return
}
