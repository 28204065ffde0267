package tile

import (
	"image"
	"image/png"
	"io"

	"github.com/kallsyms/go-nexrad-tiles/cut"
)

// Rendered is a 256x256 RGBA8 raster plus the significance flag the tile
// drivers use to decide whether to recurse into higher zoom levels (spec
// §4.11, §6 "Output").
type Rendered struct {
	Width, Height int
	// Pix is row-major, top-left origin, 4 bytes per pixel (R,G,B,A).
	Pix []byte
	// Significant is true if any pixel's final alpha was > 0.
	Significant bool
}

// filterWidthMeters returns the vertical pixel size, in metres, at tile
// row ty of zoom tz — used as the sampler's requested filter width (spec
// §4.11).
func filterWidthMeters(ty int64, tz int) float32 {
	latTop, _ := PixelMercatorToLatLon(0, ty, 0, 0, tz)
	latBottom, _ := PixelMercatorToLatLon(0, ty, 0, 1, tz)
	return float32(MeanEarthRadiusM * (latTop - latBottom))
}

// Render evaluates scheme over every pixel of tile coord against cut c and
// returns the resulting RGBA8 raster (spec §4.11). The per-pixel loop
// replaces the source's lazy virtual-image-view synthesis; significance
// tracking becomes an ordinary local flag.
func Render(c *cut.Cut, coord Coord, scheme ColorScheme) Rendered {
	out := Rendered{
		Width:  TileDimensionPixels,
		Height: TileDimensionPixels,
		Pix:    make([]byte, TileDimensionPixels*TileDimensionPixels*4),
	}

	width := filterWidthMeters(coord.Y, coord.Z)

	for y := 0; y < TileDimensionPixels; y++ {
		for x := 0; x < TileDimensionPixels; x++ {
			lat, lon := PixelMercatorToLatLon(coord.X, coord.Y, float64(x)+0.5, float64(y)+0.5, coord.Z)
			sample := SampleGaussian(c, lat, lon, width)
			px := scheme.Map(sample.DBZ, sample.Validity)

			i := (y*TileDimensionPixels + x) * 4
			out.Pix[i+0] = px.R
			out.Pix[i+1] = px.G
			out.Pix[i+2] = px.B
			out.Pix[i+3] = px.A

			if px.A > 0 {
				out.Significant = true
			}
		}
	}

	return out
}

// Image converts r to a standard library image.RGBA for encoding or
// further compositing.
func (r Rendered) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	return img
}

// EncodePNG writes r to w as a PNG, matching the teacher's cmd/l2serv use
// of image/png directly rather than a third-party encoder.
func EncodePNG(w io.Writer, r Rendered) error {
	return png.Encode(w, r.Image())
}
