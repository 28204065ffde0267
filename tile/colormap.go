package tile

import "math"

// RGBA is a straightforward 8-bit-per-channel colour, the tone-mapper's
// output unit (spec §4.10).
type RGBA struct {
	R, G, B, A uint8
}

type colorStop struct {
	// key is round(dBZ*10), matching the tenth-of-dBZ quantisation the
	// lookup keys are stored in (spec §4.10).
	key        int32
	r, g, b, a uint8
}

// reflectivityTable is the exact default ("noaa") breakpoint table from
// spec §4.10.
var reflectivityTable = []colorStop{
	{-320, 0x7a, 0x6c, 0x86, 0x00},
	{0, 0x7a, 0x6c, 0x86, 0x00},
	{100, 0x7a, 0x6c, 0x86, 0x7f},
	{250, 0x1a, 0xb7, 0x6a, 0xff},
	{350, 0x0b, 0x51, 0x0d, 0xff},
	{420, 0xdf, 0xca, 0x1a, 0xff},
	{500, 0xb8, 0x08, 0x10, 0xff},
	{550, 0x85, 0x09, 0x0a, 0xff},
	{620, 0xcb, 0x1c, 0xe5, 0xff},
	{700, 0x39, 0x9c, 0xcc, 0xff},
	{800, 0xff, 0xff, 0xff, 0xff},
	{1000, 0xff, 0xff, 0xff, 0xff},
}

// pinkTable is a channel-swapped variant of reflectivityTable (red and blue
// exchanged), standing in for the alternate "pink" scheme the teacher's
// render tool selects by name; like the default it saturates to white at
// high reflectivity.
var pinkTable = []colorStop{
	{-320, 0x86, 0x6c, 0x7a, 0x00},
	{0, 0x86, 0x6c, 0x7a, 0x00},
	{100, 0x86, 0x6c, 0x7a, 0x7f},
	{250, 0x6a, 0xb7, 0x1a, 0xff},
	{350, 0x0d, 0x51, 0x0b, 0xff},
	{420, 0x1a, 0xca, 0xdf, 0xff},
	{500, 0x10, 0x08, 0xb8, 0xff},
	{550, 0x0a, 0x09, 0x85, 0xff},
	{620, 0xe5, 0x1c, 0xcb, 0xff},
	{700, 0xcc, 0x9c, 0x39, 0xff},
	{800, 0xff, 0xff, 0xff, 0xff},
	{1000, 0xff, 0xff, 0xff, 0xff},
}

// ColorScheme maps a reflectivity dBZ value to a colour.
type ColorScheme struct {
	table []colorStop
}

// Schemes usable by the renderer and CLI drivers. "noaa" is the spec's
// exact default; the others are additional selectable tables (spec
// SPEC_FULL.md §3 "Additional color schemes").
var (
	SchemeNOAA = ColorScheme{table: reflectivityTable}
	SchemePink = ColorScheme{table: pinkTable}
)

// Schemes indexes the selectable schemes by name, for CLI flag lookup.
var Schemes = map[string]ColorScheme{
	"noaa": SchemeNOAA,
	"pink": SchemePink,
}

// lookup interpolates scheme's table at key z_hat = round(dBZ*10).
// Caching is intentionally disabled: the source notes that caching at this
// layer accumulates visible round-off artefacts at high zoom (spec §4.10,
// design note).
func (s ColorScheme) lookup(zHat int32) (r, g, b, a uint8) {
	table := s.table
	if zHat <= table[0].key {
		c := table[0]
		return c.r, c.g, c.b, c.a
	}
	last := table[len(table)-1]
	if zHat >= last.key {
		return last.r, last.g, last.b, last.a
	}

	for i := 1; i < len(table); i++ {
		if zHat > table[i].key {
			continue
		}
		lo, hi := table[i-1], table[i]
		mu := float64(zHat-lo.key) / float64(hi.key-lo.key)
		lerp := func(a, b uint8) uint8 {
			return uint8(float64(a)*(1-mu) + float64(b)*mu)
		}
		return lerp(lo.r, hi.r), lerp(lo.g, hi.g), lerp(lo.b, hi.b), lerp(lo.a, hi.a)
	}
	return last.r, last.g, last.b, last.a
}

// Map converts a (dBZ, validity) sample into a pixel. The alpha channel is
// additionally scaled by validity, rounded to 8 bits (spec §4.10).
func (s ColorScheme) Map(dBZ float32, validity float32) RGBA {
	zHat := int32(math.Round(float64(dBZ) * 10))
	r, g, b, a := s.lookup(zHat)
	scaledA := uint8(float64(a)*float64(validity) + 0.5)
	return RGBA{R: r, G: g, B: b, A: scaledA}
}
