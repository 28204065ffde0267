// Package archive2 decodes NEXRAD Archive-II Level-II volumes: the 24-byte
// volume header, the bzip2-compressed LDM record stream, and the
// message/segment framing that carries Message-31 (Digital Radar Data
// Generic Format) radials and Message-2 (RDA Status Data).
//
// The documents used and referenced in this package:
//   - RDA/RPG: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620002T.pdf (high level details)
//   - User: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620010H.pdf (bulk of the format)
package archive2

// Radial status codes (User 3.2.4.1.1), gating the cut builder's state
// transitions: a radial carries one of these to mark its place in an
// elevation cut and the volume as a whole.
const (
	radialStatusStartOfElevationScan   = 0
	radialStatusIntermediateRadialData = 1
	radialStatusEndOfElevation         = 2
	radialStatusBeginningOfVolumeScan  = 3
	radialStatusEndOfVolumeScan        = 4
	radialStatusStartNewElevation      = 5
)

// ldmOpaqueHeaderLen is the opaque control-word header at the start of every
// decompressed LDM record payload (RDA/RPG 7.3.4), skipped before segments begin.
const ldmOpaqueHeaderLen = 12
