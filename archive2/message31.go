package archive2

import (
	"fmt"
	"time"
)

// RadialMoment is one physical measurement (reflectivity, velocity, ...) for
// every gate along a radial (spec §3 "Radial moment").
type RadialMoment struct {
	MomentType   string // 3-char tag, e.g. "REF"
	NrGates      uint16
	StartRangeKm float32
	RangeResKm   float32
	Scale        float32
	Offset       float32
	Gates        []byte
}

// Reserved raw gate codes (spec §3): 0 is below the receiver's detection
// threshold, 1 is range-folded. Both MUST be reported as invalid samples.
const (
	gateBelowThreshold = 0
	gateRangeFolded    = 1
)

// Value decodes gate k's code into a physical value. ok is false for an
// out-of-range index or one of the two reserved codes.
func (m RadialMoment) Value(k int) (v float32, ok bool) {
	if k < 0 || k >= len(m.Gates) {
		return 0, false
	}
	g := m.Gates[k]
	if g == gateBelowThreshold || g == gateRangeFolded {
		return 0, false
	}
	if m.Scale == 0 {
		return float32(g), true
	}
	return (float32(g) - m.Offset) / m.Scale, true
}

// VolumeConstants carries the site-wide facts attached to every radial
// (spec §3 "Volume constants").
type VolumeConstants struct {
	Latitude     float32
	Longitude    float32
	GeoElevation int32 // site elevation + feedhorn height, metres
	VCP          uint32
}

// Radial is one fully decoded Message-31 "Digital Radar Data Generic
// Format" payload (spec §3, §4.3).
type Radial struct {
	RadarIdentifier      string
	Timestamp            time.Time
	AzimuthNr            uint16
	Azimuth              float32
	CompressionIndicator uint8
	AzimuthRes           float32
	RadialStatus         uint8
	ElevationNr          uint8
	CutSectorNr          uint8
	Elevation            float32
	AzimuthIndexing      float32
	VolumeConstants      VolumeConstants
	Moments              []RadialMoment
}

// dataBlockPointerSlots is the fixed width of the Message-31 block-pointer
// table regardless of how many of its entries are populated (spec §4.3).
const dataBlockPointerSlots = 9

// dataBlockHeaderLen is the byte offset at which a radial-moment sub-block's
// gate bytes begin: 'D'(1) + moment_type(3) + reserved(4) + nr_gates(2) +
// start_range(2) + range_res(2) + reserved(6) + scale(4) + offset(4).
const dataBlockHeaderLen = 28

// decodeMessage31 parses a Message-31 payload end to end (spec §4.3). A
// malformed sub-block never aborts the whole radial; it is dropped.
func decodeMessage31(payload []byte) (Radial, error) {
	c := NewCursor(payload)
	var r Radial

	ident, err := c.String(4)
	if err != nil {
		return r, err
	}
	r.RadarIdentifier = ident

	msec, err := c.U32()
	if err != nil {
		return r, err
	}
	mjd, err := c.U16()
	if err != nil {
		return r, err
	}
	r.Timestamp = nexradTime(uint32(mjd), msec)

	azNr, err := c.U16()
	if err != nil {
		return r, err
	}
	r.AzimuthNr = azNr

	az, err := c.F32()
	if err != nil {
		return r, err
	}
	r.Azimuth = az

	ci, err := c.U8()
	if err != nil {
		return r, err
	}
	r.CompressionIndicator = ci

	if err := c.Skip(1); err != nil { // spare
		return r, err
	}
	if err := c.Skip(2); err != nil { // radial length, ignored after increment
		return r, err
	}

	resCode, err := c.U8()
	if err != nil {
		return r, err
	}
	if resCode == 1 {
		r.AzimuthRes = 0.5
	} else {
		r.AzimuthRes = 1.0
	}

	status, err := c.U8()
	if err != nil {
		return r, err
	}
	r.RadialStatus = status

	elevNr, err := c.U8()
	if err != nil {
		return r, err
	}
	r.ElevationNr = elevNr

	sectorNr, err := c.U8()
	if err != nil {
		return r, err
	}
	r.CutSectorNr = sectorNr

	elev, err := c.F32()
	if err != nil {
		return r, err
	}
	r.Elevation = elev

	if err := c.Skip(1); err != nil { // spot blanking status
		return r, err
	}

	idxRaw, err := c.U8()
	if err != nil {
		return r, err
	}
	r.AzimuthIndexing = float32(idxRaw) / 100

	nrBlocks, err := c.U16()
	if err != nil {
		return r, err
	}
	if int(nrBlocks) > dataBlockPointerSlots {
		return r, newErr(ErrTruncated, fmt.Errorf("nr_data_blocks=%d exceeds pointer table width", nrBlocks))
	}

	pointers := make([]uint32, nrBlocks)
	for i := range pointers {
		p, err := c.U32()
		if err != nil {
			return r, err
		}
		pointers[i] = p
	}
	if err := c.Skip(4 * (dataBlockPointerSlots - int(nrBlocks))); err != nil {
		return r, err
	}

	for i, p := range pointers {
		end := len(payload)
		if i+1 < len(pointers) {
			end = int(pointers[i+1])
		}
		start := int(p)
		if start < 0 || start > len(payload) || end < start || end > len(payload) {
			continue // malformed pointer; drop this sub-block
		}
		decodeDataBlock(payload[start:end], &r)
	}

	return r, nil
}

// decodeDataBlock classifies and decodes one Message-31 sub-block by its
// leading tag bytes (spec §4.3). Anything unrecognised is dropped silently
// (ErrInvalidBlockType is a caller-invisible policy, not a returned error).
func decodeDataBlock(block []byte, r *Radial) {
	if len(block) == 0 {
		return
	}
	switch {
	case block[0] == 'D':
		if moment, ok := decodeRadialMoment(block); ok {
			r.Moments = append(r.Moments, moment)
		}
	case len(block) >= 4 && string(block[:4]) == "RVOL":
		if vc, ok := decodeVolumeConstants(block); ok {
			r.VolumeConstants = vc
		}
	}
}

func decodeRadialMoment(block []byte) (RadialMoment, bool) {
	if len(block) < dataBlockHeaderLen {
		return RadialMoment{}, false
	}
	c := NewCursor(block)

	if err := c.Skip(1); err != nil {
		return RadialMoment{}, false
	}
	momentType, err := c.String(3)
	if err != nil {
		return RadialMoment{}, false
	}
	if err := c.Skip(4); err != nil {
		return RadialMoment{}, false
	}
	nrGates, err := c.U16()
	if err != nil {
		return RadialMoment{}, false
	}
	startRange, err := c.U16()
	if err != nil {
		return RadialMoment{}, false
	}
	rangeRes, err := c.U16()
	if err != nil {
		return RadialMoment{}, false
	}
	if err := c.Skip(6); err != nil {
		return RadialMoment{}, false
	}
	scale, err := c.F32()
	if err != nil {
		return RadialMoment{}, false
	}
	offset, err := c.F32()
	if err != nil {
		return RadialMoment{}, false
	}

	gatesStart := dataBlockHeaderLen
	gatesEnd := gatesStart + int(nrGates)
	if gatesEnd > len(block) {
		gatesEnd = len(block)
	}
	if gatesEnd < gatesStart {
		gatesEnd = gatesStart
	}
	gates := make([]byte, gatesEnd-gatesStart)
	copy(gates, block[gatesStart:gatesEnd])

	return RadialMoment{
		MomentType:   momentType,
		NrGates:      nrGates,
		StartRangeKm: float32(startRange) / 1000,
		RangeResKm:   float32(rangeRes) / 1000,
		Scale:        scale,
		Offset:       offset,
		Gates:        gates,
	}, true
}

// volumeConstantsHeaderSkip/volumeConstantsTailSkip are the reserved-byte
// runs in the "RVOL" sub-block either side of the fields this module cares
// about (spec §4.3).
const (
	volumeConstantsHeaderSkip = 8
	volumeConstantsTailSkip   = 20
)

func decodeVolumeConstants(block []byte) (VolumeConstants, bool) {
	c := NewCursor(block)
	if err := c.Skip(4); err != nil { // "RVOL" tag
		return VolumeConstants{}, false
	}
	if err := c.Skip(volumeConstantsHeaderSkip); err != nil {
		return VolumeConstants{}, false
	}
	lat, err := c.F32()
	if err != nil {
		return VolumeConstants{}, false
	}
	lon, err := c.F32()
	if err != nil {
		return VolumeConstants{}, false
	}
	siteElev, err := c.I16()
	if err != nil {
		return VolumeConstants{}, false
	}
	feedhorn, err := c.U16()
	if err != nil {
		return VolumeConstants{}, false
	}
	if err := c.Skip(volumeConstantsTailSkip); err != nil {
		return VolumeConstants{}, false
	}
	vcp, err := c.U16()
	if err != nil {
		return VolumeConstants{}, false
	}

	return VolumeConstants{
		Latitude:     lat,
		Longitude:    lon,
		GeoElevation: int32(siteElev) + int32(feedhorn),
		VCP:          uint32(vcp),
	}, true
}
