package cut

import "github.com/kallsyms/go-nexrad-tiles/archive2"

// Radial status codes, mirroring archive2's (unexported) copy of the same
// Msg-31 enum (spec §3 "Radial (Msg-31)").
const (
	radialStatusStartOfElevation = 0
	radialStatusEndOfElevation   = 2
	radialStatusStartOfVolume    = 3
)

type builderState int

const (
	stateInit builderState = iota
	stateAccumulating
	stateDone
)

// Builder accumulates one elevation cut from a stream of Message-31
// radials via the state machine in spec §4.5: Init -> Accumulating -> Done,
// gated on StartOfVolume / StartOfElevation transitions.
type Builder struct {
	// MomentIndex selects which of a radial's decoded moments is kept.
	// Defaults to 0, the reflectivity moment (spec §4.5 "Only moment index
	// 0 of each radial is kept").
	MomentIndex int

	state builderState
	cut   *Cut
}

// NewBuilder returns a Builder defaulted to keep moment 0 (reflectivity).
func NewBuilder() *Builder {
	return &Builder{}
}

// Push feeds one decoded radial through the state machine. It returns a
// non-nil Cut exactly once, on the radial whose RadialStatus transitions
// Accumulating to Done; every other call returns (nil, nil) unless the
// azimuth-index bucket collides, which is fatal (spec §7 IndexCollision).
func (b *Builder) Push(r archive2.Radial) (*Cut, error) {
	switch b.state {
	case stateDone:
		return nil, nil

	case stateInit:
		if r.RadialStatus != radialStatusStartOfVolume {
			return nil, nil
		}
		b.cut = &Cut{
			RadarIdentifier: r.RadarIdentifier,
			Latitude:        r.VolumeConstants.Latitude,
			Longitude:       r.VolumeConstants.Longitude,
			GeoElevation:    r.VolumeConstants.GeoElevation,
			VCP:             r.VolumeConstants.VCP,
			StartTimestamp:  r.Timestamp,
			EndTimestamp:    r.Timestamp,
			radials:         &azimuthMap{},
		}
		if err := b.pushRadial(r); err != nil {
			return nil, err
		}
		b.state = stateAccumulating
		return nil, nil

	default: // stateAccumulating
		if r.RadialStatus == radialStatusStartOfElevation {
			b.state = stateDone
			return b.cut, nil
		}
		if err := b.pushRadial(r); err != nil {
			return nil, err
		}
		if r.Timestamp.After(b.cut.EndTimestamp) {
			b.cut.EndTimestamp = r.Timestamp
		}
		return nil, nil
	}
}

// pushRadial flattens radial's selected moment into a SimpleRadial and
// inserts it into the cut under construction. A radial carrying no moment
// at MomentIndex (a stray Msg-31 parse or an unrelated moment set) is
// silently dropped, matching the "parse errors are silently skipped"
// policy of spec §4.5.
func (b *Builder) pushRadial(r archive2.Radial) error {
	if b.MomentIndex < 0 || b.MomentIndex >= len(r.Moments) {
		return nil
	}
	m := r.Moments[b.MomentIndex]

	sr := SimpleRadial{
		AzimuthNr:   r.AzimuthNr,
		Azimuth:     r.Azimuth,
		Elevation:   r.Elevation,
		StartRangeM: m.StartRangeKm * 1000,
		RangeResM:   m.RangeResKm * 1000,
		Scale:       m.Scale,
		Offset:      m.Offset,
		Gates:       m.Gates,
	}
	return b.cut.radials.insert(sr.Azimuth, sr)
}
