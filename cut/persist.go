package cut

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// persistMagic and persistSchemaVersion identify the on-disk format (spec
// §6 "self-describing binary serialisation... any stable schema-versioned
// format is acceptable").
var persistMagic = [4]byte{'N', 'X', '2', 'C'}

const persistSchemaVersion uint16 = 1

// persistedRadial is the CBOR wire shape of one (azimuth, SimpleRadial)
// pair. The bucket index is deliberately absent; it is rebuilt on Load
// (spec §4.4 "Persistence: only the ordered store is serialised").
type persistedRadial struct {
	Azimuth     float32 `cbor:"1,keyasint"`
	AzimuthNr   uint16  `cbor:"2,keyasint"`
	Elevation   float32 `cbor:"3,keyasint"`
	StartRangeM float32 `cbor:"4,keyasint"`
	RangeResM   float32 `cbor:"5,keyasint"`
	Scale       float32 `cbor:"6,keyasint"`
	Offset      float32 `cbor:"7,keyasint"`
	Gates       []byte  `cbor:"8,keyasint"`
}

type persistedCut struct {
	RadarIdentifier string            `cbor:"1,keyasint"`
	Latitude        float32           `cbor:"2,keyasint"`
	Longitude       float32           `cbor:"3,keyasint"`
	GeoElevation    int32             `cbor:"4,keyasint"`
	VCP             uint32            `cbor:"5,keyasint"`
	StartTimestamp  time.Time         `cbor:"6,keyasint"`
	EndTimestamp    time.Time         `cbor:"7,keyasint"`
	Radials         []persistedRadial `cbor:"8,keyasint"`
}

// Save writes c to w as a magic-and-version-prefixed CBOR document (spec
// §6). The radial store is written in ascending-azimuth order, which is
// also the order Load will reinsert it, so iteration order round-trips.
func Save(w io.Writer, c *Cut) error {
	pc := persistedCut{
		RadarIdentifier: c.RadarIdentifier,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		GeoElevation:    c.GeoElevation,
		VCP:             c.VCP,
		StartTimestamp:  c.StartTimestamp,
		EndTimestamp:    c.EndTimestamp,
	}
	for i := 0; i < c.Len(); i++ {
		az, r := c.radials.at(i)
		pc.Radials = append(pc.Radials, persistedRadial{
			Azimuth:     az,
			AzimuthNr:   r.AzimuthNr,
			Elevation:   r.Elevation,
			StartRangeM: r.StartRangeM,
			RangeResM:   r.RangeResM,
			Scale:       r.Scale,
			Offset:      r.Offset,
			Gates:       r.Gates,
		})
	}

	encoded, err := cbor.Marshal(pc)
	if err != nil {
		return fmt.Errorf("cut: encode: %w", err)
	}

	if _, err := w.Write(persistMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, persistSchemaVersion); err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}

// Load reads a Cut previously written by Save, rebuilding its bucket index
// via the same insertion path Save's source would have used.
func Load(r io.Reader) (*Cut, error) {
	header := make([]byte, 4+2)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("cut: read header: %w", err)
	}
	if !bytes.Equal(header[:4], persistMagic[:]) {
		return nil, fmt.Errorf("cut: bad magic %q", header[:4])
	}
	version := binary.BigEndian.Uint16(header[4:6])
	if version != persistSchemaVersion {
		return nil, fmt.Errorf("cut: unsupported schema version %d", version)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var pc persistedCut
	if err := cbor.Unmarshal(rest, &pc); err != nil {
		return nil, fmt.Errorf("cut: decode: %w", err)
	}

	c := &Cut{
		RadarIdentifier: pc.RadarIdentifier,
		Latitude:        pc.Latitude,
		Longitude:       pc.Longitude,
		GeoElevation:    pc.GeoElevation,
		VCP:             pc.VCP,
		StartTimestamp:  pc.StartTimestamp,
		EndTimestamp:    pc.EndTimestamp,
		radials:         &azimuthMap{},
	}
	for _, pr := range pc.Radials {
		sr := SimpleRadial{
			AzimuthNr:   pr.AzimuthNr,
			Azimuth:     pr.Azimuth,
			Elevation:   pr.Elevation,
			StartRangeM: pr.StartRangeM,
			RangeResM:   pr.RangeResM,
			Scale:       pr.Scale,
			Offset:      pr.Offset,
			Gates:       pr.Gates,
		}
		if err := c.radials.insert(sr.Azimuth, sr); err != nil {
			return nil, fmt.Errorf("cut: rebuilding index: %w", err)
		}
	}

	return c, nil
}
