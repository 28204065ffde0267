package archive2

import (
	"fmt"
	"strconv"
	"time"
)

// VolumeHeaderRecordLen is the fixed on-wire size of a volume header (RDA/RPG 7.3.3).
const VolumeHeaderRecordLen = 24

// VolumeHeaderRecord is the first 24 bytes of every Archive-II file: magic,
// version, extension number, recording timestamp, and site ICAO. It is
// parsed once per archive and is immutable thereafter (spec §3).
type VolumeHeaderRecord struct {
	Version         uint32
	ExtensionNr     uint32
	VolumeRecorded  time.Time
	ICAOIdentifier  string
}

// decodeVolumeHeader parses a VolumeHeaderRecord from the first 24 bytes of
// an archive. A bad magic or unparseable version is fatal to the whole
// archive (spec §4.2, §7).
func decodeVolumeHeader(c *Cursor) (VolumeHeaderRecord, error) {
	var vhr VolumeHeaderRecord

	magic, err := c.String(6)
	if err != nil {
		return vhr, err
	}
	if magic != "AR2V00" {
		return vhr, newErr(ErrBadMagic, fmt.Errorf("got %q", magic))
	}

	versionStr, err := c.String(2)
	if err != nil {
		return vhr, err
	}
	version, err := strconv.ParseUint(versionStr, 10, 32)
	if err != nil {
		return vhr, newErr(ErrBadVersion, err)
	}
	vhr.Version = uint32(version)

	if err := c.Skip(1); err != nil { // period separator
		return vhr, err
	}

	extStr, err := c.String(3)
	if err != nil {
		return vhr, err
	}
	ext, err := strconv.ParseUint(extStr, 10, 32)
	if err != nil {
		return vhr, newErr(ErrBadVersion, err)
	}
	vhr.ExtensionNr = uint32(ext)

	mjd, err := c.U32()
	if err != nil {
		return vhr, err
	}
	msec, err := c.U32()
	if err != nil {
		return vhr, err
	}
	vhr.VolumeRecorded = nexradTime(mjd, msec)

	icao, err := c.String(4)
	if err != nil {
		return vhr, err
	}
	vhr.ICAOIdentifier = icao

	return vhr, nil
}

// Filename reconstructs the archive's on-disk tape filename, e.g. "AR2V0006.001".
func (vhr VolumeHeaderRecord) Filename() string {
	return fmt.Sprintf("AR2V%04d.%03d", vhr.Version, vhr.ExtensionNr)
}
