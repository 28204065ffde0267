package archive2

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildVolumeHeader(t *testing.T, version, ext string, mjd, msec uint32, icao string) []byte {
	t.Helper()
	buf := make([]byte, VolumeHeaderRecordLen)
	copy(buf[0:6], "AR2V00")
	copy(buf[6:8], version)
	buf[8] = '.'
	copy(buf[9:12], ext)
	binary.BigEndian.PutUint32(buf[12:16], mjd)
	binary.BigEndian.PutUint32(buf[16:20], msec)
	copy(buf[20:24], icao)
	return buf
}

func TestDecodeVolumeHeader(t *testing.T) {
	buf := buildVolumeHeader(t, "06", "001", 15000, 3600000, "KLVX")
	vhr, err := decodeVolumeHeader(NewCursor(buf))
	require.NoError(t, err)

	assert.Equal(t, uint32(6), vhr.Version)
	assert.Equal(t, uint32(1), vhr.ExtensionNr)
	assert.Equal(t, "KLVX", vhr.ICAOIdentifier)
	assert.Equal(t, "AR2V0006.001", vhr.Filename())
}

func TestDecodeVolumeHeaderBadMagic(t *testing.T) {
	buf := buildVolumeHeader(t, "06", "001", 15000, 0, "KLVX")
	copy(buf[0:6], "XXXXXX")

	_, err := decodeVolumeHeader(NewCursor(buf))
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrBadMagic, de.Kind)
}
