package archive2

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putF32(buf []byte, off int, v float32) {
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(v))
}

func buildMessage31Payload(t *testing.T) []byte {
	t.Helper()

	const headerLen = 4 + 4 + 2 + 2 + 4 + 1 + 1 + 2 + 1 + 1 + 1 + 1 + 4 + 1 + 1 + 2 + 4*dataBlockPointerSlots
	const rvolLen = 4 + volumeConstantsHeaderSkip + 4 + 4 + 2 + 2 + volumeConstantsTailSkip + 2
	const refLen = dataBlockHeaderLen + 4

	payload := make([]byte, headerLen+rvolLen+refLen)

	copy(payload[0:4], "KLVX")
	binary.BigEndian.PutUint32(payload[4:8], 3600000) // msec
	binary.BigEndian.PutUint16(payload[8:10], 15000)  // mjd
	binary.BigEndian.PutUint16(payload[10:12], 1)      // azimuth nr
	putF32(payload, 12, 90.0)                          // azimuth
	payload[16] = 0                                    // compression
	// payload[17] spare
	// payload[18:20] radial length, ignored
	payload[20] = 0 // resolution code -> 1.0 deg
	payload[21] = radialStatusBeginningOfVolumeScan
	payload[22] = 1 // elevation nr
	payload[23] = 0 // cut sector nr
	putF32(payload, 24, 0.5)                          // elevation
	// payload[28] spot blanking
	payload[29] = 50 // azimuth indexing raw -> 0.50

	binary.BigEndian.PutUint16(payload[30:32], 2) // nr_data_blocks

	rvolOffset := headerLen
	refOffset := headerLen + rvolLen
	binary.BigEndian.PutUint32(payload[32:36], uint32(rvolOffset))
	binary.BigEndian.PutUint32(payload[36:40], uint32(refOffset))
	// remaining 7 pointer slots left as zero/skipped

	rv := payload[rvolOffset:]
	copy(rv[0:4], "RVOL")
	putF32(rv, 4+volumeConstantsHeaderSkip, 38.0)   // latitude
	putF32(rv, 4+volumeConstantsHeaderSkip+4, -85.9) // longitude
	binary.BigEndian.PutUint16(rv[4+volumeConstantsHeaderSkip+8:], uint16(int16(500)))  // site elevation
	binary.BigEndian.PutUint16(rv[4+volumeConstantsHeaderSkip+10:], 10)                 // feedhorn
	binary.BigEndian.PutUint16(rv[4+volumeConstantsHeaderSkip+12+volumeConstantsTailSkip:], 212) // VCP

	ref := payload[refOffset:]
	ref[0] = 'D'
	copy(ref[1:4], "REF")
	binary.BigEndian.PutUint16(ref[8:10], 4) // nr gates
	binary.BigEndian.PutUint16(ref[10:12], 0)
	binary.BigEndian.PutUint16(ref[12:14], 250)
	putF32(ref, 20, 2.0) // scale
	putF32(ref, 24, 66.0) // offset
	copy(ref[dataBlockHeaderLen:], []byte{2, 10, 20, 30})

	return payload
}

func TestDecodeMessage31IdentifierExtraction(t *testing.T) {
	payload := buildMessage31Payload(t)
	r, err := decodeMessage31(payload)
	require.NoError(t, err)
	assert.Equal(t, "KLVX", r.RadarIdentifier)
}

func TestDecodeMessage31Fields(t *testing.T) {
	payload := buildMessage31Payload(t)
	r, err := decodeMessage31(payload)
	require.NoError(t, err)

	assert.Equal(t, float32(90.0), r.Azimuth)
	assert.Equal(t, uint8(radialStatusBeginningOfVolumeScan), r.RadialStatus)
	assert.Equal(t, float32(0.5), r.AzimuthIndexing)
	assert.Equal(t, float32(38.0), r.VolumeConstants.Latitude)
	assert.InDelta(t, -85.9, r.VolumeConstants.Longitude, 0.001)
	assert.Equal(t, uint32(212), r.VolumeConstants.VCP)
	assert.Equal(t, int32(510), r.VolumeConstants.GeoElevation)

	require.Len(t, r.Moments, 1)
	m := r.Moments[0]
	assert.Equal(t, "REF", m.MomentType)
	assert.Equal(t, uint16(4), m.NrGates)

	v0, ok0 := m.Value(0)
	require.True(t, ok0)
	assert.InDelta(t, (2.0-66.0)/2.0, v0, 0.001)

	v1, ok1 := m.Value(1)
	require.True(t, ok1)
	assert.InDelta(t, (10.0-66.0)/2.0, v1, 0.001)
}

func TestRadialMomentValueReservedCodes(t *testing.T) {
	m := RadialMoment{Scale: 2, Offset: 10, Gates: []byte{0, 1, 5}}

	_, ok := m.Value(0)
	assert.False(t, ok)
	_, ok = m.Value(1)
	assert.False(t, ok)
	v, ok := m.Value(2)
	require.True(t, ok)
	assert.InDelta(t, (5.0-10.0)/2.0, v, 0.001)
}
