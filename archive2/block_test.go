package archive2

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putU32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func TestDecodeBlockEmptyLength(t *testing.T) {
	buf := make([]byte, 4) // zero length prefix
	_, err := decodeBlock(NewCursor(buf))
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrEmptyBzip2, de.Kind)
}

func TestDecodeBlockNegativeLengthTakesAbsoluteValue(t *testing.T) {
	// A negative length prefix with no valid bzip2 payload behind it still
	// reaches the decompressor (and fails there), proving the sign was
	// stripped rather than rejected outright.
	buf := new(bytes.Buffer)
	var lengthPrefix [4]byte
	putU32BE(lengthPrefix[:], uint32(int32(-4)))
	buf.Write(lengthPrefix[:])
	buf.Write([]byte{0, 0, 0, 0})

	_, err := decodeBlock(NewCursor(buf.Bytes()))
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrBzip2Decode, de.Kind)
}

func TestDecodeBlockBadBzip2(t *testing.T) {
	buf := new(bytes.Buffer)
	var lengthPrefix [4]byte
	putU32BE(lengthPrefix[:], 4)
	buf.Write(lengthPrefix[:])
	buf.Write([]byte{0, 0, 0, 0}) // not a valid bzip2 stream

	_, err := decodeBlock(NewCursor(buf.Bytes()))
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrBzip2Decode, de.Kind)
}
