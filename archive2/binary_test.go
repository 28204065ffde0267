package archive2

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorScalarReads(t *testing.T) {
	buf := []byte{
		0x01,             // U8
		0x00, 0x02,       // U16
		0x00, 0x00, 0x00, 0x03, // U32
		0x3f, 0x80, 0x00, 0x00, // F32 = 1.0
		'K', 'L', 'V', 'X',
	}
	c := NewCursor(buf)

	u8, err := c.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)

	u16, err := c.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), u16)

	u32, err := c.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), u32)

	f32, err := c.F32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f32)

	ident, err := c.String(4)
	require.NoError(t, err)
	assert.Equal(t, "KLVX", ident)

	assert.Equal(t, 0, c.Len())
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01})
	_, err := c.U32()
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrTruncated, de.Kind)
}

func TestNexradTime(t *testing.T) {
	got := nexradTime(15000, 3600000)
	want := time.Date(2011, time.January, 25, 1, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}
