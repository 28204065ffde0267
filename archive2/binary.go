package archive2

import (
	"encoding/binary"
	"errors"
	"math"
	"time"
)

// Cursor is a flat, stateful big-endian reader over an owned byte buffer.
// It replaces the operator-overload stream reads of the C++ original with
// one function per scalar type, each reporting ErrTruncated on short read.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential big-endian reads starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Seek repositions the cursor to an absolute offset within its buffer.
func (c *Cursor) Seek(pos int) { c.pos = pos }

func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, newErr(ErrTruncated, errors.New("short read"))
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// Bytes reads exactly n bytes into an owned (copied) buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// U8 reads one unsigned byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a big-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// I16 reads a big-endian int16.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads a big-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// I32 reads a big-endian int32.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// F32 reads a big-endian float32, bit-cast from its uint32 representation
// (spec §4.1: "Float reads are bit-cast from a big-endian u32").
func (c *Cursor) F32() (float32, error) {
	v, err := c.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// String reads n bytes and returns them as a string, e.g. for ASCII tags.
func (c *Cursor) String(n int) (string, error) {
	b, err := c.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// nexradEpoch is day index 1 in the NEXRAD modified-Julian-day convention.
var nexradEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// nexradTime converts a NEXRAD modified Julian day (day 1 == 1970-01-01) and
// milliseconds-since-midnight pair into a UTC timestamp (spec §4.1).
func nexradTime(mjd uint32, msec uint32) time.Time {
	return nexradEpoch.
		AddDate(0, 0, int(mjd)-1).
		Add(time.Duration(msec) * time.Millisecond)
}
