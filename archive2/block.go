package archive2

import (
	"bytes"
	"compress/bzip2"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// decodeBlock reads one compressed-block length prefix and payload from c,
// decompresses it, and returns the raw segment stream with its 12-byte
// opaque header already stripped (spec §4.2, RDA/RPG 7.3.4).
//
// The length prefix is signed but its sign bit is reserved and MUST be
// tolerated (open question in the original source); we take the absolute
// value and log loudly if it was negative so operators can grep for it.
func decodeBlock(c *Cursor) ([]byte, error) {
	length, err := c.I32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		logrus.Warnf("compressed block length prefix was negative (%s), taking absolute value",
			color.RedString("%d", length))
		length = -length
	}

	if length == 0 {
		return nil, newErr(ErrEmptyBzip2, errors.New("zero-length compressed payload"))
	}

	compressed, err := c.Bytes(int(length))
	if err != nil {
		return nil, err
	}

	decompressed, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, newErr(ErrBzip2Decode, err)
	}

	if len(decompressed) < ldmOpaqueHeaderLen {
		return nil, newErr(ErrTruncated, errors.New("block shorter than opaque header"))
	}

	return decompressed[ldmOpaqueHeaderLen:], nil
}

// decodeBlockSegments decodes a full compressed block into its constituent
// segments, dropping type-0 filler segments at the block boundary (spec
// §4.2/§4.3 "Type-0 segments are filler").
func decodeBlockSegments(c *Cursor) ([]MessageSegment, error) {
	raw, err := decodeBlock(c)
	if err != nil {
		return nil, err
	}

	bc := NewCursor(raw)
	var segs []MessageSegment
	for bc.Len() > 0 {
		seg, err := decodeSegment(bc)
		if err != nil {
			// a malformed trailing segment inside an otherwise-good block
			// shouldn't discard everything decoded so far.
			logrus.Debugf("dropping trailing segment: %v", err)
			break
		}
		if seg.MessageType == 0 {
			continue
		}
		segs = append(segs, seg)
	}
	return segs, nil
}
