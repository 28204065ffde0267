package archive2

import "time"

// fixedSegmentPayloadLen is the slot size every non-Message-31 segment
// occupies regardless of its declared length (spec §4.2).
const fixedSegmentPayloadLen = 2416

// m31HeaderOffset accounts for the 4 bytes of segment header that are
// already consumed by the time the Message-31 payload length is computed.
const m31HeaderOffset = 4

// MessageSegment is one fixed- or variable-length segment decoded from a
// decompressed block (spec §3, §4.2). Type-0 segments are filler and are
// dropped by the caller at the block boundary.
type MessageSegment struct {
	MessageType       uint8
	MessageSequenceNr uint16
	Timestamp         time.Time
	NrSegments        uint16
	SegmentNr         uint16
	Payload           []byte
}

// decodeSegment reads one MessageSegment header and its payload from c.
// Invariant: 1 <= SegmentNr <= NrSegments is NOT enforced here; it is the
// reassembler's job (spec §4.2) since a lone malformed segment shouldn't
// abort the whole block.
func decodeSegment(c *Cursor) (MessageSegment, error) {
	var seg MessageSegment

	lengthHalfwords, err := c.U16()
	if err != nil {
		return seg, err
	}

	if err := c.Skip(1); err != nil { // redundant channel
		return seg, err
	}

	messageType, err := c.U8()
	if err != nil {
		return seg, err
	}
	seg.MessageType = messageType

	seqNr, err := c.U16()
	if err != nil {
		return seg, err
	}
	seg.MessageSequenceNr = seqNr

	mjd, err := c.U16()
	if err != nil {
		return seg, err
	}
	msec, err := c.U32()
	if err != nil {
		return seg, err
	}
	seg.Timestamp = nexradTime(uint32(mjd), msec)

	nrSegments, err := c.U16()
	if err != nil {
		return seg, err
	}
	seg.NrSegments = nrSegments

	segNr, err := c.U16()
	if err != nil {
		return seg, err
	}
	seg.SegmentNr = segNr

	messageLen := 2 * int(lengthHalfwords)

	if messageType == 31 {
		payloadLen := messageLen - m31HeaderOffset
		if payloadLen < 0 {
			payloadLen = 0
		}
		payload, err := c.Bytes(payloadLen)
		if err != nil {
			return seg, err
		}
		seg.Payload = payload
	} else {
		slot, err := c.Bytes(fixedSegmentPayloadLen)
		if err != nil {
			return seg, err
		}
		if messageLen > len(slot) {
			messageLen = len(slot)
		}
		if messageLen < 0 {
			messageLen = 0
		}
		seg.Payload = slot[:messageLen]
	}

	return seg, nil
}
