package archive2

import (
	"errors"
	"fmt"
	"time"
)

// Message is a fully reassembled logical message: the concatenation of all
// of its segments' payloads in segment_nr order (spec §3, §4.2 component F).
type Message struct {
	MessageType uint32
	Timestamp   time.Time
	Payload     []byte
}

// reassemble consumes segs in FIFO order and groups same-sequence-number
// segments into whole messages, in the order each message's first segment
// appeared in the input (spec §4.2 "Ordering guarantee").
//
// Duplicate segment numbers are not reliably detected; later segments
// silently overwrite earlier ones in the same slot. This limitation is
// inherited from the source format.
func reassemble(segs []MessageSegment) ([]Message, error) {
	var messages []Message
	remaining := segs

	for len(remaining) > 0 {
		head := remaining[0]

		if head.NrSegments <= 1 {
			messages = append(messages, Message{
				MessageType: uint32(head.MessageType),
				Timestamp:   head.Timestamp,
				Payload:     head.Payload,
			})
			remaining = remaining[1:]
			continue
		}

		slots := make([][]byte, head.NrSegments)
		filled := 0

		rest := remaining[1:]
		var leftover []MessageSegment

		if head.SegmentNr < 1 || int(head.SegmentNr) > int(head.NrSegments) {
			return messages, newErr(ErrBadSegment, fmt.Errorf("segment_nr=%d nr_segments=%d", head.SegmentNr, head.NrSegments))
		}
		slots[head.SegmentNr-1] = head.Payload
		filled++

		for _, seg := range rest {
			if seg.MessageSequenceNr != head.MessageSequenceNr {
				leftover = append(leftover, seg)
				continue
			}
			if seg.SegmentNr < 1 || int(seg.SegmentNr) > int(head.NrSegments) {
				return messages, newErr(ErrBadSegment, fmt.Errorf("segment_nr=%d nr_segments=%d", seg.SegmentNr, head.NrSegments))
			}
			if slots[seg.SegmentNr-1] == nil {
				filled++
			}
			slots[seg.SegmentNr-1] = seg.Payload
			if filled == int(head.NrSegments) {
				break
			}
		}

		if filled != int(head.NrSegments) {
			return messages, newErr(ErrReassemblyIncomplete, errors.New("end of segment queue reached with missing slots"))
		}

		var payload []byte
		for _, s := range slots {
			payload = append(payload, s...)
		}

		messages = append(messages, Message{
			MessageType: uint32(head.MessageType),
			Timestamp:   head.Timestamp,
			Payload:     payload,
		})

		// Remove all segments that were consumed into this message, preserving
		// the relative order of everything else.
		consumedSeq := head.MessageSequenceNr
		var next []MessageSegment
		seen := 0
		for _, seg := range rest {
			if seg.MessageSequenceNr == consumedSeq && seen < int(head.NrSegments)-1 {
				seen++
				continue
			}
			next = append(next, seg)
		}
		remaining = next
	}

	return messages, nil
}
