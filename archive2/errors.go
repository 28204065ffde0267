package archive2

import "fmt"

// ErrorKind classifies the ways an Archive-II decode can fail (RDA/RPG
// 7.3.3-7.3.6). Most kinds are recoverable at the block/segment level; see
// the policy comment on each decode function for how callers should react.
type ErrorKind int

const (
	// ErrTruncated means the stream ended in the middle of a read.
	ErrTruncated ErrorKind = iota
	// ErrBadMagic means a volume header didn't start with "AR2V00".
	ErrBadMagic
	// ErrBadVersion means the volume header's version field wasn't ASCII decimal.
	ErrBadVersion
	// ErrEmptyBzip2 means a compressed block's length prefix was zero.
	ErrEmptyBzip2
	// ErrBzip2Decode means a compressed block's payload failed to decompress.
	ErrBzip2Decode
	// ErrBadSegment means a segment's segment_nr fell outside [1, nr_segments].
	ErrBadSegment
	// ErrReassemblyIncomplete means a multi-segment message never collected all its segments.
	ErrReassemblyIncomplete
	// ErrWrongType means a Message-31 decode was attempted on a non-31 message.
	ErrWrongType
	// ErrInvalidBlockType means a Message-31 sub-block had an unrecognized tag.
	ErrInvalidBlockType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTruncated:
		return "truncated"
	case ErrBadMagic:
		return "bad magic"
	case ErrBadVersion:
		return "bad version"
	case ErrEmptyBzip2:
		return "empty bzip2 payload"
	case ErrBzip2Decode:
		return "bzip2 decode failure"
	case ErrBadSegment:
		return "bad segment number"
	case ErrReassemblyIncomplete:
		return "incomplete message reassembly"
	case ErrWrongType:
		return "wrong message type"
	case ErrInvalidBlockType:
		return "invalid block type"
	default:
		return "unknown error"
	}
}

// DecodeError wraps a lower-level error with the ErrorKind taxonomy from
// spec so that callers can dispatch on kind with errors.As rather than
// string-matching.
type DecodeError struct {
	Kind ErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newErr(kind ErrorKind, err error) *DecodeError {
	return &DecodeError{Kind: kind, Err: err}
}
