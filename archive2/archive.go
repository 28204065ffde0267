package archive2

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Archive is one fully decoded Level-II volume: the immutable volume header
// plus every radial and RDA-status record recovered from its message
// stream (spec §2 component E, data flow E -> D -> C -> F -> G).
type Archive struct {
	VolumeHeader VolumeHeaderRecord
	Radials      []Radial
	Status       []Message2
}

// Decode reads a whole Archive-II volume from r: one volume header followed
// by a stream of compressed blocks until EOF (spec §4.2 component E).
//
// A block that fails to decompress (ErrEmptyBzip2, ErrBzip2Decode) is
// skipped and decoding continues with the next block, matching the
// message-pump propagation policy in spec §7. A block that runs past the
// end of the input (ErrTruncated) ends the block loop, and the segments
// collected so far are still reassembled and decoded. Any other error is
// fatal to the whole archive.
func Decode(r io.Reader) (*Archive, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	c := NewCursor(buf)

	vhr, err := decodeVolumeHeader(c)
	if err != nil {
		return nil, err
	}
	logrus.Infof("%s: %s", vhr.ICAOIdentifier, color.CyanString(vhr.Filename()))

	ar := &Archive{VolumeHeader: vhr}

	var allSegments []MessageSegment
	for c.Len() > 0 {
		segs, err := decodeBlockSegments(c)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) && (de.Kind == ErrEmptyBzip2 || de.Kind == ErrBzip2Decode) {
				logrus.Warnf("skipping compressed block: %v", err)
				continue
			}
			if errors.As(err, &de) && de.Kind == ErrTruncated {
				break
			}
			return ar, err
		}
		allSegments = append(allSegments, segs...)
	}

	messages, err := reassemble(allSegments)
	if err != nil {
		return ar, err
	}

	for _, msg := range messages {
		switch msg.MessageType {
		case 31:
			radial, err := decodeMessage31(msg.Payload)
			if err != nil {
				logrus.Debugf("skipping malformed message 31: %v", err)
				continue
			}
			logrus.Tracef("  radial deg=%7.3f elv=%2d tilt=%.3f moments=%d",
				radial.Azimuth, radial.ElevationNr, radial.Elevation, len(radial.Moments))
			ar.Radials = append(ar.Radials, radial)
		case 2:
			status, err := decodeMessage2(msg.Payload)
			if err != nil {
				logrus.Debugf("skipping malformed message 2: %v", err)
				continue
			}
			logrus.Infof("RDA status=%s vcp=%d build=%.2f",
				status.RDAStatusName(), status.VolumeCoveragePatternNum, status.BuildNumber())
			ar.Status = append(ar.Status, status)
		}
	}

	return ar, nil
}
