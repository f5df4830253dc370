package dst

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// maxJump is the largest single-axis delta a DST stitch record can encode.
const maxJump = 121

// Writer encodes the neutral pattern model into Tajima DST streams.
type Writer struct{}

// NewWriter builds a DST Writer.
func NewWriter() *Writer { return &Writer{} }

// WritePattern encodes p as a DST stream.
func (w *Writer) WritePattern(p pattern.Pattern, out io.Writer) error {
	stitches, err := intoDSTStitches(p)
	if err != nil {
		return err
	}
	if err := writeHeader(p, len(stitches), out); err != nil {
		return err
	}
	return writeStitches(stitches, out)
}

func writeStitches(stitches []StitchInfo, out io.Writer) error {
	for _, st := range stitches {
		b, ok := st.ToBytes()
		if !ok {
			// Every stitch reaching this point was already validated by
			// intoDSTStitches; a failure here is a codec bug.
			return emberrors.WrapStdWrite(errors.Errorf("dst: stitch %s could not be encoded", st))
		}
		if _, err := out.Write(b[:]); err != nil {
			return emberrors.WrapStdWrite(err)
		}
		if st.IsEnd {
			break
		}
	}
	return nil
}

// intoDSTStitches flattens a Pattern's color groups into the linear
// sequence of DST stitch records: a safe jump to each group's first
// stitch, the group's regular stitches as deltas, an optional cut
// sequence, and a trailing stop before the next color's jump.
//
// Grounded on original_source/formats/dst/src/write.rs's into_dst_stitches.
func intoDSTStitches(p pattern.Pattern) ([]StitchInfo, error) {
	var out []StitchInfo
	var interGroupJumps []StitchInfo
	var ox, oy int32
	idx := 0
	lastWasStop := false

	for _, cg := range p.ColorGroups {
		for _, sg := range cg.StitchGroups {
			if len(sg.Stitches) > 0 {
				first := sg.Stitches[0]
				jumps := safeJumpTo(ox, oy, first)
				if len(jumps) == 0 && len(out) == 0 && len(interGroupJumps) == 0 {
					// The reader records a group's start point only after a
					// jump, so a pattern starting at the origin opens with a
					// zero-length jump to keep its first stitch.
					jumps = []StitchInfo{MoveStitch(0, 0, Jump)}
				}
				interGroupJumps = append(interGroupJumps, jumps...)
				ox = int32(first.X * 10)
				oy = int32(first.Y * 10)
			}
			if lastWasStop {
				if len(interGroupJumps) > 0 {
					interGroupJumps[0].Type = interGroupJumps[0].Type.WithStop()
				} else {
					interGroupJumps = append(interGroupJumps, MoveStitch(0, 0, Stop))
				}
				lastWasStop = false
			}
			out = append(out, interGroupJumps...)
			interGroupJumps = nil

			for _, s := range sg.Stitches[min(1, len(sg.Stitches)):] { // skip the first stitch; it set the jump target above
				dx := int32(math.Trunc(s.X*10)) - ox
				dy := int32(math.Trunc(s.Y*10)) - oy
				if abs32(dx) > maxJump || abs32(dy) > maxJump {
					return nil, emberrors.UnsupportedStitch(s, idx)
				}
				ox += dx
				oy += dy
				out = append(out, MoveStitch(int8(dx), int8(dy), Regular))
				idx++
			}
			if sg.Cut {
				interGroupJumps = append(interGroupJumps, generateCut()...)
			}
		}
		lastWasStop = true
	}
	interGroupJumps = append(interGroupJumps, safeJumpTo(ox, oy, pattern.Zero())...)
	if len(interGroupJumps) > 0 {
		interGroupJumps[0].Type = interGroupJumps[0].Type.WithStop()
	} else {
		interGroupJumps = append(interGroupJumps, MoveStitch(0, 0, Stop))
	}
	out = append(out, interGroupJumps...)
	out = append(out, EndStitch())
	vlog.VI(1).Infof("dst: encoded %d stitch records", len(out))
	return out, nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// safeJumpTo builds the jump records moving the needle from (ox, oy) to s,
// splitting the move into multiple maxJump-bounded jumps if necessary.
func safeJumpTo(ox, oy int32, s pattern.Stitch) []StitchInfo {
	deltaX := int32(s.X*10) - ox
	deltaY := int32(s.Y*10) - oy

	if deltaX == 0 && deltaY == 0 {
		return nil
	}
	if abs32(deltaX) <= maxJump && abs32(deltaY) <= maxJump {
		return []StitchInfo{MoveStitch(int8(deltaX), int8(deltaY), Jump)}
	}

	absX, absY := abs32(deltaX), abs32(deltaY)
	signX, signY := sign32(deltaX), sign32(deltaY)
	chunks := int32(math.Max(
		math.Ceil(float64(absX)/float64(maxJump)),
		math.Ceil(float64(absY)/float64(maxJump)),
	))
	stepX := int32(math.Ceil(float64(absX) / float64(chunks)))
	stepY := int32(math.Ceil(float64(absY) / float64(chunks)))

	var cx, cy int32
	out := make([]StitchInfo, 0, chunks)
	for i := int32(0); i <= chunks; i++ {
		nx := min(absX, i*stepX)
		ny := min(absY, i*stepY)
		out = append(out, MoveStitch(int8(signX*(nx-cx)), int8(signY*(ny-cy)), Jump))
		cx, cy = nx, ny
	}
	return out
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// generateCut emits the fixed jump sequence DST readers interpret as a
// thread cut.
func generateCut() []StitchInfo {
	return []StitchInfo{
		MoveStitch(2, 0, Jump),
		MoveStitch(-1, 0, Jump),
		MoveStitch(-1, 0, Jump),
		MoveStitch(0, 0, Jump),
	}
}
