package hus

import (
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// Attribute byte values, per spec §4.4. original_source/formats/hus/src/read.rs
// sketches a VipAttributes enum (Normal/Jump/ColorChange/LastStitch) but its
// read_attributes function never compiles (a missing ':' and no body), so
// this decode is built directly from the spec rather than transcribed.
const (
	attrNormal      = 0x80
	attrJump        = 0x81
	attrColorChange = 0x84
	attrCut         = 0x88
	attrLastStitch  = 0x90
)

// readStitches reconstructs color groups from the three decompressed
// per-axis streams. X/Y deltas are signed 8-bit, accumulated into absolute
// tenths-of-millimeter, mirroring dst.readStitches's group-splitting shape:
// Jump/Cut open a new stitch group, ColorChange closes both the stitch
// group and the color group, LastStitch terminates the stream.
func readStitches(attr, xs, ys []byte) ([]pattern.ColorGroup, error) {
	var colorGroups []pattern.ColorGroup
	var stitchGroups []pattern.StitchGroup
	var stitches []pattern.Stitch
	var cx, cy int32
	sawLast := false

	flushGroup := func(cut bool) {
		if len(stitches) != 0 {
			stitchGroups = append(stitchGroups, pattern.StitchGroup{Stitches: stitches, Trim: true, Cut: cut})
			stitches = nil
		}
	}
	flushColor := func() {
		if len(stitchGroups) != 0 {
			colorGroups = append(colorGroups, pattern.ColorGroup{StitchGroups: stitchGroups})
			stitchGroups = nil
		}
	}

	for i, a := range attr {
		if sawLast {
			return nil, emberrors.InvalidFormat("hus: attribute byte 0x%02X after LastStitch at index %d", a, i)
		}
		var dx, dy int8
		if i < len(xs) {
			dx = int8(xs[i])
		}
		if i < len(ys) {
			dy = int8(ys[i])
		}
		cx += int32(dx)
		cy += int32(dy)
		s := pattern.NewStitch(float64(cx)/10, float64(cy)/10)

		switch a {
		case attrNormal:
			stitches = append(stitches, s)
		case attrJump:
			flushGroup(false)
			stitches = append(stitches, s)
		case attrCut:
			flushGroup(true)
			stitches = append(stitches, s)
		case attrColorChange:
			flushGroup(false)
			flushColor()
			stitches = append(stitches, s)
		case attrLastStitch:
			stitches = append(stitches, s)
			flushGroup(false)
			flushColor()
			sawLast = true
		default:
			return nil, emberrors.InvalidFormat("hus: unrecognised attribute byte 0x%02X at index %d", a, i)
		}
	}
	if !sawLast {
		return nil, emberrors.InvalidFormat("hus: attribute stream of %d bytes ended without a LastStitch byte", len(attr))
	}
	return colorGroups, nil
}

// writeStitches flattens a Pattern's color groups back into the three
// parallel per-axis streams writeHeader/writePattern compress and place at
// the declared offsets.
func writeStitches(p pattern.Pattern) (attr, xs, ys []byte, err error) {
	var cx, cy int32
	emit := func(a byte, x, y float64) error {
		tx := int32(x * 10)
		ty := int32(y * 10)
		dx := tx - cx
		dy := ty - cy
		if dx < -128 || dx > 127 || dy < -128 || dy > 127 {
			return emberrors.UnsupportedStitch(fmtStitch{x, y}, len(attr))
		}
		attr = append(attr, a)
		xs = append(xs, byte(int8(dx)))
		ys = append(ys, byte(int8(dy)))
		cx, cy = tx, ty
		return nil
	}

	for cgi, cg := range p.ColorGroups {
		for sgi, sg := range cg.StitchGroups {
			for si, s := range sg.Stitches {
				a := byte(attrNormal)
				if si == 0 {
					switch {
					case cgi == 0 && sgi == 0:
						a = attrNormal
					case sgi == 0:
						a = attrColorChange
					case cg.StitchGroups[sgi-1].Cut:
						a = attrCut
					default:
						a = attrJump
					}
				}
				if err := emit(a, s.X, s.Y); err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}
	if len(attr) == 0 {
		return nil, nil, nil, emberrors.UnsupportedStitch(fmtStitch{0, 0}, 0)
	}
	attr[len(attr)-1] = attrLastStitch
	return attr, xs, ys, nil
}

type fmtStitch struct{ x, y float64 }

func (s fmtStitch) String() string {
	return pattern.NewStitch(s.x, s.y).String()
}
