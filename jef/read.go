package jef

import (
	"encoding/binary"
	"io"

	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/compress/husz"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// compressionLevel mirrors hus's fixed level; read.rs's do_decompress_level
// calls pass a literal 4, but that constant belongs to the same lost
// archiver dependency documented in compress/husz, so only its existence
// (not its value) is preserved here.
const compressionLevel = 4

// Attribute byte values read.rs's convert_stitches switches on. JEF has no
// separate "cut" attribute distinct from jump: 0x88 decodes as Jump, same
// as 0x81, matching header.rs/read.rs's VipAttributes::Jump mapping for
// both bytes.
const (
	attrNormal      = 0x80
	attrJump        = 0x81
	attrColorChange = 0x84
	attrCutAsJump   = 0x88
	attrLastStitch  = 0x90
)

// Reader decodes JEF streams into the neutral pattern model. JEF is
// read-only in the core (original_source/formats/jef/src/lib.rs's
// JefPatternFormat::writer returns None; spec §4.5).
type Reader struct{}

// NewReader builds a JEF Reader.
func NewReader() *Reader { return &Reader{} }

// IsLoadable reports whether item begins with a well-formed JEF header.
func (r *Reader) IsLoadable(item io.Reader) (bool, error) {
	_, err := BuildHeader(item)
	if err != nil {
		if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadPattern decodes a full JEF stream into a Pattern.
//
// header.rs's PatternHeader::build is complete and transcribed faithfully
// in BuildHeader, but read.rs's read_attributes/read_x_coords/
// read_y_coords call header.attribute_len()/header.x_offset_len() methods
// that do not exist anywhere on JEF's PatternHeader (they are commented-out
// leftovers copy-pasted from HUS's header) — read.rs as written does not
// compile against header.rs as written, so there is no byte-exact original
// stream-length scheme to transcribe here. Since spec §4.5 already notes
// this decoder is "declared but not exercised" by the spec itself, the
// stitch body below uses a self-contained, explicitly length-prefixed
// layout at StitchAbsOffset instead of guessing at the lost header fields:
//
//	[u32 attrCompressedLen LE][attrCompressedBytes]
//	[u32 xCompressedLen LE][xCompressedBytes]
//	[yCompressedBytes to EOF]
//
// each block independently inflated by compress/husz, mirroring read.rs's
// own asymmetric treatment of the y-stream (decompressed to EOF with no
// explicit length, same as its decompress(item, None) call).
func (r *Reader) ReadPattern(item io.Reader) (pattern.Pattern, error) {
	header, err := BuildHeader(item)
	if err != nil {
		return pattern.Pattern{}, err
	}
	vlog.VI(1).Infof("jef: read header: %d stitches, %d colors, hoop %s", header.NumberOfStitches, header.NumberOfColors, header.Hoop)

	br := breader.New(item)
	attrLen, err := br.ReadUint32(binary.LittleEndian)
	if err != nil {
		return pattern.Pattern{}, breader.Context(err, "jef: reading attribute stream length")
	}
	attrCompressed := make([]byte, attrLen)
	if err := br.ReadExact(attrCompressed); err != nil {
		return pattern.Pattern{}, breader.Context(err, "jef: reading attribute stream")
	}
	xLen, err := br.ReadUint32(binary.LittleEndian)
	if err != nil {
		return pattern.Pattern{}, breader.Context(err, "jef: reading x stream length")
	}
	xCompressed := make([]byte, xLen)
	if err := br.ReadExact(xCompressed); err != nil {
		return pattern.Pattern{}, breader.Context(err, "jef: reading x stream")
	}
	yCompressed, err := io.ReadAll(item)
	if err != nil {
		return pattern.Pattern{}, emberrors.WrapStdRead(err)
	}

	attr, err := husz.Decompress(attrCompressed, compressionLevel)
	if err != nil {
		return pattern.Pattern{}, emberrors.WrapStdRead(err)
	}
	xs, err := husz.Decompress(xCompressed, compressionLevel)
	if err != nil {
		return pattern.Pattern{}, emberrors.WrapStdRead(err)
	}
	ys, err := husz.Decompress(yCompressed, compressionLevel)
	if err != nil {
		return pattern.Pattern{}, emberrors.WrapStdRead(err)
	}

	colorGroups, err := convertStitches(header.Threads, attr, xs, ys)
	if err != nil {
		return pattern.Pattern{}, err
	}

	return pattern.Pattern{ColorGroups: colorGroups}, nil
}

// convertStitches ports read.rs's convert_stitches. Jump is recorded but
// not emitted immediately: its (x, y) is held in lastJump and only turned
// into a Stitch lazily, just before the next Normal stitch is appended.
// ColorChange does everything Jump does plus also flushes the current
// stitch-group run into a new color group. LastStitch ends the stream
// without emitting a stitch for its own record. Every emitted StitchGroup
// is unconditionally Cut+Trim, per read.rs (unlike HUS, which derives Cut
// from the attribute byte actually seen).
func convertStitches(threads []pattern.Thread, attr, xs, ys []byte) ([]pattern.ColorGroup, error) {
	n := len(attr)
	if len(xs) < n || len(ys) < n {
		return nil, emberrors.InvalidFormat("jef: attribute stream of %d bytes longer than coordinate streams (%d, %d)", n, len(xs), len(ys))
	}

	var colorGroups []pattern.ColorGroup
	var stitchGroups []pattern.StitchGroup
	var stitches []pattern.Stitch
	var lastJump *pattern.Stitch
	var cx, cy float64
	threadIdx := 0

	nextThread := func() (pattern.Thread, bool) {
		if threadIdx >= len(threads) {
			return pattern.Thread{}, false
		}
		t := threads[threadIdx]
		threadIdx++
		return t, true
	}

	flushStitchGroup := func() {
		if len(stitches) != 0 {
			stitchGroups = append(stitchGroups, pattern.StitchGroup{Stitches: stitches, Cut: true, Trim: true})
			stitches = nil
		}
	}
	flushColorGroup := func() {
		flushStitchGroup()
		if len(stitchGroups) != 0 {
			thread, hasThread := nextThread()
			colorGroups = append(colorGroups, pattern.ColorGroup{Thread: thread, HasThread: hasThread, StitchGroups: stitchGroups})
			stitchGroups = nil
		}
	}

	sawLast := false
	for i := 0; i < n; i++ {
		a := attr[i]
		// X and Y bytes are signed deltas in tenths of a millimeter,
		// accumulated into an absolute position.
		cx += float64(int8(xs[i])) / 10
		cy += float64(int8(ys[i])) / 10
		x, y := cx, cy

		switch a {
		case attrNormal:
			if lastJump != nil {
				stitches = append(stitches, *lastJump)
				lastJump = nil
			}
			s := pattern.NewStitch(x, y)
			stitches = append(stitches, s)
		case attrJump, attrCutAsJump:
			flushStitchGroup()
			s := pattern.NewStitch(x, y)
			lastJump = &s
		case attrColorChange:
			flushColorGroup()
			s := pattern.NewStitch(x, y)
			lastJump = &s
		case attrLastStitch:
			sawLast = true
		default:
			return nil, emberrors.InvalidFormat("jef: unrecognised attribute byte 0x%02X at index %d", a, i)
		}
		if sawLast {
			break
		}
	}
	if n > 0 && !sawLast {
		return nil, emberrors.InvalidFormat("jef: attribute stream of %d bytes ended without a LastStitch byte", n)
	}

	flushColorGroup()
	return colorGroups, nil
}
