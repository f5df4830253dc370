package vf3

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
	"github.com/software-opal/embroidery-go/vp3"
)

// ReadFontPatterns decodes one Pattern per named character, grounded on
// vf3/read/pattern.rs's read_font_pattern. Each character's byte span runs
// from its own offset to the next character's offset (or to EOF for the
// last one), consumed from a single forward-only stream.
func ReadFontPatterns(item io.Reader, offsets []CharacterOffset) ([]pattern.Pattern, error) {
	if len(offsets) == 0 {
		return nil, nil
	}

	patterns := make([]pattern.Pattern, 0, len(offsets))
	for i, co := range offsets {
		var limited io.Reader
		if i+1 < len(offsets) {
			limited = io.LimitReader(item, int64(offsets[i+1].Offset-co.Offset))
		} else {
			limited = item
		}
		attrs, colorGroups, err := readCharPattern(limited)
		if err != nil {
			return nil, breader.Context(err, "vf3: reading character %q at index %d", co.Char, i)
		}
		patterns = append(patterns, pattern.Pattern{
			Name:        string(co.Char),
			Attributes:  attrs,
			ColorGroups: colorGroups,
		})
	}
	return patterns, nil
}

var charPatternMagic = []byte{0x00, 0x11, 0x00}
var charPatternMagicA = []byte{0x33}
var charPatternMagicB = []byte{0x18}

func readCharPattern(unconstrained io.Reader) ([]pattern.PatternAttribute, []pattern.ColorGroup, error) {
	br := breader.New(unconstrained)
	if err := br.ReadMagic(charPatternMagic); err != nil {
		return nil, nil, err
	}
	length, err := br.ReadUint32(binary.BigEndian)
	if err != nil {
		return nil, nil, breader.Context(err, "vf3: reading character block length")
	}

	r := breader.New(io.LimitReader(unconstrained, int64(length)))
	if err := r.ReadMagic(charPatternMagicA); err != nil {
		return nil, nil, err
	}
	settings, err := vp3.ReadWideStringField(r, "settings")
	if err != nil {
		return nil, nil, err
	}
	if err := r.ReadMagic(charPatternMagicB); err != nil {
		return nil, nil, err
	}
	softwareString, err := vp3.ReadWideStringField(r, "software_string")
	if err != nil {
		return nil, nil, err
	}
	threadCount, err := r.ReadUint16(binary.BigEndian)
	if err != nil {
		return nil, nil, breader.Context(err, "vf3: reading thread_count")
	}

	threads := make([]pattern.ColorGroup, 0, threadCount)
	for i := 0; i < int(threadCount); i++ {
		cg, err := readThreadWrapper(r)
		if err != nil {
			return nil, nil, breader.Context(err, "vf3: reading thread %d", i)
		}
		threads = append(threads, cg)
	}

	return []pattern.PatternAttribute{
		pattern.Arbitrary("settings", settings),
		pattern.Arbitrary("software_string", softwareString),
	}, threads, nil
}

func readThreadWrapper(r *breader.Reader) (pattern.ColorGroup, error) {
	startX, err := r.ReadInt32(binary.BigEndian)
	if err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading start_x")
	}
	startY, err := r.ReadInt32(binary.BigEndian)
	if err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading start_y")
	}
	tableLen, err := r.ReadUint8()
	if err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading table_len")
	}
	var rgb [3]byte
	if err := r.ReadExact(rgb[:]); err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading color")
	}
	table := make([]byte, tableLen)
	if err := r.ReadExact(table); err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading color table")
	}

	threadNumber, err := vp3.ReadASCIIStringField(r, "thread_number")
	if err != nil {
		return pattern.ColorGroup{}, err
	}
	threadName, err := vp3.ReadASCIIStringField(r, "thread_name")
	if err != nil {
		return pattern.ColorGroup{}, err
	}
	threadBrand, err := vp3.ReadASCIIStringField(r, "thread_brand")
	if err != nil {
		return pattern.ColorGroup{}, err
	}
	if _, err := r.ReadInt32(binary.BigEndian); err != nil { // next_color_offset_x, unused
		return pattern.ColorGroup{}, breader.Context(err, "reading next_color_offset_x")
	}
	if _, err := r.ReadInt32(binary.BigEndian); err != nil { // next_color_offset_y, unused
		return pattern.ColorGroup{}, breader.Context(err, "reading next_color_offset_y")
	}

	unknownLen, err := r.ReadUint16(binary.BigEndian)
	if err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading unknown_len")
	}
	unknown := make([]byte, unknownLen)
	if err := r.ReadExact(unknown); err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading unknown block")
	}

	colorBytes, err := r.ReadUint32(binary.BigEndian)
	if err != nil {
		return pattern.ColorGroup{}, breader.Context(err, "reading color_bytes")
	}
	stitchGroups, err := readStitches(io.LimitReader(r, int64(colorBytes)), startX, startY)
	if err != nil {
		return pattern.ColorGroup{}, err
	}

	thread := pattern.NewThread(pattern.RGB(rgb[0], rgb[1], rgb[2]), threadName, threadNumber)
	thread = thread.WithManufacturer(threadBrand)
	return pattern.ColorGroup{Thread: thread, HasThread: true, StitchGroups: stitchGroups}, nil
}

var stitchesMagic = []byte{0x00, 0x00, 0x00}

// readStitches ports vf3/read/pattern.rs's read_stitches, with two fixes
// recorded as Open Question decisions elsewhere in this module rather
// than repeated here in full:
//
//   - the single-byte form reads pos[0] as the x delta and pos[1] as the
//     y delta, rather than applying pos[0] to both accumulators as the
//     original does. That reads as an incomplete stub, not an
//     intentional VF3-specific format quirk, so this port uses the same
//     two-byte x/y interpretation VP3 itself uses.
//   - the original builds up `stitches` but always returns an empty,
//     never-appended `stitch_groups` vector — every VF3 glyph would
//     decode with zero stitches regardless of content. This port
//     flushes the accumulated run into a single StitchGroup at the end,
//     mirroring how VP3's own ReadStitches (in the sibling vp3 package)
//     closes out its final run.
//
// The [0x80, 0x01] escape's two i16 deltas are read via the same sign
// convention as VP3's vp3_u16_convert (0x8000 stays 0x8000 rather than
// wrapping to a negative i16).
func readStitches(reader io.Reader, startX, startY int32) ([]pattern.StitchGroup, error) {
	r := breader.New(reader)
	if err := r.ReadMagic(stitchesMagic); err != nil {
		return nil, err
	}

	var stitches []pattern.Stitch
	absX, absY := startX, startY

	for {
		var pos [2]byte
		n, err := io.ReadFull(reader, pos[:])
		if n == 0 {
			break
		}
		if err != nil && n != 2 {
			return nil, emberrors.InvalidFormat("vf3: incorrect number of bytes remaining in stitch block, expected 0 or 2, got %d", n)
		}

		switch {
		case pos[0] == 0x80 && pos[1] == 0x01:
			dx, err := r.ReadInt16(binary.BigEndian)
			if err != nil {
				return nil, breader.Context(err, "vf3: reading stitch dx")
			}
			dy, err := r.ReadInt16(binary.BigEndian)
			if err != nil {
				return nil, breader.Context(err, "vf3: reading stitch dy")
			}
			absX += vp3u16Convert(dx)
			absY += vp3u16Convert(dy)
			stitches = append(stitches, pattern.NewStitch(float64(absX), float64(absY)))
		case pos[0] == 0x80:
			// Unhandled escape form the original only logs; treated as
			// a no-op skip, consistent with VP3's own Skip variant.
		default:
			absX += vp3u8Convert(pos[0])
			absY += vp3u8Convert(pos[1])
			stitches = append(stitches, pattern.NewStitch(float64(absX), float64(absY)))
		}
	}

	if len(stitches) == 0 {
		return nil, nil
	}
	return []pattern.StitchGroup{{Stitches: stitches, Trim: false, Cut: false}}, nil
}

// vp3u8Convert/vp3u16Convert mirror vf3/read/pattern.rs's vp3_u8_convert/
// vp3_u16_convert: the sentinel values 0x80/0x8000 are kept as-is
// (+128/+32768) rather than sign-extended, every other value is decoded
// as ordinary two's-complement.
func vp3u8Convert(i byte) int32 {
	if i == 0x80 {
		return 0x80
	}
	return int32(int8(i))
}

func vp3u16Convert(i int16) int32 {
	u := uint16(i)
	if u == 0x8000 {
		return 0x8000
	}
	return int32(i)
}
