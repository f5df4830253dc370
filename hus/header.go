// Package hus implements the HUS/VIP codec: a shared binary header, an
// XOR-masked color table, and three compressed per-axis streams
// (attribute, x, y) that reconstruct the stitch body.
//
// Grounded on original_source/formats/hus/src/header.rs (header layout and
// its test_header_roundtrip fixture, transcribed field-for-field), with one
// intentional deviation in writeHeader's title field — see DESIGN.md — for
// the header; the read/write pipelines are original to this module because
// original_source/formats/hus/src/read.rs's read_pattern is an unfinished
// panic!() stub and its write.rs is a bare todo!() — see DESIGN.md for how
// this module fills that gap from spec.md §4.4 instead.
package hus

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/textutil"
)

// byteOrder is little-endian throughout, per spec §4.4.
var byteOrder = binary.LittleEndian

// PatternType distinguishes the HUS and VIP header/color-table layouts.
type PatternType int

const (
	Hus PatternType = iota
	Vip
)

func (t PatternType) String() string {
	switch t {
	case Hus:
		return "HUS"
	case Vip:
		return "VIP"
	default:
		return "unknown"
	}
}

// magicBytes is the canonical 4-byte magic this module writes for t.
func (t PatternType) magicBytes() [4]byte {
	switch t {
	case Hus:
		return [4]byte{0x5B, 0xAF, 0xC8, 0x00}
	case Vip:
		return [4]byte{0x5D, 0xFC, 0x90, 0x01}
	default:
		panic("hus: unknown PatternType")
	}
}

// matchMagicBytes recognises both the canonical and the legacy HUS magic
// (0x5D 0xFC 0xC8 0x00), matching header.rs's match_magic_bytes.
func matchMagicBytes(bytes [4]byte) (PatternType, bool) {
	switch bytes {
	case [4]byte{0x5B, 0xAF, 0xC8, 0x00}, [4]byte{0x5D, 0xFC, 0xC8, 0x00}:
		return Hus, true
	case [4]byte{0x5D, 0xFC, 0x90, 0x01}:
		return Vip, true
	default:
		return 0, false
	}
}

// PatternHeader is the shared HUS/VIP file header.
type PatternHeader struct {
	PatternType PatternType
	Title       string

	NumberOfStitches uint32
	NumberOfColors   uint32

	PositiveXHoopSize int16
	PositiveYHoopSize int16
	NegativeXHoopSize int16
	NegativeYHoopSize int16

	AttributeOffset uint32
	XOffset         uint32
	YOffset         uint32
}

// headerLen is the fixed byte length of the header proper (not counting the
// variable-length stitch/color/attribute body): 4 (magic) + 4 (stitches) +
// 4 (colors) + 4×2 (hoop sizes) + 4×3 (attr/x/y offsets) + 10 (title) = 42,
// plus a 4-byte trailing field for VIP only (46 total). The descriptive
// text in spec.md §4.4 rounds this to 44/48; the byte-exact figure here is
// the one load-bearing in buildHeader/colorConsumeLen, and matches
// header.rs's own test_header_roundtrip fixture exactly (a 46-byte VIP
// header).
func (h *PatternHeader) headerLen() int {
	base := 4 + 4 + 4 + (2 * 4) + (3 * 4) + 10
	if h.PatternType == Vip {
		return base + 4
	}
	return base
}

// colorLen is the number of raw (still XOR-masked) color-table bytes: 2
// bytes/color for HUS, 4 bytes/color for VIP.
func (h *PatternHeader) colorLen() int {
	switch h.PatternType {
	case Vip:
		return int(h.NumberOfColors) * 4
	default:
		return int(h.NumberOfColors) * 2
	}
}

// colorConsumeLen is the full span of file bytes occupied by the color
// section (which can exceed colorLen() with vendor padding/unknown
// fields); attributeOffset marks where the compressed streams begin.
func (h *PatternHeader) colorConsumeLen() int {
	return int(h.AttributeOffset) - h.headerLen()
}

// attributeLen is the compressed length of the attribute stream.
func (h *PatternHeader) attributeLen() int {
	return int(h.XOffset) - int(h.AttributeOffset)
}

// xStreamLen is the compressed length of the x-delta stream.
func (h *PatternHeader) xStreamLen() int {
	return int(h.YOffset) - int(h.XOffset)
}

// buildHeader reads and validates a PatternHeader from item, per
// header.rs's PatternHeader::build.
func buildHeader(item io.Reader) (*PatternHeader, error) {
	r := breader.New(item)

	var magic [4]byte
	if err := r.ReadExact(magic[:]); err != nil {
		return nil, breader.Context(err, "hus: reading magic bytes")
	}
	patternType, ok := matchMagicBytes(magic)
	if !ok {
		return nil, emberrors.InvalidFormat("hus: invalid magic bytes [%X, %X, %X, %X]", magic[0], magic[1], magic[2], magic[3])
	}

	h := &PatternHeader{PatternType: patternType}

	var err error
	if h.NumberOfStitches, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading number of stitches")
	}
	if h.NumberOfColors, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading number of colors")
	}
	if h.PositiveXHoopSize, err = r.ReadInt16(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading positive x hoop size")
	}
	if h.PositiveYHoopSize, err = r.ReadInt16(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading positive y hoop size")
	}
	if h.NegativeXHoopSize, err = r.ReadInt16(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading negative x hoop size")
	}
	if h.NegativeYHoopSize, err = r.ReadInt16(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading negative y hoop size")
	}
	if h.AttributeOffset, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading attribute offset")
	}
	if h.XOffset, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading x offset")
	}
	if h.YOffset, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "hus: reading y offset")
	}

	var title [10]byte
	if err := r.ReadExact(title[:]); err != nil {
		return nil, breader.Context(err, "hus: reading title")
	}
	h.Title = textutil.CTrim(string(title[:]))

	if patternType == Vip {
		// Sometimes the color length, but often wildly inaccurate per
		// header.rs's own comment; consumed and discarded.
		if _, err := r.ReadUint32(byteOrder); err != nil {
			return nil, breader.Context(err, "hus: reading VIP trailing field")
		}
	}

	return h, nil
}

// writeHeader renders h to w, per header.rs's PatternHeader::write.
func writeHeader(h *PatternHeader, out io.Writer) error {
	w := breader.NewWriter(out)

	magic := h.PatternType.magicBytes()
	if err := w.WriteExact(magic[:]); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.NumberOfStitches); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.NumberOfColors); err != nil {
		return err
	}
	if err := w.WriteInt16(byteOrder, h.PositiveXHoopSize); err != nil {
		return err
	}
	if err := w.WriteInt16(byteOrder, h.PositiveYHoopSize); err != nil {
		return err
	}
	if err := w.WriteInt16(byteOrder, h.NegativeXHoopSize); err != nil {
		return err
	}
	if err := w.WriteInt16(byteOrder, h.NegativeYHoopSize); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.AttributeOffset); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.XOffset); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.YOffset); err != nil {
		return err
	}

	title := make([]byte, 10)
	copy(title, textutil.CharTruncate(textutil.CTrim(h.Title), 10))
	if err := w.WriteExact(title); err != nil {
		return err
	}

	if h.PatternType == Vip {
		// This was derived from a number of sample files; the exact
		// motivation for the formula is lost with the original.
		trailer := uint32(0x2E) + 8*h.NumberOfColors
		if err := w.WriteUint32(byteOrder, trailer); err != nil {
			return err
		}
	}
	return nil
}
