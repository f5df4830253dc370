// Package jef implements the read-only JEF codec: a fixed-layout header
// with hoop metadata and thread-catalog indices, and a best-effort stitch
// body decoder preserved for future completion (spec §4.5/§9 declares the
// body decoder without exercising it; this package's read_test.go does).
//
// Grounded on original_source/formats/jef/src/{header,hoops,read,lib}.rs.
package jef

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// byteOrder is little-endian throughout, per header.rs's explicit
// ReadBytesExt::read_u32::<LittleEndian> calls.
var byteOrder = binary.LittleEndian

// PatternHeader is JEF's fixed-layout file header.
type PatternHeader struct {
	StitchAbsOffset uint32
	FormatFlags     uint32
	DateTime        [14]byte

	NumberOfColors   uint32
	NumberOfStitches uint32
	Hoop             Hoop

	Bounds          [4]uint32
	RectFrom110x110 [4]uint32
	RectFrom50x50   [4]uint32
	RectFrom200x140 [4]uint32
	RectFromCustom  [4]uint32

	Threads []pattern.Thread
}

func readQuad(r *breader.Reader, purpose string) ([4]uint32, error) {
	var q [4]uint32
	for i := range q {
		v, err := r.ReadUint32(byteOrder)
		if err != nil {
			return q, breader.Context(err, "jef: reading %s[%d]", purpose, i)
		}
		q[i] = v
	}
	return q, nil
}

// BuildHeader reads and validates a PatternHeader from item, per
// header.rs's PatternHeader::build. JEF carries no magic number of its own;
// the zero u16 immediately after the 14-byte datetime field is the closest
// thing to one, and a mismatch there is treated as InvalidFormat so probing
// can distinguish "not JEF" from "truncated input" (spec §4.7).
func BuildHeader(item io.Reader) (*PatternHeader, error) {
	r := breader.New(item)
	h := &PatternHeader{}

	var err error
	if h.StitchAbsOffset, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "jef: reading stitch data offset")
	}
	if h.FormatFlags, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "jef: reading format flags")
	}
	if err := r.ReadExact(h.DateTime[:]); err != nil {
		return nil, breader.Context(err, "jef: reading datetime")
	}
	zero, err := r.ReadUint16(byteOrder)
	if err != nil {
		return nil, breader.Context(err, "jef: reading reserved field")
	}
	if zero != 0 {
		return nil, emberrors.InvalidFormat("jef: expected reserved field to be 0, got %d", zero)
	}

	if h.NumberOfColors, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "jef: reading number of colors")
	}
	if h.NumberOfStitches, err = r.ReadUint32(byteOrder); err != nil {
		return nil, breader.Context(err, "jef: reading number of stitches")
	}
	hoopCode, err := r.ReadUint32(byteOrder)
	if err != nil {
		return nil, breader.Context(err, "jef: reading hoop code")
	}
	h.Hoop = HoopFromCode(hoopCode)

	if h.Bounds, err = readQuad(r, "bounds"); err != nil {
		return nil, err
	}
	if h.RectFrom110x110, err = readQuad(r, "rect_from_110x110"); err != nil {
		return nil, err
	}
	if h.RectFrom50x50, err = readQuad(r, "rect_from_50x50"); err != nil {
		return nil, err
	}
	if h.RectFrom200x140, err = readQuad(r, "rect_from_200x140"); err != nil {
		return nil, err
	}
	if h.RectFromCustom, err = readQuad(r, "rect_from_custom"); err != nil {
		return nil, err
	}

	h.Threads = make([]pattern.Thread, 0, h.NumberOfColors)
	for i := uint32(0); i < h.NumberOfColors; i++ {
		idx, err := r.ReadUint32(byteOrder)
		if err != nil {
			return nil, breader.Context(err, "jef: reading thread catalog index %d", i)
		}
		h.Threads = append(h.Threads, threadFromCatalogIndex(idx))
	}

	return h, nil
}

// WriteHeader renders h to w. JEF is read-only in the core (spec §4.5); this
// is used only by this package's own round-trip tests, not registered as a
// format.PatternWriter. Each thread is written as its position in h.Threads,
// not as a catalog index, so threads read back unchanged only when the i-th
// thread is catalog entry i.
func WriteHeader(h *PatternHeader, out io.Writer) error {
	w := breader.NewWriter(out)
	if err := w.WriteUint32(byteOrder, h.StitchAbsOffset); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.FormatFlags); err != nil {
		return err
	}
	if err := w.WriteExact(h.DateTime[:]); err != nil {
		return err
	}
	if err := w.WriteUint16(byteOrder, 0); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.NumberOfColors); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.NumberOfStitches); err != nil {
		return err
	}
	if err := w.WriteUint32(byteOrder, h.Hoop.Code()); err != nil {
		return err
	}
	for _, quad := range [][4]uint32{h.Bounds, h.RectFrom110x110, h.RectFrom50x50, h.RectFrom200x140, h.RectFromCustom} {
		for _, v := range quad {
			if err := w.WriteUint32(byteOrder, v); err != nil {
				return err
			}
		}
	}
	for i := range h.Threads {
		if err := w.WriteUint32(byteOrder, uint32(i)); err != nil {
			return err
		}
	}
	return nil
}
