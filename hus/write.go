package hus

import (
	"io"

	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/compress/husz"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// Writer encodes a Pattern as either a HUS or a VIP stream, mirroring
// original_source/formats/hus/src/write.rs's HusVipPatternWriter — except
// write.rs's own write_pattern is a bare todo!(), so this implementation is
// built directly from spec.md §4.4 rather than transcribed.
type Writer struct {
	mode PatternType
}

// NewHusWriter builds a Writer that emits the HUS header/magic layout.
func NewHusWriter() *Writer { return &Writer{mode: Hus} }

// NewVipWriter builds a Writer that emits the VIP header/magic layout.
func NewVipWriter() *Writer { return &Writer{mode: Vip} }

// WritePattern encodes p as a full HUS/VIP stream.
func (w *Writer) WritePattern(p pattern.Pattern, out io.Writer) error {
	attr, xs, ys, err := writeStitches(p)
	if err != nil {
		return err
	}

	attrCompressed, err := husz.Compress(attr, compressionLevel)
	if err != nil {
		return emberrors.WrapStdWrite(err)
	}
	xCompressed, err := husz.Compress(xs, compressionLevel)
	if err != nil {
		return emberrors.WrapStdWrite(err)
	}
	yCompressed, err := husz.Compress(ys, compressionLevel)
	if err != nil {
		return emberrors.WrapStdWrite(err)
	}

	colors := make([]pattern.Color, 0, len(p.ColorGroups))
	for _, cg := range p.ColorGroups {
		c := cg.Thread.Color
		colors = append(colors, c)
	}

	header := &PatternHeader{
		PatternType:      w.mode,
		Title:            p.Name,
		NumberOfStitches: uint32(len(attr)),
		NumberOfColors:   uint32(len(colors)),
	}
	header.AttributeOffset = uint32(header.headerLen() + header.colorLen())
	header.XOffset = header.AttributeOffset + uint32(len(attrCompressed))
	header.YOffset = header.XOffset + uint32(len(xCompressed))

	vlog.VI(1).Infof("hus: writing %s header: %d stitches, %d colors", header.PatternType, header.NumberOfStitches, header.NumberOfColors)

	if err := writeHeader(header, out); err != nil {
		return err
	}
	colorBytes := encodeColors(header, colors)
	if _, err := out.Write(colorBytes); err != nil {
		return emberrors.WrapStdWrite(err)
	}
	if _, err := out.Write(attrCompressed); err != nil {
		return emberrors.WrapStdWrite(err)
	}
	if _, err := out.Write(xCompressed); err != nil {
		return emberrors.WrapStdWrite(err)
	}
	if _, err := out.Write(yCompressed); err != nil {
		return emberrors.WrapStdWrite(err)
	}
	return nil
}
