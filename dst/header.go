package dst

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
	"github.com/software-opal/embroidery-go/textutil"
)

// headerWindowSize is the fixed-size ASCII header block every DST file
// begins with.
const headerWindowSize = 512

// parseState tags the three outcomes of scanning one header token, mirroring
// original_source/formats/dst/src/read.rs's ParseResult enum.
type parseState int

const (
	parseSome parseState = iota
	parseSkip
	parseExhausted
)

type headerCursor struct {
	data []byte
	pos  int
}

func (c *headerCursor) take(n int) []byte {
	end := c.pos + n
	if end > len(c.data) {
		end = len(c.data)
	}
	out := c.data[c.pos:end]
	c.pos = end
	return out
}

func readHeaderName(c *headerCursor) (name [2]byte, state parseState) {
	raw := c.take(3)
	if len(raw) < 3 {
		return name, parseExhausted
	}
	if raw[2] != ':' && raw[2] != '*' {
		return name, parseSkip
	}
	return [2]byte{raw[0], raw[1]}, parseSome
}

func readHeaderContent(c *headerCursor) (content []byte, state parseState) {
	start := c.pos
	for c.pos < len(c.data) {
		b := c.data[c.pos]
		c.pos++
		if b == '\r' {
			return c.data[start : c.pos-1], parseSome
		}
	}
	if c.pos > start {
		return c.data[start:c.pos], parseSome
	}
	return nil, parseExhausted
}

func readHeaderItem(c *headerCursor) (attr pattern.PatternAttribute, state parseState) {
	name, state := readHeaderName(c)
	if state != parseSome {
		return pattern.PatternAttribute{}, state
	}
	content, state := readHeaderContent(c)
	if state != parseSome {
		return pattern.PatternAttribute{}, state
	}
	header := string(name[:])
	value := string(content)
	vlog.VI(1).Infof("Read DST Header: %q:%q", header, value)
	switch header {
	case "LA":
		return pattern.Title(textutil.CTrim(value)), parseSome
	case "AU":
		return pattern.Author(textutil.CTrim(value)), parseSome
	case "CP":
		return pattern.Copyright(textutil.CTrim(value)), parseSome
	case "ST", "CO", "+X", "+Y", "-X", "-Y", "AX", "AY", "MX", "MY", "PD":
		// Calculated from the stitch data, or related to multi-file
		// patterns, which this codec does not support.
		return pattern.PatternAttribute{}, parseSkip
	default:
		return pattern.Arbitrary(header, value), parseSome
	}
}

func readDSTHeader(data []byte) []pattern.PatternAttribute {
	window := data
	if len(window) > headerWindowSize {
		window = window[:headerWindowSize]
	}
	c := &headerCursor{data: window}
	var attrs []pattern.PatternAttribute
	for {
		attr, state := readHeaderItem(c)
		switch state {
		case parseSome:
			attrs = append(attrs, attr)
		case parseSkip:
			continue
		default:
			return attrs
		}
	}
}

func extractTitle(attrs []pattern.PatternAttribute) (string, []pattern.PatternAttribute) {
	newAttrs := make([]pattern.PatternAttribute, 0, len(attrs))
	title := "Untitled"
	for _, attr := range attrs {
		if attr.Kind == pattern.AttributeTitle {
			title = attr.Value
		} else {
			newAttrs = append(newAttrs, attr)
		}
	}
	newAttrs = append(newAttrs, pattern.Title(title))
	return title, newAttrs
}

// readHeader reads up to the 512-byte header window from r and returns the
// attributes it contains (excluding the calculated ST/CO/+X/-X/+Y/-Y and
// multi-file fields). DST has no strong magic number, so a stream shorter
// than a full header is not treated as invalid — the original codec probes
// it the same permissive way: whatever header tokens happen to parse out
// of the available bytes.
func readHeader(r io.Reader) ([]pattern.PatternAttribute, error) {
	buf := make([]byte, headerWindowSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, emberrors.WrapStdRead(err)
	}
	return readDSTHeader(buf[:n]), nil
}

func findAttr(attrs []pattern.PatternAttribute, kind pattern.PatternAttributeKind) (string, bool) {
	for _, a := range attrs {
		if a.Kind == kind {
			return a.Value, true
		}
	}
	return "", false
}

func buildHeader(p pattern.Pattern, stitchCount int) ([]byte, error) {
	colorCount := len(p.ColorGroups)
	minX, minY, maxX, maxY := p.GetBounds()

	var data []byte
	data = append(data, fmt.Sprintf("LA:%-17s\r", textutil.CharTruncate(textutil.CTrim(p.Name), 17))...)
	data = append(data, fmt.Sprintf("ST:%7d\r", stitchCount)...)
	data = append(data, fmt.Sprintf("CO:%3d\r", colorCount-1)...)
	data = append(data, fmt.Sprintf("+X:%-5d\r", int64(10*maxX))...)
	data = append(data, fmt.Sprintf("-X:%-5d\r", int64(10*minX))...)
	data = append(data, fmt.Sprintf("+Y:%-5d\r", int64(10*maxY))...)
	data = append(data, fmt.Sprintf("-Y:%-5d\r", int64(10*minY))...)
	data = append(data, fmt.Sprintf("AX:%-+6d\r", 0)...)
	data = append(data, fmt.Sprintf("AY:%-+6d\r", 0)...)
	data = append(data, fmt.Sprintf("MX:%-+6d\r", 0)...)
	data = append(data, fmt.Sprintf("MY:%-+6d\r", 0)...)
	data = append(data, "PD:******\r\x00\x00\x00"...)

	if len(data) != 128 {
		return nil, errors.Errorf("dst: built header block of %d bytes, expected 128", len(data))
	}
	return data, nil
}

func buildExtendedHeader(p pattern.Pattern, remaining int) ([]byte, error) {
	var data []byte
	if author, ok := findAttr(p.Attributes, pattern.AttributeAuthor); ok {
		data = append(data, fmt.Sprintf("AU:%-17s\r", textutil.CharTruncate(textutil.CTrim(author), 17))...)
	}
	if copyright, ok := findAttr(p.Attributes, pattern.AttributeCopyright); ok {
		data = append(data, fmt.Sprintf("CP:%-17s\r", textutil.CharTruncate(textutil.CTrim(copyright), 17))...)
	}
	if len(data) > remaining {
		return nil, errors.Errorf("dst: extended header of %d bytes overflows %d remaining", len(data), remaining)
	}
	return data, nil
}

// writeHeader renders the full 512-byte DST header and writes it to w.
func writeHeader(p pattern.Pattern, stitchCount int, w io.Writer) error {
	header, err := buildHeader(p, stitchCount)
	if err != nil {
		return emberrors.WrapStdWrite(err)
	}
	remaining := headerWindowSize - len(header)
	extended, err := buildExtendedHeader(p, remaining)
	if err != nil {
		return emberrors.WrapStdWrite(err)
	}
	header = append(header, extended...)
	if len(header) > headerWindowSize {
		return emberrors.WrapStdWrite(errors.Errorf("dst: header block of %d bytes overflows %d byte window", len(header), headerWindowSize))
	}
	padded := make([]byte, headerWindowSize)
	copy(padded, header)
	if _, err := w.Write(padded); err != nil {
		return emberrors.WrapStdWrite(err)
	}
	return nil
}
