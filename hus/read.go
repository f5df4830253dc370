package hus

import (
	"io"

	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/compress/husz"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// compressionLevel is the level passed to husz.Decompress/Compress for
// every HUS/VIP stream. The original archiver's level constants were not
// present in the retrieval pack; any single fixed level works for this
// module's own round-trip property (spec §8).
const compressionLevel = 6

// Reader decodes HUS or VIP streams into the neutral pattern model. One
// Reader handles both: the pattern type is determined by the magic bytes,
// exactly as original_source/formats/hus/src/read.rs's VipPatternLoader
// does (its is_loadable/read_pattern dispatch on PatternHeader::build
// alone, never on a caller-supplied mode).
type Reader struct{}

// NewReader builds a HUS/VIP Reader.
func NewReader() *Reader { return &Reader{} }

// IsLoadable reports whether item begins with a well-formed HUS/VIP
// header, per header.rs's PatternHeader::build.
func (r *Reader) IsLoadable(item io.Reader) (bool, error) {
	_, err := buildHeader(item)
	if err != nil {
		if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadPattern decodes a full HUS/VIP stream into a Pattern.
func (r *Reader) ReadPattern(item io.Reader) (pattern.Pattern, error) {
	header, err := buildHeader(item)
	if err != nil {
		return pattern.Pattern{}, err
	}
	vlog.VI(1).Infof("hus: read %s header: %d stitches, %d colors", header.PatternType, header.NumberOfStitches, header.NumberOfColors)

	rest, err := io.ReadAll(item)
	if err != nil {
		return pattern.Pattern{}, emberrors.WrapStdRead(err)
	}

	colorConsume := header.colorConsumeLen()
	if colorConsume < 0 || colorConsume > len(rest) {
		return pattern.Pattern{}, emberrors.InvalidFormat("hus: color section of %d bytes overruns %d remaining bytes", colorConsume, len(rest))
	}
	colorSection := rest[:colorConsume]
	colorBytes := colorSection
	if n := header.colorLen(); n <= len(colorSection) {
		colorBytes = colorSection[:n]
	}
	colors := decodeColors(header, colorBytes)
	vlog.VI(2).Infof("hus: decoded %d colors", len(colors))

	attrLen := header.attributeLen()
	xLen := header.xStreamLen()
	body := rest[colorConsume:]
	if attrLen < 0 || xLen < 0 || attrLen+xLen > len(body) {
		return pattern.Pattern{}, emberrors.InvalidFormat("hus: attribute/x stream lengths %d/%d overrun %d remaining bytes", attrLen, xLen, len(body))
	}
	attrCompressed := body[:attrLen]
	xCompressed := body[attrLen : attrLen+xLen]
	yCompressed := body[attrLen+xLen:]

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

	colorGroups, err := readStitches(attr, xs, ys)
	if err != nil {
		return pattern.Pattern{}, err
	}
	assignThreads(colorGroups, colors)

	return pattern.Pattern{Name: header.Title, ColorGroups: colorGroups}, nil
}

// assignThreads attaches the decoded color table to color groups in
// order, leaving any surplus group (more groups than colors) threadless so
// a writer picks from its own palette, per the Thread.HasManufacturer-style
// "optional thread" convention spec.md §3 documents for ColorGroup.
func assignThreads(groups []pattern.ColorGroup, colors []pattern.Color) {
	for i := range groups {
		if i >= len(colors) {
			return
		}
		groups[i].Thread = pattern.NewThread(colors[i], "", "")
		groups[i].HasThread = true
	}
}
