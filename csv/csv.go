// Package csv writes a Pattern as a flat CSV table: one row per stitch,
// naming the color group and stitch group it belongs to plus its
// coordinates and trim/cut flags.
//
// original_source/formats/csv/src/lib.rs registers a CsvPatternWriter but
// its write.rs was not retrieved into the pack (lib.rs's own commented-out
// `mod read` shows the format was read-only-by-writer from the start); the
// row shape here follows SPEC_FULL.md's description of the writer's
// intent. Implemented with the standard library's encoding/csv — no
// third-party CSV library appears anywhere in the retrieved pack, the
// standard-library exception recorded in DESIGN.md for this package.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/software-opal/embroidery-go/format"
	"github.com/software-opal/embroidery-go/pattern"
)

var header = []string{"color_group", "stitch_group", "x", "y", "trim", "cut"}

// Writer renders a Pattern as a CSV table.
type Writer struct{}

// NewWriter builds a CSV Writer.
func NewWriter() *Writer { return &Writer{} }

// WritePattern encodes p as CSV, one row per stitch.
func (w *Writer) WritePattern(p pattern.Pattern, out io.Writer) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(header); err != nil {
		return err
	}
	for cgIdx, cg := range p.ColorGroups {
		for sgIdx, sg := range cg.StitchGroups {
			for _, stitch := range sg.Stitches {
				row := []string{
					strconv.Itoa(cgIdx),
					strconv.Itoa(sgIdx),
					strconv.FormatFloat(stitch.X, 'f', -1, 64),
					strconv.FormatFloat(stitch.Y, 'f', -1, 64),
					strconv.FormatBool(sg.Trim),
					strconv.FormatBool(sg.Cut),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Format registers the CSV writer. It has no reader, matching lib.rs's
// CsvPatternFormat::reader() returning None (its commented-out `mod read`
// was never wired up).
type Format struct {
	writer *Writer
}

// NewFormat builds the CSV format.PatternFormat.
func NewFormat() *Format { return &Format{writer: NewWriter()} }

func (f *Format) Name() string { return "csv" }

func (f *Format) Extensions() []string { return []string{"csv"} }

func (f *Format) Reader() (format.PatternReader, bool) { return nil, false }

func (f *Format) Writer() (format.PatternWriter, bool) { return f.writer, true }
