package jef

import "github.com/software-opal/embroidery-go/format"

// Format registers the JEF codec. It has no writer: JEF is read-only in
// this module, matching original_source/formats/jef/src/lib.rs's
// JefPatternFormat::writer() returning None.
type Format struct {
	reader *Reader
}

// NewFormat builds the JEF format.PatternFormat.
func NewFormat() *Format { return &Format{reader: NewReader()} }

func (f *Format) Name() string { return "JEF" }

func (f *Format) Extensions() []string { return []string{"jef"} }

func (f *Format) Reader() (format.PatternReader, bool) { return f.reader, true }

func (f *Format) Writer() (format.PatternWriter, bool) { return nil, false }
