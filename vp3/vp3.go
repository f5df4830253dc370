package vp3

import "github.com/software-opal/embroidery-go/format"

// Format registers the VP3 codec. It has no writer, matching
// vp3.rs's Vp3PatternFormat::writer returning None.
type Format struct {
	reader *Reader
}

// NewFormat builds the VP3 format.PatternFormat.
func NewFormat() *Format { return &Format{reader: NewReader()} }

func (f *Format) Name() string { return "VP3" }

func (f *Format) Extensions() []string { return []string{"vp3"} }

func (f *Format) Reader() (format.PatternReader, bool) { return f.reader, true }

func (f *Format) Writer() (format.PatternWriter, bool) { return nil, false }
