package dst

import "github.com/software-opal/embroidery-go/format"

const formatName = "dst"

var formatExtensions = []string{"dst"}

// Format is the registered format.PatternFormat for Tajima DST.
type Format struct{}

// NewFormat builds the DST format descriptor.
func NewFormat() *Format { return &Format{} }

func (Format) Name() string         { return formatName }
func (Format) Extensions() []string { return formatExtensions }

func (Format) Reader() (format.PatternReader, bool) { return NewReader(), true }
func (Format) Writer() (format.PatternWriter, bool) { return NewWriter(), true }
