// Package format defines the PatternFormat/CollectionFormat interfaces every
// codec implements, plus a Registry that dispatches to the first format
// whose reader claims a given stream.
//
// Grounded on original_source/embroidery-lib/src/format/{traits,pattern,collection,mod}.rs
// and original_source/src/formats.rs's get_all().
package format

import (
	"io"

	"github.com/software-opal/embroidery-go/pattern"
)

// PatternReader decodes a single Pattern from a stream.
type PatternReader interface {
	// IsLoadable reports whether item looks like this reader's format,
	// inspecting only a cheap prefix (a magic number or small header) —
	// never the full content. A soft InvalidFormat/UnexpectedEOF error
	// from read_pattern should also be treated as "not loadable" by
	// callers probing multiple formats; see emberrors.IsInvalidFormat.
	IsLoadable(item io.Reader) (bool, error)
	// ReadPattern decodes item into a Pattern.
	ReadPattern(item io.Reader) (pattern.Pattern, error)
}

// PatternWriter encodes a single Pattern to a stream.
type PatternWriter interface {
	WritePattern(p pattern.Pattern, w io.Writer) error
}

// PatternFormat names one pattern format and optionally supplies a reader
// and/or writer for it.
type PatternFormat interface {
	Name() string
	Extensions() []string
	Reader() (PatternReader, bool)
	Writer() (PatternWriter, bool)
}

// CollectionReader decodes a PatternCollection from a stream.
type CollectionReader interface {
	IsLoadable(item io.Reader) (bool, error)
	ReadCollection(item io.Reader) (pattern.PatternCollection, error)
}

// CollectionWriter encodes a PatternCollection to a stream.
type CollectionWriter interface {
	WriteCollection(c pattern.PatternCollection, w io.Writer) error
}

// CollectionFormat names one collection format and optionally supplies a
// reader and/or writer for it.
type CollectionFormat interface {
	Name() string
	Extensions() []string
	Reader() (CollectionReader, bool)
	Writer() (CollectionWriter, bool)
}
