package format

import (
	"bytes"
	"io"

	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// PatternRegistry holds an ordered list of pattern formats and dispatches
// reads to the first one that claims a stream.
type PatternRegistry struct {
	Formats []PatternFormat
}

// NewPatternRegistry builds a registry over formats, in probe order.
func NewPatternRegistry(formats ...PatternFormat) *PatternRegistry {
	return &PatternRegistry{Formats: formats}
}

// ReadPattern buffers item and tries each registered reader in turn,
// returning the first successful decode. A reader's InvalidFormat or
// UnexpectedEOF error during probing is treated as "try the next format";
// any other error aborts the scan immediately, since it signals a format
// matched but failed to decode.
func (r *PatternRegistry) ReadPattern(item io.Reader) (pattern.Pattern, string, error) {
	data, err := io.ReadAll(item)
	if err != nil {
		return pattern.Pattern{}, "", emberrors.WrapStdRead(err)
	}
	for _, f := range r.Formats {
		reader, ok := f.Reader()
		if !ok {
			continue
		}
		loadable, err := reader.IsLoadable(bytes.NewReader(data))
		if err != nil {
			if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
				continue
			}
			return pattern.Pattern{}, "", err
		}
		if !loadable {
			continue
		}
		p, err := reader.ReadPattern(bytes.NewReader(data))
		if err != nil {
			if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
				continue
			}
			return pattern.Pattern{}, "", err
		}
		return p, f.Name(), nil
	}
	return pattern.Pattern{}, "", emberrors.InvalidFormat("no registered format claimed this stream")
}

// WriterByExtension returns the writer registered for a file extension
// (without the leading dot), if any.
func (r *PatternRegistry) WriterByExtension(ext string) (PatternWriter, string, bool) {
	for _, f := range r.Formats {
		writer, ok := f.Writer()
		if !ok {
			continue
		}
		for _, e := range f.Extensions() {
			if e == ext {
				return writer, f.Name(), true
			}
		}
	}
	return nil, "", false
}

// CollectionRegistry mirrors PatternRegistry for CollectionFormat.
type CollectionRegistry struct {
	Formats []CollectionFormat
}

// NewCollectionRegistry builds a registry over formats, in probe order.
func NewCollectionRegistry(formats ...CollectionFormat) *CollectionRegistry {
	return &CollectionRegistry{Formats: formats}
}

// ReadCollection mirrors PatternRegistry.ReadPattern for collections.
func (r *CollectionRegistry) ReadCollection(item io.Reader) (pattern.PatternCollection, string, error) {
	data, err := io.ReadAll(item)
	if err != nil {
		return pattern.PatternCollection{}, "", emberrors.WrapStdRead(err)
	}
	for _, f := range r.Formats {
		reader, ok := f.Reader()
		if !ok {
			continue
		}
		loadable, err := reader.IsLoadable(bytes.NewReader(data))
		if err != nil {
			if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
				continue
			}
			return pattern.PatternCollection{}, "", err
		}
		if !loadable {
			continue
		}
		c, err := reader.ReadCollection(bytes.NewReader(data))
		if err != nil {
			if emberrors.IsInvalidFormat(err) || emberrors.IsUnexpectedEOF(err) {
				continue
			}
			return pattern.PatternCollection{}, "", err
		}
		return c, f.Name(), nil
	}
	return pattern.PatternCollection{}, "", emberrors.InvalidFormat("no registered format claimed this stream")
}
