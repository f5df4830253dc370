// Package emberrors implements the three-kind error taxonomy shared by every
// codec in this module: read errors, write errors, and the underlying
// standard-library causes they wrap.
//
// Context accumulates deepest-first: each call site that adds narrative
// value appends a line as the error propagates upward, so the innermost
// operation's message is always first in the rendered trailer.
package emberrors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// StdKind distinguishes the two standard-library error families a codec can
// produce once it is no longer talking about its own format.
type StdKind int

const (
	// StdIO wraps an io.Error, most commonly io.ErrUnexpectedEOF.
	StdIO StdKind = iota
	// StdFmt wraps a formatting error, e.g. from fmt.Fprintf on a write path.
	StdFmt
)

func (k StdKind) String() string {
	switch k {
	case StdIO:
		return "IO error"
	case StdFmt:
		return "Formatter error"
	default:
		return "Std error"
	}
}

// StdError is the common standard-library cause carried by both ReadError
// and WriteError.
type StdError struct {
	Kind  StdKind
	Cause error
}

func (e *StdError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
}

// Unwrap lets callers use errors.Is/errors.As against the wrapped cause.
func (e *StdError) Unwrap() error { return e.Cause }

func stdFromIO(err error) *StdError {
	return &StdError{Kind: StdIO, Cause: errors.WithStack(err)}
}

// ReadErrorKind tags the three read-error variants of spec §7.
type ReadErrorKind int

const (
	KindInvalidFormat ReadErrorKind = iota
	KindUnexpectedEOF
	KindStd
)

// ReadError is returned by every PatternReader/CollectionReader operation.
type ReadError struct {
	kind    ReadErrorKind
	msg     string
	ioCause error
	std     *StdError
	context []string
}

// InvalidFormat builds a ReadError signalling that the bytes do not belong
// to this format. It is the only ReadError kind a probe (is_loadable) must
// convert to `false` rather than propagate.
func InvalidFormat(format string, args ...interface{}) *ReadError {
	return &ReadError{kind: KindInvalidFormat, msg: fmt.Sprintf(format, args...)}
}

// UnexpectedEOF builds a ReadError for a premature end of input, carrying
// the underlying io error (typically io.ErrUnexpectedEOF or io.EOF) as its
// cause.
func UnexpectedEOF(cause error, format string, args ...interface{}) *ReadError {
	return &ReadError{kind: KindUnexpectedEOF, msg: fmt.Sprintf(format, args...), ioCause: cause}
}

// WrapStdRead converts a plain I/O error encountered outside of a
// read-exact call into a ReadError. Panics if called with
// io.ErrUnexpectedEOF or io.EOF: those must go through UnexpectedEOF so
// that probing can tell "wrong format" apart from "truncated input".
func WrapStdRead(err error) *ReadError {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		panic("emberrors: use UnexpectedEOF for EOF conditions, not WrapStdRead")
	}
	return &ReadError{kind: KindStd, std: stdFromIO(err)}
}

func (e *ReadError) Error() string {
	var primary string
	switch e.kind {
	case KindInvalidFormat:
		primary = fmt.Sprintf("Invalid format: %s", e.msg)
	case KindUnexpectedEOF:
		primary = fmt.Sprintf("Unexpected end of file: %s", e.msg)
	case KindStd:
		primary = e.std.Error()
	}
	return primary + contextTrailer(e.context)
}

// Unwrap exposes the IO cause (for UnexpectedEOF) or the wrapped std error
// so callers can still errors.Is/errors.As through to an os/io sentinel.
func (e *ReadError) Unwrap() error {
	switch e.kind {
	case KindUnexpectedEOF:
		return e.ioCause
	case KindStd:
		return e.std
	default:
		return nil
	}
}

// Kind reports which of the three read-error variants this is.
func (e *ReadError) Kind() ReadErrorKind { return e.kind }

// IsInvalidFormat reports whether err is (or wraps) an InvalidFormat
// ReadError, the signal a format probe converts to `false`.
func IsInvalidFormat(err error) bool {
	var re *ReadError
	return stderrors.As(err, &re) && re.kind == KindInvalidFormat
}

// IsUnexpectedEOF reports whether err is (or wraps) an UnexpectedEOF
// ReadError — also a soft signal during probing (spec §4.7).
func IsUnexpectedEOF(err error) bool {
	var re *ReadError
	return stderrors.As(err, &re) && re.kind == KindUnexpectedEOF
}

// WithContext returns a copy of e with an additional, deepest-first context
// line describing the call site that observed the error.
func (e *ReadError) WithContext(format string, args ...interface{}) *ReadError {
	cp := *e
	cp.context = append(append([]string{}, e.context...), fmt.Sprintf(format, args...))
	return &cp
}

// Context returns the accumulated context lines, deepest first.
func (e *ReadError) Context() []string { return e.context }

// WriteErrorKind tags the two write-error variants of spec §7.
type WriteErrorKind int

const (
	KindUnsupportedStitch WriteErrorKind = iota
	KindWriteStd
)

// WriteError is returned by every PatternWriter/CollectionWriter operation.
type WriteError struct {
	kind    WriteErrorKind
	stitch  fmt.Stringer
	index   int
	hasIdx  bool
	std     *StdError
	context []string
}

// UnsupportedStitch builds a WriteError naming the offending stitch and its
// index so the caller can pre-transform (split long stitches) and retry.
func UnsupportedStitch(stitch fmt.Stringer, index int) *WriteError {
	return &WriteError{kind: KindUnsupportedStitch, stitch: stitch, index: index, hasIdx: true}
}

// WrapStdWrite converts a plain I/O or formatting error encountered on a
// write path into a WriteError.
func WrapStdWrite(err error) *WriteError {
	return &WriteError{kind: KindWriteStd, std: stdFromIO(err)}
}

func (e *WriteError) Error() string {
	var primary string
	switch e.kind {
	case KindUnsupportedStitch:
		primary = fmt.Sprintf("Unable to write stitch %s at index %d", e.stitch, e.index)
	case KindWriteStd:
		primary = e.std.Error()
	}
	return primary + contextTrailer(e.context)
}

func (e *WriteError) Unwrap() error {
	if e.kind == KindWriteStd {
		return e.std
	}
	return nil
}

// WithContext returns a copy of e with an additional, deepest-first context
// line.
func (e *WriteError) WithContext(format string, args ...interface{}) *WriteError {
	cp := *e
	cp.context = append(append([]string{}, e.context...), fmt.Sprintf(format, args...))
	return &cp
}

// Context returns the accumulated context lines, deepest first.
func (e *WriteError) Context() []string { return e.context }

func contextTrailer(context []string) string {
	if len(context) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nAdditional error context (deepest first):\n")
	b.WriteString(strings.Join(context, "\n"))
	return b.String()
}
