// Package breader provides the low-level binary-decoding primitives shared
// by every format codec: fixed-width integer reads with explicit
// endianness, exact-length reads, and magic-byte matching, all reporting
// failures as emberrors.ReadError so callers can tell a truncated stream
// apart from a format mismatch.
package breader

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/emberrors"
)

// Reader wraps an io.Reader with the exact-read and typed-integer helpers
// every binary codec in this module needs.
type Reader struct {
	r     io.Reader
	bytes int64
}

// New wraps r for primitive reads.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Pos reports how many bytes have been consumed so far.
func (r *Reader) Pos() int64 { return r.bytes }

// ReadExact fills buf entirely or returns an UnexpectedEOF ReadError.
func (r *Reader) ReadExact(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.bytes += int64(n)
	if err != nil {
		return emberrors.UnexpectedEOF(err, "expected %d bytes, got %d", len(buf), n)
	}
	return nil
}

// ReadMagic reads len(want) bytes and compares them against want,
// returning an InvalidFormat ReadError on mismatch and an UnexpectedEOF
// ReadError on a short read.
func (r *Reader) ReadMagic(want []byte) error {
	got := make([]byte, len(want))
	if err := r.ReadExact(got); err != nil {
		return err
	}
	for i := range want {
		if got[i] != want[i] {
			return emberrors.InvalidFormat("magic bytes mismatch: want % x, got % x", want, got)
		}
	}
	return nil
}

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	var buf [1]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads a single signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a 16-bit unsigned integer in the given byte order.
func (r *Reader) ReadUint16(order binary.ByteOrder) (uint16, error) {
	var buf [2]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint16(buf[:]), nil
}

// ReadInt16 reads a 16-bit signed integer in the given byte order.
func (r *Reader) ReadInt16(order binary.ByteOrder) (int16, error) {
	v, err := r.ReadUint16(order)
	return int16(v), err
}

// ReadUint32 reads a 32-bit unsigned integer in the given byte order.
func (r *Reader) ReadUint32(order binary.ByteOrder) (uint32, error) {
	var buf [4]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint32(buf[:]), nil
}

// ReadInt32 reads a 32-bit signed integer in the given byte order.
func (r *Reader) ReadInt32(order binary.ByteOrder) (int32, error) {
	v, err := r.ReadUint32(order)
	return int32(v), err
}

// ReadUint64 reads a 64-bit unsigned integer in the given byte order.
func (r *Reader) ReadUint64(order binary.ByteOrder) (uint64, error) {
	var buf [8]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint64(buf[:]), nil
}

// ReadInt64 reads a 64-bit signed integer in the given byte order.
func (r *Reader) ReadInt64(order binary.ByteOrder) (int64, error) {
	v, err := r.ReadUint64(order)
	return int64(v), err
}

// Context wraps a non-nil error observed while decoding a named field,
// appending a deepest-first context line via emberrors. Returns nil
// unchanged so callers can write `if err := breader.Context(err, "color table"); err != nil`.
func Context(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *emberrors.ReadError:
		return e.WithContext(format, args...)
	case *emberrors.WriteError:
		return e.WithContext(format, args...)
	default:
		return err
	}
}
