package breader

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/emberrors"
)

// Writer mirrors Reader on the write side: fixed-width integer writes with
// explicit endianness, reporting failures as emberrors.WriteError.
type Writer struct {
	w     io.Writer
	bytes int64
}

// NewWriter wraps w for primitive writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Pos reports how many bytes have been written so far.
func (w *Writer) Pos() int64 { return w.bytes }

// WriteExact writes buf in full.
func (w *Writer) WriteExact(buf []byte) error {
	n, err := w.w.Write(buf)
	w.bytes += int64(n)
	if err != nil {
		return emberrors.WrapStdWrite(err)
	}
	return nil
}

// WriteUint8 writes a single unsigned byte.
func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteExact([]byte{v})
}

// WriteInt8 writes a single signed byte.
func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v))
}

// WriteUint16 writes a 16-bit unsigned integer in the given byte order.
func (w *Writer) WriteUint16(order binary.ByteOrder, v uint16) error {
	var buf [2]byte
	order.PutUint16(buf[:], v)
	return w.WriteExact(buf[:])
}

// WriteInt16 writes a 16-bit signed integer in the given byte order.
func (w *Writer) WriteInt16(order binary.ByteOrder, v int16) error {
	return w.WriteUint16(order, uint16(v))
}

// WriteUint32 writes a 32-bit unsigned integer in the given byte order.
func (w *Writer) WriteUint32(order binary.ByteOrder, v uint32) error {
	var buf [4]byte
	order.PutUint32(buf[:], v)
	return w.WriteExact(buf[:])
}

// WriteInt32 writes a 32-bit signed integer in the given byte order.
func (w *Writer) WriteInt32(order binary.ByteOrder, v int32) error {
	return w.WriteUint32(order, uint32(v))
}

// WriteUint64 writes a 64-bit unsigned integer in the given byte order.
func (w *Writer) WriteUint64(order binary.ByteOrder, v uint64) error {
	var buf [8]byte
	order.PutUint64(buf[:], v)
	return w.WriteExact(buf[:])
}

// WriteInt64 writes a 64-bit signed integer in the given byte order.
func (w *Writer) WriteInt64(order binary.ByteOrder, v int64) error {
	return w.WriteUint64(order, uint64(v))
}
