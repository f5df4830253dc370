// Package vp3 implements the VP3 pattern codec and shares its string-field
// helpers with the sibling vp3/vf3 font-collection codec.
//
// Grounded on original_source/formats/vp3/src/{common/util,vp3.rs,vp3/read,
// vp3/read/header,vp3/read/thread}.rs.
package vp3

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/emberrors"
)

// ReadWideStringField reads a u16-BE length-prefixed field of UTF-16BE
// codepoints, per common/util.rs's read_wide_string_field. The length is a
// byte count and must be even.
func ReadWideStringField(r *breader.Reader, name string) (string, error) {
	length, err := r.ReadUint16(binary.BigEndian)
	if err != nil {
		return "", breader.Context(err, "vp3: reading %s length", name)
	}
	if length%2 != 0 {
		return "", emberrors.InvalidFormat("vp3: incorrect length for %s, expected an even value, got %d", name, length)
	}
	codepoints := make([]uint16, length/2)
	for i := range codepoints {
		v, err := r.ReadUint16(binary.BigEndian)
		if err != nil {
			return "", breader.Context(err, "vp3: reading %s codepoint %d", name, i)
		}
		codepoints[i] = v
	}
	return string(utf16.Decode(codepoints)), nil
}

// ReadASCIIStringField reads a u16-BE length-prefixed field of raw bytes,
// per common/util.rs's read_ascii_string_field. Bytes are decoded
// permissively (not strictly validated as ASCII), matching the original's
// String::from_utf8_lossy.
func ReadASCIIStringField(r *breader.Reader, name string) (string, error) {
	length, err := r.ReadUint16(binary.BigEndian)
	if err != nil {
		return "", breader.Context(err, "vp3: reading %s length", name)
	}
	buf := make([]byte, length)
	if err := r.ReadExact(buf); err != nil {
		return "", breader.Context(err, "vp3: reading %s of length 0x%X", name, length)
	}
	return lossyUTF8(buf), nil
}

// lossyUTF8 mirrors Rust's String::from_utf8_lossy: valid runs are kept
// as-is, invalid byte sequences become U+FFFD.
func lossyUTF8(buf []byte) string {
	if utf8.Valid(buf) {
		return string(buf)
	}
	var b strings.Builder
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		b.WriteRune(r)
		buf = buf[size:]
	}
	return b.String()
}
