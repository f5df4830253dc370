package jef

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/compress/husz"
)

// writeFixture assembles a complete JEF stream (header + length-prefixed
// stitch body) for this package's own round-trip tests. There is no public
// Writer: JEF is read-only (see jef.go), so this helper exists only here.
func writeFixture(t *testing.T, h *PatternHeader, attr, xs, ys []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := WriteHeader(h, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	attrCompressed, err := husz.Compress(attr, compressionLevel)
	if err != nil {
		t.Fatalf("compress attr: %v", err)
	}
	xCompressed, err := husz.Compress(xs, compressionLevel)
	if err != nil {
		t.Fatalf("compress xs: %v", err)
	}
	yCompressed, err := husz.Compress(ys, compressionLevel)
	if err != nil {
		t.Fatalf("compress ys: %v", err)
	}

	w := breader.NewWriter(&buf)
	if err := w.WriteUint32(binary.LittleEndian, uint32(len(attrCompressed))); err != nil {
		t.Fatalf("write attr len: %v", err)
	}
	if err := w.WriteExact(attrCompressed); err != nil {
		t.Fatalf("write attr: %v", err)
	}
	if err := w.WriteUint32(binary.LittleEndian, uint32(len(xCompressed))); err != nil {
		t.Fatalf("write x len: %v", err)
	}
	if err := w.WriteExact(xCompressed); err != nil {
		t.Fatalf("write x: %v", err)
	}
	if err := w.WriteExact(yCompressed); err != nil {
		t.Fatalf("write y: %v", err)
	}

	return buf.Bytes()
}
