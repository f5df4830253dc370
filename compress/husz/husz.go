// Package husz wraps the external LZ-family archive decompressor/compressor
// that the HUS/VIP and JEF codecs need for their compressed per-axis
// streams (spec §4.4/§9). The original format uses a proprietary
// archiving scheme ("archivelib" in original_source's Cargo dependencies);
// no such crate exists anywhere in this module's retrieval pack, so this
// package substitutes the teacher's own compression dependency,
// github.com/klauspost/compress (already wired for encoding/bgzf), behind
// the same Decompress(bytes, level)/Compress(bytes, level) contract the
// codec expects. Levels are format-specific constants owned by the caller;
// this package only clamps them into flate's accepted range.
package husz

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
)

// clampLevel maps an arbitrary caller-supplied level onto flate's accepted
// range, defaulting to flate.DefaultCompression for anything out of bounds.
func clampLevel(level int) int {
	if level >= flate.HuffmanOnly && level <= flate.BestCompression {
		return level
	}
	return flate.DefaultCompression
}

// Decompress inflates data previously produced by Compress (or by the
// codec's own archiver, which this package stands in for).
func Decompress(data []byte, level int) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "husz: decompress")
	}
	return out, nil
}

// Compress deflates data at the given level (format-specific; out-of-range
// values fall back to flate.DefaultCompression).
func Compress(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, clampLevel(level))
	if err != nil {
		return nil, errors.Wrap(err, "husz: compress: new writer")
	}
	if _, err := w.Write(data); err != nil {
		return nil, errors.Wrap(err, "husz: compress: write")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "husz: compress: close")
	}
	return buf.Bytes(), nil
}
