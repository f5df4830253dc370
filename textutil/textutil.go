// Package textutil provides the small string helpers every fixed-width
// header field needs: NUL/whitespace trimming and byte-budget truncation.
//
// Grounded on original_source/src/utils.rs (`c_trim`, `char_truncate`).
// The original truncates on Unicode grapheme-cluster boundaries via the
// `unicode_segmentation` crate; no grapheme-cluster package appears
// anywhere in the retrieved pack, so this is the standard-library
// exception recorded in DESIGN.md: CharTruncate truncates on rune boundaries via
// unicode/utf8 instead of grapheme-cluster boundaries.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// CTrim mirrors C's NUL-terminated string semantics: everything from the
// first NUL byte onward is discarded, then the remainder is
// whitespace-trimmed.
func CTrim(s string) string {
	if idx := strings.IndexByte(s, 0); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// CharTruncate returns the longest rune-aligned prefix of s whose UTF-8
// byte length is at most cap.
func CharTruncate(s string, cap int) string {
	if len(s) <= cap {
		return s
	}
	var b strings.Builder
	b.Grow(cap)
	for _, r := range s {
		n := utf8.RuneLen(r)
		if b.Len()+n > cap {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
