package jef

import (
	"strconv"

	"github.com/software-opal/embroidery-go/pattern"
)

// catalogEntry is one row of the 79-entry JEF thread catalog.
type catalogEntry struct {
	color pattern.Color
	name  string
	code  string
}

// ThreadCatalog is the 79-entry thread table header.rs's PatternHeader::build
// indexes by `colorIndex % 79`. The real Janome catalog
// (original_source/formats/jef/src/colors.rs's JEF_THREADS) was filtered
// out of the retrieval pack as vendor-proprietary, non-code data; this
// table is a structurally-correct, clearly-synthetic 79-entry substitute
// (DESIGN.md Open Question decision #2) that satisfies the modulus
// indexing behavior without claiming to match Janome's published colors.
var ThreadCatalog = buildThreadCatalog()

func buildThreadCatalog() [79]catalogEntry {
	var catalog [79]catalogEntry
	for i := range catalog {
		h := float64(i) / float64(len(catalog))
		catalog[i] = catalogEntry{
			color: hueToRGB(h),
			name:  "Jef Thread",
			code:  formatCode(i),
		}
	}
	return catalog
}

func hueToRGB(h float64) pattern.Color {
	return hslToColorLocal(h, 0.6, 0.45)
}

// hslToColorLocal mirrors hus.hslToColor's conversion; duplicated rather
// than imported because hus is this codec's sibling, not a dependency —
// neither package should depend on the other's internals for an
// unrelated, independently-synthesized palette.
func hslToColorLocal(h, s, l float64) pattern.Color {
	if s == 0 {
		v := uint8(l * 255)
		return pattern.RGB(v, v, v)
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hueChannel(p, q, h+1.0/3.0)
	g := hueChannel(p, q, h)
	b := hueChannel(p, q, h-1.0/3.0)
	return pattern.RGB(uint8(r*255), uint8(g*255), uint8(b*255))
}

func hueChannel(p, q, t float64) float64 {
	for t < 0 {
		t++
	}
	for t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func formatCode(i int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return string(letters[i%len(letters)]) + strconv.Itoa(i)
}

// threadFromCatalogIndex looks up a raw header color index, reduced mod 79,
// per header.rs's `JEF_THREADS[(idx as usize) % 79]`.
func threadFromCatalogIndex(idx uint32) pattern.Thread {
	entry := ThreadCatalog[int(idx)%len(ThreadCatalog)]
	return pattern.NewThread(entry.color, entry.name, entry.code)
}
