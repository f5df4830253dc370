package pattern

import "math"

// PatternAttributeKind tags the PatternAttribute variants of
// original_source/embroidery-lib/src/pattern.rs.
type PatternAttributeKind int

const (
	AttributeArbitrary PatternAttributeKind = iota
	AttributeTitle
	AttributeAuthor
	AttributeCopyright
)

// PatternAttribute is a single piece of metadata attached to a Pattern or a
// PatternCollection. Arbitrary attributes carry their own key; the other
// kinds are fixed single-value fields.
type PatternAttribute struct {
	Kind  PatternAttributeKind
	Key   string
	Value string
}

// Title builds a Title attribute.
func Title(value string) PatternAttribute { return PatternAttribute{Kind: AttributeTitle, Value: value} }

// Author builds an Author attribute.
func Author(value string) PatternAttribute {
	return PatternAttribute{Kind: AttributeAuthor, Value: value}
}

// Copyright builds a Copyright attribute.
func Copyright(value string) PatternAttribute {
	return PatternAttribute{Kind: AttributeCopyright, Value: value}
}

// Arbitrary builds an Arbitrary(key, value) attribute.
func Arbitrary(key, value string) PatternAttribute {
	return PatternAttribute{Kind: AttributeArbitrary, Key: key, Value: value}
}

// Pattern is a single named design: an ordered list of color groups plus
// free-form metadata.
type Pattern struct {
	Name        string
	Attributes  []PatternAttribute
	ColorGroups []ColorGroup
}

// IterStitches returns every stitch in the pattern, color group by color
// group, in order.
func (p Pattern) IterStitches() []Stitch {
	var out []Stitch
	for _, cg := range p.ColorGroups {
		out = append(out, cg.IterStitches()...)
	}
	return out
}

// GetBounds returns (minX, minY, maxX, maxY) across every stitch in the
// pattern, or the all-zero rectangle if the pattern has no stitches.
func (p Pattern) GetBounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.NaN(), math.NaN()
	maxX, maxY = math.NaN(), math.NaN()
	for _, s := range p.IterStitches() {
		minX = nanMin(minX, s.X)
		minY = nanMin(minY, s.Y)
		maxX = nanMax(maxX, s.X)
		maxY = nanMax(maxY, s.Y)
	}
	if math.IsNaN(minX) || math.IsNaN(minY) || math.IsNaN(maxX) || math.IsNaN(maxY) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

func nanMin(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func nanMax(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}
