// Package pattern defines the neutral, in-memory pattern model every format
// codec reads into and writes out of: colors, threads, stitches, and the
// grouping hierarchy (StitchGroup -> ColorGroup -> Pattern -> PatternCollection).
//
// Grounded on original_source/embroidery-lib/src/{colors,stitch,pattern,collection}.rs.
package pattern

import "fmt"

// Color is a plain RGB triple.
type Color struct {
	Red, Green, Blue uint8
}

// RGB builds a Color from its three channels.
func RGB(red, green, blue uint8) Color {
	return Color{Red: red, Green: green, Blue: blue}
}

// String renders the color as an upper-case "#RRGGBB" hex triplet.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// Bytes returns the three RGB channels as a slice, in red-green-blue order.
func (c Color) Bytes() []byte {
	return []byte{c.Red, c.Green, c.Blue}
}

// FromBytes builds a Color from a 3-byte red-green-blue slice.
func FromBytes(b []byte) Color {
	return Color{Red: b[0], Green: b[1], Blue: b[2]}
}
