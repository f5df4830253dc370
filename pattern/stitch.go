package pattern

import (
	"fmt"
	"math"
)

// Stitch is a single needle position in millimeters from an arbitrary
// (0, 0) origin, where positive values move up and right.
type Stitch struct {
	X, Y float64
}

// NewStitch builds a Stitch at (x, y).
func NewStitch(x, y float64) Stitch {
	return Stitch{X: x, Y: y}
}

// Zero is the origin stitch.
func Zero() Stitch { return Stitch{} }

// RelativeTo returns the (dx, dy) offset of s from other.
func (s Stitch) RelativeTo(other Stitch) (float64, float64) {
	return s.X - other.X, s.Y - other.Y
}

// DistanceTo returns the Euclidean distance between s and other.
func (s Stitch) DistanceTo(other Stitch) float64 {
	dx, dy := s.RelativeTo(other)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsValid reports whether both coordinates are finite.
func (s Stitch) IsValid() bool {
	return !math.IsInf(s.X, 0) && !math.IsNaN(s.X) && !math.IsInf(s.Y, 0) && !math.IsNaN(s.Y)
}

// String renders the stitch as "(x, y)".
func (s Stitch) String() string {
	return fmt.Sprintf("(%v, %v)", s.X, s.Y)
}

// StitchGroup is a run of stitches sharing one thread, with a trim command
// after the run and an optional cut heuristic flag (used by tight-delta
// formats such as DST).
type StitchGroup struct {
	Stitches []Stitch
	Trim     bool
	Cut      bool
}

// NewStitchGroup builds an untrimmed, uncut StitchGroup.
func NewStitchGroup(stitches []Stitch) StitchGroup {
	return StitchGroup{Stitches: stitches}
}

// WithTrim returns a copy of g with Trim set.
func (g StitchGroup) WithTrim(trim bool) StitchGroup {
	g.Trim = trim
	return g
}

// WithCut returns a copy of g with Cut set.
func (g StitchGroup) WithCut(cut bool) StitchGroup {
	g.Cut = cut
	return g
}

// ColorGroup is a sequence of stitch groups stitched with a single,
// optional thread.
type ColorGroup struct {
	Thread      Thread
	HasThread   bool
	StitchGroups []StitchGroup
}

// IterStitches returns every stitch in the color group, group by group, in
// order.
func (g ColorGroup) IterStitches() []Stitch {
	var out []Stitch
	for _, sg := range g.StitchGroups {
		out = append(out, sg.Stitches...)
	}
	return out
}
