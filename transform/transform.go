// Package transform implements the two geometric transforms needed to make
// a neutral pattern writable to tight-delta formats: collapsing consecutive
// duplicate stitches, and splitting stitches whose delta exceeds a format's
// representable bounds into multiple smaller steps.
//
// Grounded on original_source/embroidery-lib/src/{stitch,pattern,transforms}.rs.
package transform

import (
	"fmt"
	"math"

	"github.com/software-opal/embroidery-go/pattern"
)

// RemoveDuplicateStitchesGroup collapses consecutive identical stitches
// within a single StitchGroup down to one.
func RemoveDuplicateStitchesGroup(g pattern.StitchGroup) pattern.StitchGroup {
	if len(g.Stitches) == 0 {
		return g
	}
	out := make([]pattern.Stitch, 0, len(g.Stitches))
	curr := g.Stitches[0]
	out = append(out, curr)
	for _, s := range g.Stitches[1:] {
		if s != curr {
			out = append(out, s)
			curr = s
		}
	}
	g.Stitches = out
	return g
}

// RemoveDuplicateStitchesColorGroup distributes RemoveDuplicateStitchesGroup
// across every stitch group in a color group.
func RemoveDuplicateStitchesColorGroup(g pattern.ColorGroup) pattern.ColorGroup {
	out := make([]pattern.StitchGroup, len(g.StitchGroups))
	for i, sg := range g.StitchGroups {
		out[i] = RemoveDuplicateStitchesGroup(sg)
	}
	g.StitchGroups = out
	return g
}

// RemoveDuplicateStitches distributes RemoveDuplicateStitchesColorGroup
// across every color group in a pattern.
func RemoveDuplicateStitches(p pattern.Pattern) pattern.Pattern {
	out := make([]pattern.ColorGroup, len(p.ColorGroups))
	for i, cg := range p.ColorGroups {
		out[i] = RemoveDuplicateStitchesColorGroup(cg)
	}
	p.ColorGroups = out
	return p
}

// SplitLongStitchesGroup re-expresses any stitch delta outside
// [minX, maxX] x [minY, maxY] as a whole number of smaller steps, each of
// which fits within those bounds. minX and minY must be negative; maxX and
// maxY must be positive (the bounds must straddle the origin, since a
// format's representable delta range always does).
func SplitLongStitchesGroup(g pattern.StitchGroup, minX, maxX, minY, maxY float64) pattern.StitchGroup {
	if !(minX < 0.0 && minY < 0.0 && maxX > 0.0 && maxY > 0.0) {
		panic(fmt.Sprintf("transform: bounds are not valid (min_x=%v, max_x=%v, min_y=%v, max_y=%v)", minX, maxX, minY, maxY))
	}
	if len(g.Stitches) == 0 {
		return g
	}
	out := make([]pattern.Stitch, 0, len(g.Stitches))
	curr := g.Stitches[0]
	out = append(out, curr)
	for _, s := range g.Stitches[1:] {
		dx, dy := s.RelativeTo(curr)
		if dx < minX || dx > maxX || dy < minY || dy > maxY {
			segmentsX := 1.0
			if dx < minX {
				segmentsX = dx / minX
			} else if dx > maxX {
				segmentsX = dx / maxX
			}
			segmentsY := 1.0
			if dy < minY {
				segmentsY = dy / minY
			} else if dy > maxY {
				segmentsY = dy / maxY
			}
			segments := math.Ceil(math.Max(math.Abs(segmentsX), math.Abs(segmentsY)))
			if segments <= 1.0 {
				panic(fmt.Sprintf("transform: invalid segment count %v for stitch %v to %v", segments, curr, s))
			}
			moveX := dx / segments
			moveY := dy / segments
			for j := 1; j < int(segments); j++ {
				step := pattern.NewStitch(curr.X+moveX*float64(j), curr.Y+moveY*float64(j))
				out = append(out, step)
			}
		}
		out = append(out, s)
		curr = s
	}
	g.Stitches = out
	return g
}

// SplitLongStitchesColorGroup distributes SplitLongStitchesGroup across
// every stitch group in a color group.
func SplitLongStitchesColorGroup(g pattern.ColorGroup, minX, maxX, minY, maxY float64) pattern.ColorGroup {
	out := make([]pattern.StitchGroup, len(g.StitchGroups))
	for i, sg := range g.StitchGroups {
		out[i] = SplitLongStitchesGroup(sg, minX, maxX, minY, maxY)
	}
	g.StitchGroups = out
	return g
}

// SplitLongStitches distributes SplitLongStitchesColorGroup across every
// color group in a pattern.
func SplitLongStitches(p pattern.Pattern, minX, maxX, minY, maxY float64) pattern.Pattern {
	out := make([]pattern.ColorGroup, len(p.ColorGroups))
	for i, cg := range p.ColorGroups {
		out[i] = SplitLongStitchesColorGroup(cg, minX, maxX, minY, maxY)
	}
	p.ColorGroups = out
	return p
}
