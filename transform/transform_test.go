package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/software-opal/embroidery-go/pattern"
	"github.com/software-opal/embroidery-go/transform"
)

func s(x, y float64) pattern.Stitch { return pattern.NewStitch(x, y) }

func TestRemoveDuplicateStitchesGroup(t *testing.T) {
	g := pattern.NewStitchGroup([]pattern.Stitch{s(0, 0), s(0, 0), s(1, 1), s(1, 1), s(1, 1), s(0, 0)})
	got := transform.RemoveDuplicateStitchesGroup(g)
	assert.Equal(t, []pattern.Stitch{s(0, 0), s(1, 1), s(0, 0)}, got.Stitches)
}

func TestSplitLongStitches_Negative(t *testing.T) {
	g := pattern.NewStitchGroup([]pattern.Stitch{s(0, 0), s(10, 10), s(-10, -10)})
	got := transform.SplitLongStitchesGroup(g, -10, 10, -10, 10)
	assert.Equal(t, []pattern.Stitch{s(0, 0), s(10, 10), s(0, 0), s(-10, -10)}, got.Stitches)
}

func TestSplitLongStitches_LargeJump(t *testing.T) {
	g := pattern.NewStitchGroup([]pattern.Stitch{s(0, 0), s(50, -50)})
	got := transform.SplitLongStitchesGroup(g, -10, 10, -10, 10)
	assert.Equal(t, []pattern.Stitch{
		s(0, 0), s(10, -10), s(20, -20), s(30, -30), s(40, -40), s(50, -50),
	}, got.Stitches)
}

func TestSplitLongStitches_AsymmetricBounds(t *testing.T) {
	g := pattern.NewStitchGroup([]pattern.Stitch{s(0, 0), s(50, -50)})
	got := transform.SplitLongStitchesGroup(g, -1, 10, -10, 1)
	assert.Equal(t, []pattern.Stitch{
		s(0, 0), s(10, -10), s(20, -20), s(30, -30), s(40, -40), s(50, -50),
	}, got.Stitches)
}

func TestSplitLongStitches_Positive(t *testing.T) {
	g := pattern.NewStitchGroup([]pattern.Stitch{s(0, 0), s(20, 20), s(4, 10), s(0, 0)})
	got := transform.SplitLongStitchesGroup(g, -10, 10, -10, 10)
	assert.Equal(t, []pattern.Stitch{
		s(0, 0), s(10, 10), s(20, 20), s(12, 15), s(4, 10), s(0, 0),
	}, got.Stitches)
}

func TestSplitLongStitches_InvalidBoundsPanics(t *testing.T) {
	g := pattern.NewStitchGroup([]pattern.Stitch{s(0, 0), s(1, 1)})
	assert.Panics(t, func() {
		transform.SplitLongStitchesGroup(g, 0, 10, -10, 10)
	})
}
