package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/software-opal/embroidery-go/pattern"
)

func TestColor_String(t *testing.T) {
	assert.Equal(t, "#FF8000", pattern.RGB(0xFF, 0x80, 0x00).String())
}

func TestStitch_RelativeTo(t *testing.T) {
	s := pattern.NewStitch(1, 1)
	dx, dy := s.RelativeTo(pattern.Zero())
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, 1.0, dy)

	dx, dy = pattern.Zero().RelativeTo(s)
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, -1.0, dy)
}

func TestStitch_DistanceTo(t *testing.T) {
	s := pattern.NewStitch(3, 4)
	assert.Equal(t, 5.0, s.DistanceTo(pattern.Zero()))
}

func TestPattern_GetBounds_Empty(t *testing.T) {
	p := pattern.Pattern{}
	minX, minY, maxX, maxY := p.GetBounds()
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 0.0, maxX)
	assert.Equal(t, 0.0, maxY)
}

func TestPattern_GetBounds(t *testing.T) {
	p := pattern.Pattern{
		ColorGroups: []pattern.ColorGroup{
			{
				StitchGroups: []pattern.StitchGroup{
					pattern.NewStitchGroup([]pattern.Stitch{
						pattern.NewStitch(-5, 2),
						pattern.NewStitch(10, -3),
					}),
				},
			},
		},
	}
	minX, minY, maxX, maxY := p.GetBounds()
	assert.Equal(t, -5.0, minX)
	assert.Equal(t, -3.0, minY)
	assert.Equal(t, 10.0, maxX)
	assert.Equal(t, 2.0, maxY)
}

func TestPatternCollection_SortedNames(t *testing.T) {
	c := pattern.NewPatternCollection()
	c.Insert("zeta", pattern.Pattern{Name: "zeta"})
	c.Insert("alpha", pattern.Pattern{Name: "alpha"})
	assert.Equal(t, []string{"alpha", "zeta"}, c.SortedNames())
}
