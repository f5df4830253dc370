package jef

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildStitchBody constructs the three parallel attribute/x/y byte streams
// convertStitches expects, using signed-delta encoding (tenths of mm).
func buildStitchBody(steps []struct {
	attr byte
	dx   int8
	dy   int8
}) (attr, xs, ys []byte) {
	for _, s := range steps {
		attr = append(attr, s.attr)
		xs = append(xs, byte(s.dx))
		ys = append(ys, byte(s.dy))
	}
	return attr, xs, ys
}

func TestReadPattern_SingleColorGroup(t *testing.T) {
	attr, xs, ys := buildStitchBody([]struct {
		attr byte
		dx   int8
		dy   int8
	}{
		{attrNormal, 10, 0},
		{attrNormal, 0, 10},
		{attrLastStitch, 0, 0},
	})

	h := sampleHeader()
	h.NumberOfColors = 1
	h.Threads = h.Threads[:1]

	raw := writeFixture(t, h, attr, xs, ys)

	r := NewReader()
	p, err := r.ReadPattern(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, p.ColorGroups, 1)
	require.Len(t, p.ColorGroups[0].StitchGroups, 1)
	stitches := p.ColorGroups[0].StitchGroups[0].Stitches
	require.Len(t, stitches, 2)
	assert.InDelta(t, 1.0, stitches[0].X, 0.01)
	assert.InDelta(t, 0.0, stitches[0].Y, 0.01)
	assert.InDelta(t, 1.0, stitches[1].X, 0.01)
	assert.InDelta(t, 1.0, stitches[1].Y, 0.01)
	assert.True(t, p.ColorGroups[0].StitchGroups[0].Cut)
	assert.True(t, p.ColorGroups[0].StitchGroups[0].Trim)
}

func TestReadPattern_JumpDefersStitchUntilNextNormal(t *testing.T) {
	attr, xs, ys := buildStitchBody([]struct {
		attr byte
		dx   int8
		dy   int8
	}{
		{attrNormal, 5, 0},
		{attrJump, 5, 0},
		{attrNormal, 5, 0},
		{attrLastStitch, 0, 0},
	})

	h := sampleHeader()
	h.NumberOfColors = 1
	h.Threads = h.Threads[:1]
	raw := writeFixture(t, h, attr, xs, ys)

	r := NewReader()
	p, err := r.ReadPattern(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, p.ColorGroups, 1)
	// The jump splits the run into two stitch groups; the jump's own
	// (x, y) is the first stitch of the second group, emitted only once
	// the next Normal stitch arrives.
	require.Len(t, p.ColorGroups[0].StitchGroups, 2)
	first := p.ColorGroups[0].StitchGroups[0].Stitches
	second := p.ColorGroups[0].StitchGroups[1].Stitches
	require.Len(t, first, 1)
	require.Len(t, second, 2)
	assert.InDelta(t, 1.0, second[0].X, 0.01)
	assert.InDelta(t, 1.5, second[1].X, 0.01)
}

func TestReadPattern_ColorChangeSplitsColorGroups(t *testing.T) {
	attr, xs, ys := buildStitchBody([]struct {
		attr byte
		dx   int8
		dy   int8
	}{
		{attrNormal, 5, 0},
		{attrColorChange, 5, 0},
		{attrNormal, 5, 0},
		{attrLastStitch, 0, 0},
	})

	h := sampleHeader()
	raw := writeFixture(t, h, attr, xs, ys)

	r := NewReader()
	p, err := r.ReadPattern(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, p.ColorGroups, 2)
	assert.True(t, p.ColorGroups[0].HasThread)
	assert.True(t, p.ColorGroups[1].HasThread)
	assert.Equal(t, h.Threads[0].Color, p.ColorGroups[0].Thread.Color)
	assert.Equal(t, h.Threads[1].Color, p.ColorGroups[1].Thread.Color)
}

func TestReadPattern_MissingLastStitchIsInvalidFormat(t *testing.T) {
	attr, xs, ys := buildStitchBody([]struct {
		attr byte
		dx   int8
		dy   int8
	}{
		{attrNormal, 5, 0},
	})

	h := sampleHeader()
	h.NumberOfColors = 1
	h.Threads = h.Threads[:1]
	raw := writeFixture(t, h, attr, xs, ys)

	r := NewReader()
	_, err := r.ReadPattern(bytes.NewReader(raw))
	require.Error(t, err)
}

func TestReadPattern_UnknownAttributeIsInvalidFormat(t *testing.T) {
	attr, xs, ys := buildStitchBody([]struct {
		attr byte
		dx   int8
		dy   int8
	}{
		{0xFF, 5, 0},
		{attrLastStitch, 0, 0},
	})

	h := sampleHeader()
	h.NumberOfColors = 1
	h.Threads = h.Threads[:1]
	raw := writeFixture(t, h, attr, xs, ys)

	r := NewReader()
	_, err := r.ReadPattern(bytes.NewReader(raw))
	require.Error(t, err)
}

func TestIsLoadable_RejectsGarbage(t *testing.T) {
	r := NewReader()
	loadable, err := r.IsLoadable(bytes.NewReader([]byte("not a jef file at all, way too short or wrong")))
	require.NoError(t, err)
	assert.False(t, loadable)
}
