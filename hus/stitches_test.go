package hus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/pattern"
)

func TestReadStitches_SingleGroup(t *testing.T) {
	attr := []byte{attrNormal, attrNormal, attrLastStitch}
	xs := []byte{0, 10, 5}
	ys := []byte{0, 0, 5}

	groups, err := readStitches(attr, xs, ys)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].StitchGroups, 1)
	stitches := groups[0].StitchGroups[0].Stitches
	require.Len(t, stitches, 3)
	assert.InDelta(t, 0.0, stitches[0].X, 0.001)
	assert.InDelta(t, 1.0, stitches[1].X, 0.001)
	assert.InDelta(t, 1.5, stitches[2].X, 0.001)
}

func TestReadStitches_ColorChangeSplits(t *testing.T) {
	attr := []byte{attrNormal, attrColorChange, attrLastStitch}
	xs := []byte{0, 1, 1}
	ys := []byte{0, 1, 1}

	groups, err := readStitches(attr, xs, ys)
	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestReadStitches_MissingLastStitchIsInvalidFormat(t *testing.T) {
	_, err := readStitches([]byte{attrNormal}, []byte{0}, []byte{0})
	require.Error(t, err)
}

func TestReadStitches_UnknownAttributeIsInvalidFormat(t *testing.T) {
	_, err := readStitches([]byte{0x42}, []byte{0}, []byte{0})
	require.Error(t, err)
}

func TestWriteReadStitches_RoundTrip(t *testing.T) {
	p := pattern.Pattern{
		ColorGroups: []pattern.ColorGroup{
			{StitchGroups: []pattern.StitchGroup{
				pattern.NewStitchGroup([]pattern.Stitch{
					pattern.NewStitch(0, 0),
					pattern.NewStitch(1.0, 0.5),
				}),
			}},
			{StitchGroups: []pattern.StitchGroup{
				pattern.NewStitchGroup([]pattern.Stitch{
					pattern.NewStitch(1.0, 0.5),
					pattern.NewStitch(2.0, -0.5),
				}),
			}},
		},
	}

	attr, xs, ys, err := writeStitches(p)
	require.NoError(t, err)

	groups, err := readStitches(attr, xs, ys)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.InDelta(t, 2.0, groups[1].StitchGroups[0].Stitches[1].X, 0.001)
	assert.InDelta(t, -0.5, groups[1].StitchGroups[0].Stitches[1].Y, 0.001)
}
