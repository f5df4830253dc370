package dst

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/pattern"
)

func TestDetermineCut(t *testing.T) {
	assert.False(t, determineCut(nil))
	assert.False(t, determineCut([]irregular{{0, 0, Jump}, {50, 50, Jump}}))
	assert.True(t, determineCut([]irregular{{0, 0, Jump}, {50, 50, Jump}, {1, 0, Jump}}))
}

func TestHeaderRoundTrip(t *testing.T) {
	p := pattern.Pattern{
		Name: "my pattern",
		ColorGroups: []pattern.ColorGroup{
			{StitchGroups: []pattern.StitchGroup{
				pattern.NewStitchGroup([]pattern.Stitch{pattern.NewStitch(0, 0), pattern.NewStitch(1.2, -3.4)}),
			}},
			{StitchGroups: []pattern.StitchGroup{
				pattern.NewStitchGroup([]pattern.Stitch{pattern.NewStitch(1.2, -3.4), pattern.NewStitch(2, 2)}),
			}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, writeHeader(p, 42, &buf))
	assert.Equal(t, 512, buf.Len())

	attrs, err := readHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []pattern.PatternAttribute{pattern.Title("my pattern")}, attrs)
}

func TestWriteReadPattern_RoundTrip(t *testing.T) {
	p := pattern.Pattern{
		Name: "simple",
		ColorGroups: []pattern.ColorGroup{
			{StitchGroups: []pattern.StitchGroup{
				pattern.NewStitchGroup([]pattern.Stitch{
					pattern.NewStitch(0, 0),
					pattern.NewStitch(1.0, 1.0),
					pattern.NewStitch(2.0, 0.5),
				}),
			}},
		},
	}

	var buf bytes.Buffer
	w := NewWriter()
	require.NoError(t, w.WritePattern(p, &buf))

	r := NewReader()
	loadable, err := r.IsLoadable(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, loadable)

	got, err := r.ReadPattern(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "simple", got.Name)
	require.Len(t, got.ColorGroups, 1)
	require.Len(t, got.ColorGroups[0].StitchGroups, 1)
	stitches := got.ColorGroups[0].StitchGroups[0].Stitches
	require.Len(t, stitches, 3)
	assert.InDelta(t, 0.0, stitches[0].X, 0.01)
	assert.InDelta(t, 0.0, stitches[0].Y, 0.01)
	assert.InDelta(t, 1.0, stitches[1].X, 0.01)
	assert.InDelta(t, 1.0, stitches[1].Y, 0.01)
	assert.InDelta(t, 2.0, stitches[2].X, 0.01)
	assert.InDelta(t, 0.5, stitches[2].Y, 0.01)
}

// DST has no magic number, so — matching the original codec — a short,
// non-DST stream is still reported loadable; only a genuine I/O error
// aborts the probe.
func TestIsLoadable_PermissiveWithoutMagicNumber(t *testing.T) {
	r := NewReader()
	loadable, err := r.IsLoadable(bytes.NewReader([]byte("not a dst file at all")))
	require.NoError(t, err)
	assert.True(t, loadable)
}
