package csv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/pattern"
)

func TestWritePattern_OneRowPerStitch(t *testing.T) {
	p := pattern.Pattern{
		ColorGroups: []pattern.ColorGroup{
			{
				StitchGroups: []pattern.StitchGroup{
					pattern.NewStitchGroup([]pattern.Stitch{
						pattern.NewStitch(0, 0),
						pattern.NewStitch(1.5, 2.5),
					}).WithTrim(true),
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter().WritePattern(p, &buf))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3) // header + 2 stitches
	assert.Equal(t, "color_group,stitch_group,x,y,trim,cut", string(lines[0]))
	assert.Equal(t, "0,0,0,0,true,false", string(lines[1]))
	assert.Equal(t, "0,0,1.5,2.5,true,false", string(lines[2]))
}

func TestFormat_WriterOnly(t *testing.T) {
	f := NewFormat()
	_, ok := f.Reader()
	assert.False(t, ok)
	_, ok = f.Writer()
	assert.True(t, ok)
}
