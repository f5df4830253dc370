package jef

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/pattern"
)

func sampleHeader() *PatternHeader {
	return &PatternHeader{
		StitchAbsOffset:  116,
		FormatFlags:      0,
		DateTime:         [14]byte{'2', '0', '2', '6', '0', '1', '0', '1', '1', '2', '0', '0', '0', '0'},
		NumberOfColors:   2,
		NumberOfStitches: 5,
		Hoop:             HoopFromCode(hoopCode110x110),
		Bounds:           [4]uint32{0, 0, 100, 100},
		RectFrom110x110:  [4]uint32{0, 0, 100, 100},
		RectFrom50x50:    [4]uint32{0, 0, 0, 0},
		RectFrom200x140:  [4]uint32{0, 0, 0, 0},
		RectFromCustom:   [4]uint32{0, 0, 0, 0},
		Threads:          []pattern.Thread{threadFromCatalogIndex(0), threadFromCatalogIndex(1)},
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	h := sampleHeader()

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(h, &buf))

	got, err := BuildHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, h.StitchAbsOffset, got.StitchAbsOffset)
	assert.Equal(t, h.FormatFlags, got.FormatFlags)
	assert.Equal(t, h.DateTime, got.DateTime)
	assert.Equal(t, h.NumberOfColors, got.NumberOfColors)
	assert.Equal(t, h.NumberOfStitches, got.NumberOfStitches)
	assert.Equal(t, h.Hoop.Code(), got.Hoop.Code())
	assert.Equal(t, h.Bounds, got.Bounds)
	assert.Equal(t, h.RectFrom110x110, got.RectFrom110x110)
	require.Len(t, got.Threads, 2)
	assert.Equal(t, threadFromCatalogIndex(0).Color, got.Threads[0].Color)
	assert.Equal(t, threadFromCatalogIndex(1).Color, got.Threads[1].Color)
}

func TestBuildHeader_RejectsNonZeroReserved(t *testing.T) {
	h := sampleHeader()
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(h, &buf))

	raw := buf.Bytes()
	// The reserved u16 immediately follows stitch offset (4) + format
	// flags (4) + datetime (14).
	raw[4+4+14] = 1

	_, err := BuildHeader(bytes.NewReader(raw))
	require.Error(t, err)
}

func TestHoopFromCode_TransposesRectangularCodes(t *testing.T) {
	w, h, ok := HoopFromCode(hoopCode126x110).Size()
	require.True(t, ok)
	assert.Equal(t, 140.0, w)
	assert.Equal(t, 200.0, h)

	w, h, ok = HoopFromCode(hoopCode140x200).Size()
	require.True(t, ok)
	assert.Equal(t, 126.0, w)
	assert.Equal(t, 110.0, h)
}
