package hus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Transcribed from original_source/formats/hus/src/header.rs's
// test_header_roundtrip, byte-for-byte.
func TestPatternHeader_RoundTrip(t *testing.T) {
	data := []byte{
		0x5d, 0xfc, 0x90, 0x01, 0x78, 0x03, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0xb3, 0x00, 0xb5, 0x00, 0x4d, 0xff,
		0x4c, 0xff, 0x4e, 0x00, 0x00, 0x00, 0x6b, 0x00, 0x00, 0x00, 0x8b, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x36, 0x00, 0x00, 0x00,
	}

	header, err := buildHeader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, Vip, header.PatternType)
	assert.Equal(t, uint32(0x00_00_03_78), header.NumberOfStitches)
	assert.Equal(t, uint32(0x00_00_00_01), header.NumberOfColors)
	assert.Equal(t, int16(0x00_b3), header.PositiveXHoopSize)
	assert.Equal(t, int16(0x00_b5), header.PositiveYHoopSize)
	assert.Equal(t, int16(0x4d-0x100), header.NegativeXHoopSize)
	assert.Equal(t, int16(0x4c-0x100), header.NegativeYHoopSize)
	assert.Equal(t, uint32(0x00_00_00_4e), header.AttributeOffset)
	assert.Equal(t, uint32(0x00_00_00_6b), header.XOffset)
	assert.Equal(t, uint32(0x00_00_02_8b), header.YOffset)

	var out bytes.Buffer
	require.NoError(t, writeHeader(header, &out))
	assert.Equal(t, data, out.Bytes())
}

// Exercises the deviation from header.rs's write, which unconditionally
// emits a zeroed title field and discards self.title entirely. This
// module's writeHeader serializes the pattern's actual title instead, so a
// non-empty title must round-trip through the title field rather than be
// silently dropped.
func TestWriteHeader_NonEmptyTitle(t *testing.T) {
	h := &PatternHeader{PatternType: Hus, Title: "STITCH"}

	var out bytes.Buffer
	require.NoError(t, writeHeader(h, &out))

	got, err := buildHeader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "STITCH", got.Title)
}

func TestBuildHeader_RejectsBadMagic(t *testing.T) {
	_, err := buildHeader(bytes.NewReader(bytes.Repeat([]byte{0x00}, 46)))
	require.Error(t, err)
}

func TestHeaderLengths(t *testing.T) {
	h := &PatternHeader{PatternType: Hus, NumberOfColors: 3, AttributeOffset: 100}
	assert.Equal(t, 42, h.headerLen())
	assert.Equal(t, 6, h.colorLen())
	assert.Equal(t, 58, h.colorConsumeLen())

	v := &PatternHeader{PatternType: Vip, NumberOfColors: 3, AttributeOffset: 100}
	assert.Equal(t, 46, v.headerLen())
	assert.Equal(t, 12, v.colorLen())
	assert.Equal(t, 54, v.colorConsumeLen())
}
