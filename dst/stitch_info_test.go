package dst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt(t *testing.T) {
	x, y := fromInt(0x000000)
	assert.Equal(t, int8(0), x)
	assert.Equal(t, int8(0), y)

	x, y = fromInt(0x000020)
	assert.Equal(t, int8(0), x)
	assert.Equal(t, int8(81), y)

	x, y = fromInt(0x000018)
	assert.Equal(t, int8(-81), x)
	assert.Equal(t, int8(-81), y)
}

func TestToInt(t *testing.T) {
	cases := []struct {
		x, y    int8
		wantVal uint32
		wantOK  bool
	}{
		{0, 0, 0x000003, true},
		{127, 127, 0, false},
		{127, 5, 0, false},
		{-121, -121, 0x5A5A1B, true},
		{121, -121, 0x555517, true},
		{-12, 64, 0xA81223, true},
		{8, -8, 0x960003, true},
	}
	for _, c := range cases {
		val, ok := toInt(c.x, c.y)
		assert.Equal(t, c.wantOK, ok, "(%d, %d)", c.x, c.y)
		if c.wantOK {
			assert.Equal(t, c.wantVal, val, "(%d, %d)", c.x, c.y)
		}
	}
}

func TestFromInt_AnyByteSequenceParses(t *testing.T) {
	for i := uint32(0); i < 0x1000000; i += 97 {
		x, y := fromInt(i)
		assert.True(t, x >= -121 && x <= 121, "%06X -> x=%d", i, x)
		assert.True(t, y >= -121 && y <= 121, "%06X -> y=%d", i, y)
	}
}

func TestValidsRoundtrip(t *testing.T) {
	for x := -121; x <= 121; x++ {
		for y := -121; y <= 121; y++ {
			val, ok := toInt(int8(x), int8(y))
			assert.True(t, ok)
			gotX, gotY := fromInt(val)
			assert.Equal(t, int8(x), gotX)
			assert.Equal(t, int8(y), gotY)
			val2, ok2 := toInt(gotX, gotY)
			assert.True(t, ok2)
			assert.Equal(t, val, val2)
		}
	}
}

func TestStitchInformationFromBytes(t *testing.T) {
	assert.Equal(t, MoveStitch(0, 0, Jump), StitchInfoFromBytes([3]byte{0x00, 0x00, 0x83}))
	assert.Equal(t, MoveStitch(0, 0, Stop), StitchInfoFromBytes([3]byte{0x00, 0x00, 0x43}))
	assert.Equal(t, MoveStitch(0, 0, JumpStop), StitchInfoFromBytes([3]byte{0x00, 0x00, 0xC3}))
	assert.Equal(t, EndStitch(), StitchInfoFromBytes([3]byte{0x00, 0x00, 0xF3}))
}

func TestStitchInformationToBytes_Roundtrip(t *testing.T) {
	info := MoveStitch(-12, 64, Regular)
	b, ok := info.ToBytes()
	assert.True(t, ok)
	assert.Equal(t, StitchInfoFromBytes(b), info)
}
