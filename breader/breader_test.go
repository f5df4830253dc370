package breader_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/emberrors"
)

func TestReadExact_ShortReadIsUnexpectedEOF(t *testing.T) {
	r := breader.New(bytes.NewReader([]byte{0x01, 0x02}))
	buf := make([]byte, 4)
	err := r.ReadExact(buf)
	require.Error(t, err)
	assert.True(t, emberrors.IsUnexpectedEOF(err))
}

func TestReadMagic(t *testing.T) {
	r := breader.New(bytes.NewReader([]byte{0x4c, 0x41, 0x3a}))
	require.NoError(t, r.ReadMagic([]byte{0x4c, 0x41, 0x3a}))

	r2 := breader.New(bytes.NewReader([]byte{0x00, 0x00, 0x00}))
	err := r2.ReadMagic([]byte{0x4c, 0x41, 0x3a})
	require.Error(t, err)
	assert.True(t, emberrors.IsInvalidFormat(err))
}

func TestReadIntegers_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := breader.NewWriter(&buf)
	require.NoError(t, w.WriteUint32(binary.LittleEndian, 0xDEADBEEF))
	require.NoError(t, w.WriteInt16(binary.BigEndian, -121))
	require.NoError(t, w.WriteUint8(0x7F))

	r := breader.New(&buf)
	u32, err := r.ReadUint32(binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	i16, err := r.ReadInt16(binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, int16(-121), i16)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7F), u8)
}

func TestContext_WrapsReadError(t *testing.T) {
	base := emberrors.InvalidFormat("bad magic")
	wrapped := breader.Context(base, "reading header field %s", "title")
	re, ok := wrapped.(*emberrors.ReadError)
	require.True(t, ok)
	assert.Equal(t, []string{"reading header field title"}, re.Context())
}

func TestContext_NilPassthrough(t *testing.T) {
	assert.NoError(t, breader.Context(nil, "unused"))
}
