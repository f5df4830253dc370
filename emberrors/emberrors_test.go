package emberrors_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/emberrors"
)

func TestInvalidFormat_IsDetected(t *testing.T) {
	err := emberrors.InvalidFormat("magic bytes %x unrecognized", []byte{0x01})
	assert.True(t, emberrors.IsInvalidFormat(err))
	assert.False(t, emberrors.IsUnexpectedEOF(err))
}

func TestUnexpectedEOF_UnwrapsToCause(t *testing.T) {
	err := emberrors.UnexpectedEOF(io.ErrUnexpectedEOF, "reading stitch body")
	assert.True(t, emberrors.IsUnexpectedEOF(err))
	assert.Equal(t, io.ErrUnexpectedEOF, err.Unwrap())
}

func TestWithContext_AccumulatesDeepestFirst(t *testing.T) {
	err := emberrors.InvalidFormat("bad stitch")
	err = err.WithContext("decoding stitch group 2")
	err = err.WithContext("decoding color group 1")
	require.Equal(t, []string{"decoding stitch group 2", "decoding color group 1"}, err.Context())
	assert.Contains(t, err.Error(), "decoding stitch group 2\ndecoding color group 1")
}

func TestWrapStdRead_PanicsOnEOF(t *testing.T) {
	assert.Panics(t, func() {
		emberrors.WrapStdRead(io.EOF)
	})
}

type fakeStitch struct{ x, y float64 }

func (s fakeStitch) String() string { return "stitch" }

func TestUnsupportedStitch_Message(t *testing.T) {
	err := emberrors.UnsupportedStitch(fakeStitch{1, 2}, 5)
	assert.Contains(t, err.Error(), "index 5")
}
