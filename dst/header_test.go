package dst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/software-opal/embroidery-go/pattern"
)

func TestReadHeaderName(t *testing.T) {
	c := &headerCursor{data: []byte("ab")}
	_, state := readHeaderName(c)
	assert.Equal(t, parseExhausted, state)

	c = &headerCursor{data: []byte("ab:d")}
	name, state := readHeaderName(c)
	assert.Equal(t, parseSome, state)
	assert.Equal(t, [2]byte{'a', 'b'}, name)
	assert.Equal(t, byte('d'), c.data[c.pos])

	c = &headerCursor{data: []byte("ab*d")}
	name, state = readHeaderName(c)
	assert.Equal(t, parseSome, state)
	assert.Equal(t, [2]byte{'a', 'b'}, name)

	c = &headerCursor{data: []byte("abc\rd")}
	_, state = readHeaderName(c)
	assert.Equal(t, parseSkip, state)
}

func TestReadHeaderContent(t *testing.T) {
	c := &headerCursor{data: []byte("")}
	_, state := readHeaderContent(c)
	assert.Equal(t, parseExhausted, state)

	c = &headerCursor{data: []byte("\r")}
	content, state := readHeaderContent(c)
	assert.Equal(t, parseSome, state)
	assert.Equal(t, []byte{}, content)

	c = &headerCursor{data: []byte("ab")}
	content, state = readHeaderContent(c)
	assert.Equal(t, parseSome, state)
	assert.Equal(t, []byte("ab"), content)

	c = &headerCursor{data: []byte("abc\rd")}
	content, state = readHeaderContent(c)
	assert.Equal(t, parseSome, state)
	assert.Equal(t, []byte("abc"), content)
	assert.Equal(t, byte('d'), c.data[c.pos])
}

var basicHeaderSample = []byte("LA:crown FS 40     \rST:   4562\rCO:  7\r+X:  362\r" +
	"-X:  357\r+Y:  240\r-Y:  267\rAX:+   15\rAY:-   24\r" +
	"MX:+    0\rMY:+    0\rPD:******\r\x1a                ")

func TestReadDSTHeader(t *testing.T) {
	attrs := readDSTHeader(basicHeaderSample)
	assert.Equal(t, []pattern.PatternAttribute{pattern.Title("crown FS 40")}, attrs)
}
