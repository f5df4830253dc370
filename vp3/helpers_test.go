package vp3

import (
	"bytes"

	"github.com/software-opal/embroidery-go/breader"
)

func newTestReader(data []byte) *breader.Reader {
	return breader.New(bytes.NewReader(data))
}
