package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/software-opal/embroidery-go/format"
	"github.com/software-opal/embroidery-go/pattern"
)

func TestPatternFormats_AllExtensionsUnique(t *testing.T) {
	seen := map[string]string{}
	for _, f := range patternFormats() {
		for _, ext := range f.Extensions() {
			if owner, ok := seen[ext]; ok {
				t.Fatalf("extension %q registered by both %s and %s", ext, owner, f.Name())
			}
			seen[ext] = f.Name()
		}
	}
}

func TestWriteAllOtherFormats_SkipsSourceFormat(t *testing.T) {
	formats := []format.PatternFormat{recordingFormat{name: "a", ext: "a"}, recordingFormat{name: "b", ext: "b"}}
	p := pattern.Pattern{}
	dir := t.TempDir() + "/design.a"
	err := writeAllOtherFormats(dir, p, "a", formats)
	require.NoError(t, err)
	assert.FileExists(t, dir+".b")
	assert.NoFileExists(t, dir+".a")
}

type recordingFormat struct {
	name, ext string
}

func (f recordingFormat) Name() string                         { return f.name }
func (f recordingFormat) Extensions() []string                 { return []string{f.ext} }
func (f recordingFormat) Reader() (format.PatternReader, bool)  { return nil, false }
func (f recordingFormat) Writer() (format.PatternWriter, bool)  { return recordingWriter{}, true }

type recordingWriter struct{}

func (recordingWriter) WritePattern(p pattern.Pattern, w io.Writer) error {
	_, err := w.Write([]byte("ok"))
	return err
}
