// Command embroidery converts embroidery pattern files between formats.
//
// For each path given on the command line, it probes every registered
// pattern and collection format for one that can decode the file, then
// writes the decoded pattern through every registered pattern writer whose
// extension differs from the file's own, naming each output "<path>.<ext>".
//
// Grounded on original_source/src/main.rs's per-file loop and
// original_source/src/formats.rs's format list, adapted to this teacher's
// stdlib-flag cmd/bio-fusion style entrypoint and v.io/x/lib/vlog logging
// in place of the original's simplelog.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/csv"
	"github.com/software-opal/embroidery-go/dst"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/format"
	"github.com/software-opal/embroidery-go/hus"
	"github.com/software-opal/embroidery-go/jef"
	"github.com/software-opal/embroidery-go/pattern"
	"github.com/software-opal/embroidery-go/svg"
	"github.com/software-opal/embroidery-go/vp3"
	"github.com/software-opal/embroidery-go/vp3/vf3"
)

// patternFormats lists every pattern format this command knows about, in
// probe order, mirroring formats.rs's get_all() (minus Vf3, which is a
// CollectionFormat).
func patternFormats() []format.PatternFormat {
	return []format.PatternFormat{
		csv.NewFormat(),
		dst.NewFormat(),
		hus.NewHusFormat(),
		svg.NewFormat(),
		hus.NewVipFormat(),
		jef.NewFormat(),
		vp3.NewFormat(),
	}
}

func collectionFormats() []format.CollectionFormat {
	return []format.CollectionFormat{vf3.NewFormat()}
}

func main() {
	flag.Parse()
	formats := patternFormats()
	collections := collectionFormats()
	patternRegistry := format.NewPatternRegistry(formats...)
	collectionRegistry := format.NewCollectionRegistry(collections...)

	status := 0
	for _, path := range flag.Args() {
		if err := processFile(path, formats, patternRegistry, collectionRegistry); err != nil {
			vlog.Errorf("%s: %v", path, err)
			status = 1
		}
	}
	os.Exit(status)
}

func processFile(path string, formats []format.PatternFormat, patternRegistry *format.PatternRegistry, collectionRegistry *format.CollectionRegistry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	p, sourceName, err := patternRegistry.ReadPattern(bytes.NewReader(data))
	if err == nil {
		vlog.VI(1).Infof("%s: decoded as %s, %d color groups", path, sourceName, len(p.ColorGroups))
		return writeAllOtherFormats(path, p, sourceName, formats)
	}
	if !emberrors.IsInvalidFormat(err) {
		return err
	}

	c, collectionName, cErr := collectionRegistry.ReadCollection(bytes.NewReader(data))
	if cErr != nil {
		return fmt.Errorf("no registered format could read %s: %w", path, err)
	}
	vlog.VI(1).Infof("%s: decoded as %s collection, %d patterns", path, collectionName, len(c.Patterns))
	// No CollectionWriter is registered anywhere in this module (VF3 is
	// read-only), so there is nothing further to write out.
	return nil
}

// writeAllOtherFormats writes p through every registered writer whose
// extension differs from path's own extension, naming each output
// "<path>.<ext>", per main.rs's
// `path.with_file_name(format!("{}.{}", file_name, ext))`.
func writeAllOtherFormats(path string, p pattern.Pattern, sourceName string, formats []format.PatternFormat) error {
	srcExt := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, f := range formats {
		writer, ok := f.Writer()
		if !ok {
			continue
		}
		exts := f.Extensions()
		if len(exts) == 0 || strings.EqualFold(exts[0], srcExt) {
			continue
		}
		outPath := fmt.Sprintf("%s.%s", path, exts[0])
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		err = writer.WritePattern(p, out)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		vlog.VI(1).Infof("%s: wrote %s", path, outPath)
	}
	return nil
}
