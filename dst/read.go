package dst

import (
	"bytes"
	"io"

	"v.io/x/lib/vlog"

	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// Reader decodes Tajima DST streams into the neutral pattern model.
type Reader struct{}

// NewReader builds a DST Reader.
func NewReader() *Reader { return &Reader{} }

// IsLoadable reports whether item's header window can be read. DST has no
// magic number and readHeader rejects no content, so every readable stream
// is reported loadable; only an I/O error other than a short read fails.
func (r *Reader) IsLoadable(item io.Reader) (bool, error) {
	_, err := readHeader(item)
	if err != nil {
		if emberrors.IsInvalidFormat(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadPattern decodes a full DST stream into a Pattern.
func (r *Reader) ReadPattern(item io.Reader) (pattern.Pattern, error) {
	attrs, err := readHeader(item)
	if err != nil {
		return pattern.Pattern{}, err
	}
	data, err := io.ReadAll(item)
	if err != nil {
		return pattern.Pattern{}, emberrors.WrapStdRead(err)
	}
	colorGroups := readStitches(data)
	title, attrs := extractTitle(attrs)
	return pattern.Pattern{Name: title, Attributes: attrs, ColorGroups: colorGroups}, nil
}

type irregular struct {
	x, y int32
	typ  StitchType
}

// readStitches decodes the 3-byte stitch records following the header into
// color groups, grounded on read.rs's read_stitches: regular stitches
// accumulate into the current stitch group; a run of jump/stop records
// breaks the group (and, if any record in the run was a stop, the color
// group) before resuming with the next regular stitch.
func readStitches(data []byte) []pattern.ColorGroup {
	var colorGroups []pattern.ColorGroup
	var stitchGroups []pattern.StitchGroup
	var stitches []pattern.Stitch
	var lastIrregulars []irregular
	var cx, cy int32

	r := bytes.NewReader(data)
	for {
		var raw [3]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			break
		}
		info := StitchInfoFromBytes(raw)
		if info.IsEnd {
			break
		}
		if !info.Type.IsRegular() {
			if len(lastIrregulars) == 0 {
				lastIrregulars = append(lastIrregulars, irregular{cx, cy, Regular})
			}
			cx += int32(info.DX)
			cy += int32(info.DY)
			vlog.VI(2).Infof("Irregular (%d, %d) %s", cx, cy, info.Type)
			lastIrregulars = append(lastIrregulars, irregular{cx, cy, info.Type})
			continue
		}

		if len(lastIrregulars) != 0 {
			if len(stitches) != 0 {
				stitchGroups = append(stitchGroups, pattern.StitchGroup{
					Stitches: stitches,
					Trim:     true,
					Cut:      determineCut(lastIrregulars),
				})
				stitches = nil
			}
			if len(stitchGroups) != 0 && anyStop(lastIrregulars) {
				colorGroups = append(colorGroups, pattern.ColorGroup{StitchGroups: stitchGroups})
				stitchGroups = nil
			}
			lastIrregulars = nil
			stitches = append(stitches, pattern.NewStitch(float64(cx)/10, float64(cy)/10))
		}

		cx += int32(info.DX)
		cy += int32(info.DY)
		stitches = append(stitches, pattern.NewStitch(float64(cx)/10, float64(cy)/10))
	}

	if len(stitches) != 0 {
		stitchGroups = append(stitchGroups, pattern.StitchGroup{
			Stitches: stitches,
			Trim:     true,
			Cut:      determineCut(lastIrregulars),
		})
	}
	if len(stitchGroups) != 0 {
		colorGroups = append(colorGroups, pattern.ColorGroup{StitchGroups: stitchGroups})
	}
	return colorGroups
}

func anyStop(irregulars []irregular) bool {
	for _, ir := range irregulars {
		if ir.typ.IsStop() {
			return true
		}
	}
	return false
}

// determineCut implements the original's within-one-unit back-and-forth
// heuristic: a trailing group is a "cut" if any two positions visited
// during the jump run land within one unit of each other on both axes.
func determineCut(stitches []irregular) bool {
	for i := 0; i < len(stitches); i++ {
		fx, fy := stitches[i].x, stitches[i].y
		for _, s := range stitches[i+1:] {
			if fx-1 <= s.x && s.x <= fx+1 && fy-1 <= s.y && s.y <= fy+1 {
				return true
			}
		}
	}
	return false
}
