// Package svg writes a Pattern as an SVG document: one <g> per color group,
// a <circle> per stitch, and a <path> of straight segments (a polyline)
// tracing each stitch group.
// Colors with no assigned thread get an evenly-spaced hue from an
// auto-generated palette.
//
// Grounded on original_source/formats/svg/src/write.rs. The original builds
// its color ramp with the `palette` crate's Lch->Srgb conversion and its
// path data with the `svgtypes` crate's PathBuilder; neither has an
// equivalent anywhere in the retrieved pack, so both are replaced with
// direct, dependency-free math and string building — the standard-library
// exception recorded in DESIGN.md for this package, matching the original's
// own direct `writeln!` calls otherwise.
package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/software-opal/embroidery-go/format"
	"github.com/software-opal/embroidery-go/pattern"
)

const (
	lineWidth      = 0.2
	stitchDiameter = 0.4
)

// Writer renders a Pattern as SVG, grounded on write.rs's SvgPatternWriter.
type Writer struct{}

// NewWriter builds an SVG Writer.
func NewWriter() *Writer { return &Writer{} }

// WritePattern encodes p as a complete SVG document.
func (w *Writer) WritePattern(p pattern.Pattern, out io.Writer) error {
	minX, minY, maxX, maxY := p.GetBounds()
	width := maxX - minX
	height := maxY - minY

	if _, err := fmt.Fprintln(out, "<?xml version='1.0' encoding='UTF-8' standalone='no'?>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "<svg"); err != nil {
		return err
	}
	lines := []string{
		` xmlns:svg="http://www.w3.org/2000/svg"`,
		` xmlns="http://www.w3.org/2000/svg"`,
		` version="1.1"`,
		` preserveAspectRatio="xMidYMid meet"`,
		` shape-rendering='geometricPrecision'`,
		` text-rendering='geometricPrecision'`,
		` image-rendering='optimizeQuality'`,
		fmt.Sprintf(` width="%vmm"`, width+20),
		fmt.Sprintf(` height="%vmm"`, height+20),
		fmt.Sprintf(` viewBox="%v %v %v %v"`, minX-10, -10.0, width+20, height+20),
		">",
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}

	totalColors := 0
	for _, cg := range p.ColorGroups {
		if !cg.HasThread {
			totalColors++
		}
	}
	usedRandomColors := 0

	for _, cg := range p.ColorGroups {
		var color pattern.Color
		if cg.HasThread {
			color = cg.Thread.Color
		} else {
			color = generateColor(usedRandomColors, totalColors)
			usedRandomColors++
		}

		groupLines := []string{
			"    <g",
			"     fill='none'",
			fmt.Sprintf("     stroke='%v'", color),
			fmt.Sprintf("     stroke-width='%v'", lineWidth),
			"     stroke-linecap='round'",
			"     stroke-linejoin='round'",
			"    >",
		}
		for _, l := range groupLines {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return err
			}
		}

		for _, sg := range cg.StitchGroups {
			if err := writeStitchGroup(out, sg, color, maxY); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(out, "    </g>"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out, "</svg>")
	return err
}

func writeStitchGroup(out io.Writer, sg pattern.StitchGroup, color pattern.Color, maxY float64) error {
	if _, err := fmt.Fprintf(out, "      <g stroke='none' fill='%v' class='emb_ignore'>\n", color); err != nil {
		return err
	}

	var path strings.Builder
	for i, stitch := range sg.Stitches {
		flippedY := maxY - stitch.Y
		if i == 0 {
			fmt.Fprintf(&path, "M%v,%v", stitch.X, flippedY)
		} else {
			fmt.Fprintf(&path, " L%v,%v", stitch.X, flippedY)
		}
		if _, err := fmt.Fprintf(out, "        <circle cx='%v' cy='%v' r='%v' />\n", stitch.X, flippedY, stitchDiameter/2); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, "      </g>"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "      <path d='%s' />\n", path.String())
	return err
}

// generateColor picks the idx-th of total evenly-spaced hues around the
// color wheel at fixed lightness/saturation, mirroring write.rs's
// Lch::new(50., 100., idx * 360 / total) but through a plain HSL->RGB
// conversion rather than the palette crate's Lch color space (there is no
// Lab/Lch conversion anywhere in the retrieved pack).
func generateColor(idx, total int) pattern.Color {
	if total <= 0 {
		total = 1
	}
	hue := float64(idx) * 360.0 / float64(total)
	r, g, b := hslToRGB(hue, 1.0, 0.5)
	return pattern.RGB(r, g, b)
}

func hslToRGB(hue, saturation, lightness float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*lightness-1)) * saturation
	hPrime := hue / 60
	x := c * (1 - math.Abs(math.Mod(hPrime, 2)-1))
	var r1, g1, b1 float64
	switch {
	case hPrime < 1:
		r1, g1, b1 = c, x, 0
	case hPrime < 2:
		r1, g1, b1 = x, c, 0
	case hPrime < 3:
		r1, g1, b1 = 0, c, x
	case hPrime < 4:
		r1, g1, b1 = 0, x, c
	case hPrime < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	m := lightness - c/2
	return toByte(r1 + m), toByte(g1 + m), toByte(b1 + m)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Format registers the SVG writer. It has no reader, matching write.rs's
// SvgPatternFormat::reader() returning None.
type Format struct {
	writer *Writer
}

// NewFormat builds the SVG format.PatternFormat.
func NewFormat() *Format { return &Format{writer: NewWriter()} }

func (f *Format) Name() string { return "svg" }

func (f *Format) Extensions() []string { return []string{"svg"} }

func (f *Format) Reader() (format.PatternReader, bool) { return nil, false }

func (f *Format) Writer() (format.PatternWriter, bool) { return f.writer, true }
