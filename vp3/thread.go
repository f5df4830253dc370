package vp3

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/emberrors"
	"github.com/software-opal/embroidery-go/pattern"
)

// ThreadHeader is one VP3 color block's metadata, grounded on
// vp3/read/thread.rs's Vp3ThreadHeader.
type ThreadHeader struct {
	NextColorOffsetFromTopOfColor uint32
	XOffsetA, YOffsetA            int32
	Color                         pattern.Color
	ColorTable                    [][6]byte
	ThreadCode                    string
	ThreadName                    string
	ThreadManufacturer            string
	XOffsetB, YOffsetB            int32
	StitchBytes                   uint32
}

// ToThread builds the neutral Thread for this color block, stashing its
// raw color table as a hex-joined attribute (there is no neutral-model
// field for it), per to_thread's "color_table_hex" attribute.
func (h ThreadHeader) ToThread() pattern.Thread {
	t := pattern.NewThread(h.Color, h.ThreadName, h.ThreadCode)
	t = t.WithManufacturer(h.ThreadManufacturer)
	t.Attributes["color_table_hex"] = formatColorTableHex(h.ColorTable)
	return t
}

func formatColorTableHex(table [][6]byte) string {
	var out []byte
	for i, row := range table {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, b := range row {
			out = appendHexByte(out, b)
		}
	}
	return string(out)
}

const hexDigits = "0123456789ABCDEF"

func appendHexByte(out []byte, b byte) []byte {
	return append(out, hexDigits[b>>4], hexDigits[b&0x0F])
}

var threadMagicA = []byte{0x00, 0x05, 0x00}
var threadMagicB = []byte{0x00, 0x01, 0x00}

// ReadThreadHeader reads one color block's header, per
// vp3/read/thread.rs's read_thread_header.
func ReadThreadHeader(item io.Reader) (*ThreadHeader, error) {
	r := breader.New(item)
	if err := r.ReadMagic(threadMagicA); err != nil {
		return nil, err
	}
	h := &ThreadHeader{}
	var err error
	if h.NextColorOffsetFromTopOfColor, err = r.ReadUint32(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vp3: reading next_color_offset_from_top_of_color")
	}
	if h.XOffsetA, err = r.ReadInt32(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vp3: reading x_offset_a")
	}
	if h.YOffsetA, err = r.ReadInt32(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vp3: reading y_offset_a")
	}

	tableMultiplier, err := r.ReadUint8()
	if err != nil {
		return nil, breader.Context(err, "vp3: reading color table multiplier")
	}
	red, err := r.ReadUint8()
	if err != nil {
		return nil, breader.Context(err, "vp3: reading color.red")
	}
	green, err := r.ReadUint8()
	if err != nil {
		return nil, breader.Context(err, "vp3: reading color.green")
	}
	blue, err := r.ReadUint8()
	if err != nil {
		return nil, breader.Context(err, "vp3: reading color.blue")
	}
	h.Color = pattern.RGB(red, green, blue)

	h.ColorTable = make([][6]byte, tableMultiplier)
	for i := range h.ColorTable {
		if err := r.ReadExact(h.ColorTable[i][:]); err != nil {
			return nil, breader.Context(err, "vp3: reading color table entry %d", i)
		}
	}

	if h.ThreadCode, err = ReadASCIIStringField(r, "thread_code"); err != nil {
		return nil, err
	}
	if h.ThreadName, err = ReadASCIIStringField(r, "thread_name"); err != nil {
		return nil, err
	}
	if h.ThreadManufacturer, err = ReadASCIIStringField(r, "thread_manufacturer"); err != nil {
		return nil, err
	}
	if h.XOffsetB, err = r.ReadInt32(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vp3: reading x_offset_b")
	}
	if h.YOffsetB, err = r.ReadInt32(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vp3: reading y_offset_b")
	}
	if err := r.ReadMagic(threadMagicB); err != nil {
		return nil, err
	}
	if h.StitchBytes, err = r.ReadUint32(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vp3: reading stitch_bytes")
	}
	return h, nil
}

var stitchBlockMagic = []byte{0x0A, 0xF6, 0x00}

// ReadStitches decodes one color block's stitch body, per
// vp3/read/thread.rs's read_stitches. The declared stitch_bytes count
// covers the 3-byte block magic and the stitch records; one extra trailing
// byte follows them and is read but not counted, matching the original's
// `vec![0u8; stitch_bytes + 1]` read followed by a final lone 0x00 byte.
func ReadStitches(item io.Reader, h *ThreadHeader) ([]pattern.StitchGroup, error) {
	body := make([]byte, h.StitchBytes+1)
	if _, err := io.ReadFull(item, body); err != nil {
		return nil, emberrors.WrapStdRead(err)
	}
	r := breader.New(bytes.NewReader(body))
	if err := r.ReadMagic(stitchBlockMagic); err != nil {
		return nil, err
	}
	remaining := int(h.StitchBytes) - 3

	if h.StitchBytes%2 == 0 {
		return nil, emberrors.InvalidFormat("vp3: color block declared an even stitch_bytes count %d, expected odd", h.StitchBytes)
	}

	var stitchGroups []pattern.StitchGroup
	var stitches []pattern.Stitch
	cx, cy := h.XOffsetA, h.YOffsetA

	for remaining >= 2 {
		consumed, stitch, err := readStitch(r)
		if err != nil {
			return nil, breader.Context(err, "vp3: read failed with %d reported bytes remaining", remaining)
		}
		remaining -= consumed
		if remaining < 0 {
			return nil, emberrors.InvalidFormat("vp3: invalid final stitch consumed too many bytes")
		}

		switch stitch.kind {
		case stitchNormal:
			if len(stitches) == 0 {
				stitches = append(stitches, pattern.NewStitch(float64(cx)/1000, float64(cy)/1000))
			}
			cx += stitch.x
			cy += stitch.y
			stitches = append(stitches, pattern.NewStitch(float64(cx)/1000, float64(cy)/1000))
		case stitchJump:
			if len(stitches) != 0 {
				stitchGroups = append(stitchGroups, pattern.StitchGroup{Stitches: stitches, Trim: false, Cut: false})
				stitches = nil
			}
			cx += stitch.x
			cy += stitch.y
		case stitchSkip:
		}
	}
	if len(stitches) != 0 {
		stitchGroups = append(stitchGroups, pattern.StitchGroup{Stitches: stitches, Trim: false, Cut: false})
	}
	return stitchGroups, nil
}

type vp3StitchKind int

const (
	stitchNormal vp3StitchKind = iota
	stitchJump
	stitchSkip
)

type vp3Stitch struct {
	kind vp3StitchKind
	x, y int32
}

// readStitch ports read_stitch's 2-byte escape scheme (distances in
// 1/10mm, scaled here by 100 to 1/1000mm before ReadStitches divides by
// 1000 to land on the neutral model's millimeters).
func readStitch(r *breader.Reader) (int, vp3Stitch, error) {
	x, err := r.ReadInt8()
	if err != nil {
		return 0, vp3Stitch{}, err
	}
	y, err := r.ReadInt8()
	if err != nil {
		return 0, vp3Stitch{}, err
	}
	if x == -0x80 {
		switch y {
		case 0x00, 0x03:
			return 2, vp3Stitch{kind: stitchSkip}, nil
		case 0x01:
			ex, err := r.ReadInt16(binary.BigEndian)
			if err != nil {
				return 0, vp3Stitch{}, err
			}
			ey, err := r.ReadInt16(binary.BigEndian)
			if err != nil {
				return 0, vp3Stitch{}, err
			}
			trailer, err := r.ReadUint16(binary.BigEndian)
			if err != nil {
				return 0, vp3Stitch{}, err
			}
			if trailer != 0x8002 {
				return 0, vp3Stitch{}, emberrors.InvalidFormat("vp3: cannot parse jump stitch trailer value 0x%04X", trailer)
			}
			return 8, vp3Stitch{kind: stitchJump, x: int32(ex) * 100, y: int32(ey) * 100}, nil
		default:
			return 0, vp3Stitch{}, emberrors.InvalidFormat("vp3: cannot parse special stitch with Y value 0x%02X", uint8(y))
		}
	}
	return 2, vp3Stitch{kind: stitchNormal, x: int32(x) * 100, y: int32(y) * 100}, nil
}
