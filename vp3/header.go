package vp3

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/breader"
)

// Hoop carries VP3's hoop-bounds block, grounded field-for-field on
// vp3/read/header.rs's Vp3Hoop. Most fields' meanings are unconfirmed in
// the original (several are commented "Probably ..."); they are kept
// under the same names for traceability rather than renamed to a guess.
type Hoop struct {
	Right, Bottom, Left, Top int32
	UnknownA                 uint32
	UnknownB                 uint16
	BytesRemaining           uint32
	XOffset, YOffset         int32

	// Centered hoop dimensions.
	Right2, Left2, Bottom2, Top2 int32

	Width, Height int32
}

// Header is VP3's fixed-layout prefix, grounded on
// vp3/read/header.rs's Vp3Header/read_header.
type Header struct {
	SoftwareVendorString        string
	BytesRemaining              uint32
	FileCommentString           string
	Hoop                        Hoop
	AnotherSoftwareVendorString string
	NumberOfThreads             int
}

var magicPrefix = []byte("%vsm%\x00")

var headerMagicA = []byte{0x00, 0x02, 0x00}
var headerMagicB = []byte{
	0x00, 0x00, 0x64, 0x64, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
}

// headerMagicC is noted as [0x78, 0x78, 0x55, 0x55, 0x01, 0x00] in
// Embroidermodder, but the original's own testing found it to actually be
// this value — preserved as tested, not as documented elsewhere.
var headerMagicC = []byte{0x78, 0x78, 0x50, 0x50, 0x01, 0x00}

var hoopMagic = []byte{0x0C, 0x00, 0x01, 0x00, 0x03, 0x00}
var hoopMagicZero = []byte{0x00, 0x00, 0x00}

// ReadHeader reads and validates a VP3 Header. Unlike the byte-counted
// sections of HUS/JEF, VP3 declares its own remaining-byte count
// (bytesRemaining) partway through the stream; everything after it is
// read through an io.LimitReader bounded to that count, mirroring
// read_header's `ub_reader.take(bytes_remaining)`.
func ReadHeader(item io.Reader) (*Header, io.Reader, error) {
	br := breader.New(item)
	if err := br.ReadMagic(magicPrefix); err != nil {
		return nil, nil, err
	}

	softwareVendorString, err := ReadWideStringField(br, "software_vendor_string")
	if err != nil {
		return nil, nil, err
	}
	if err := br.ReadMagic(headerMagicA); err != nil {
		return nil, nil, err
	}
	bytesRemaining, err := br.ReadUint32(binary.BigEndian)
	if err != nil {
		return nil, nil, breader.Context(err, "vp3: reading bytes_remaining")
	}

	limited := io.LimitReader(item, int64(bytesRemaining))
	lbr := breader.New(limited)

	fileCommentString, err := ReadWideStringField(lbr, "file_comment_string")
	if err != nil {
		return nil, nil, err
	}

	hoop, err := readHoop(lbr)
	if err != nil {
		return nil, nil, err
	}

	if err := lbr.ReadMagic(headerMagicB); err != nil {
		return nil, nil, err
	}
	if err := lbr.ReadMagic(headerMagicC); err != nil {
		return nil, nil, err
	}

	anotherSoftwareVendorString, err := ReadWideStringField(lbr, "another_software_vendor_string")
	if err != nil {
		return nil, nil, err
	}
	numberOfThreads, err := lbr.ReadUint16(binary.BigEndian)
	if err != nil {
		return nil, nil, breader.Context(err, "vp3: reading number_of_threads")
	}

	return &Header{
		SoftwareVendorString:        softwareVendorString,
		BytesRemaining:              bytesRemaining,
		FileCommentString:           fileCommentString,
		Hoop:                        hoop,
		AnotherSoftwareVendorString: anotherSoftwareVendorString,
		NumberOfThreads:             int(numberOfThreads),
	}, limited, nil
}

func readHoop(r *breader.Reader) (Hoop, error) {
	var h Hoop
	var err error
	if h.Left, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.left")
	}
	if h.Top, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.top")
	}
	if h.Right, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.right")
	}
	if h.Bottom, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.bottom")
	}
	// Probably number of stitches.
	if h.UnknownA, err = r.ReadUint32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.unknown_a")
	}
	// Probably number of colors (read: threads).
	if h.UnknownB, err = r.ReadUint16(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.unknown_b")
	}
	if err := r.ReadMagic(hoopMagic); err != nil {
		return h, err
	}
	if h.BytesRemaining, err = r.ReadUint32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.bytes_remaining")
	}
	if h.YOffset, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.y_offset")
	}
	if h.XOffset, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.x_offset")
	}
	if err := r.ReadMagic(hoopMagicZero); err != nil {
		return h, err
	}
	if h.Right2, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.right2")
	}
	if h.Left2, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.left2")
	}
	if h.Bottom2, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.bottom2")
	}
	if h.Top2, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.top2")
	}
	if h.Width, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.width")
	}
	if h.Height, err = r.ReadInt32(binary.BigEndian); err != nil {
		return h, breader.Context(err, "vp3: reading hoop.height")
	}
	return h, nil
}
