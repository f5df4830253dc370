package jef

// hoop size codes, grounded on original_source/formats/jef/src/hoops.rs.
const (
	hoopCode110x110 = 0
	hoopCode50x50   = 1
	hoopCode140x200 = 2
	hoopCode126x110 = 3
	hoopCode200x200 = 4
)

// Hoop identifies one of JEF's known embroidery hoop sizes, or an unknown
// code carried through opaquely.
type Hoop struct {
	known bool
	name  string
	code  uint32
	w, h  float64
}

// HoopFromCode decodes a header's raw hoop code, per hoops.rs's
// JefHoop::from_byte. That function maps code 3 (126x110) to the
// Hoop140x200 variant and code 2 (140x200) to Hoop126x110, which looks like
// a transposed pair. Preserved as observed (DESIGN.md Open Question decision #3): this
// is a compatibility decision, not an endorsement that the mapping is
// correct.
func HoopFromCode(code uint32) Hoop {
	switch code {
	case hoopCode50x50:
		return Hoop{known: true, name: "50x50", code: hoopCode50x50, w: 50, h: 50}
	case hoopCode110x110:
		return Hoop{known: true, name: "110x110", code: hoopCode110x110, w: 110, h: 110}
	case hoopCode126x110:
		return Hoop{known: true, name: "140x200", code: hoopCode126x110, w: 140, h: 200}
	case hoopCode140x200:
		return Hoop{known: true, name: "126x110", code: hoopCode140x200, w: 126, h: 110}
	case hoopCode200x200:
		return Hoop{known: true, name: "200x200", code: hoopCode200x200, w: 200, h: 200}
	default:
		return Hoop{known: false, code: code}
	}
}

// Code returns the raw hoop code this Hoop was decoded from (or should be
// encoded as), the inverse of HoopFromCode.
func (h Hoop) Code() uint32 { return h.code }

// Size returns the hoop's (width, height) in millimeters and true, or
// (0, 0, false) for an unrecognised code.
func (h Hoop) Size() (width, height float64, ok bool) {
	if !h.known {
		return 0, 0, false
	}
	return h.w, h.h, true
}

func (h Hoop) String() string {
	if !h.known {
		return "unknown hoop"
	}
	return h.name
}
