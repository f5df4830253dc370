package pattern

// Thread describes the physical thread a ColorGroup is stitched with. Name
// and Code are vendor-assigned identifiers (e.g. a Madeira code); Attributes
// carries opaque key-value pairs a format wants to round-trip but that the
// neutral model has no dedicated field for (e.g. VP3's raw hex color table).
type Thread struct {
	Color           Color
	Name            string
	Code            string
	Manufacturer    string
	HasManufacturer bool
	Attributes      map[string]string
}

// NewThread builds a Thread with no manufacturer and an empty attribute map.
func NewThread(color Color, name, code string) Thread {
	return Thread{
		Color:      color,
		Name:       name,
		Code:       code,
		Attributes: map[string]string{},
	}
}

// WithManufacturer returns a copy of t with Manufacturer set.
func (t Thread) WithManufacturer(manufacturer string) Thread {
	t.Manufacturer = manufacturer
	t.HasManufacturer = true
	return t
}
