package hus

import "github.com/software-opal/embroidery-go/format"

// HusFormat is the registered format.PatternFormat for the .hus extension;
// it shares Reader with VipFormat (either magic is recognised) but writes
// with the HUS header layout.
type HusFormat struct{}

// NewHusFormat builds the HUS format descriptor.
func NewHusFormat() *HusFormat { return &HusFormat{} }

func (HusFormat) Name() string                        { return "hus" }
func (HusFormat) Extensions() []string                { return []string{"hus"} }
func (HusFormat) Reader() (format.PatternReader, bool) { return NewReader(), true }
func (HusFormat) Writer() (format.PatternWriter, bool) { return NewHusWriter(), true }

// VipFormat is the registered format.PatternFormat for the .vip extension.
type VipFormat struct{}

// NewVipFormat builds the VIP format descriptor.
func NewVipFormat() *VipFormat { return &VipFormat{} }

func (VipFormat) Name() string                        { return "vip" }
func (VipFormat) Extensions() []string                { return []string{"vip"} }
func (VipFormat) Reader() (format.PatternReader, bool) { return NewReader(), true }
func (VipFormat) Writer() (format.PatternWriter, bool) { return NewVipWriter(), true }
