// Package vf3 implements the VF3 font-collection codec: a small header
// naming one character per offset into the file, followed by one VP3-style
// pattern per character.
//
// Grounded on original_source/formats/vp3/src/{common/header/vf3,vf3/read,
// vf3/read/pattern}.rs.
package vf3

import (
	"encoding/binary"
	"io"

	"github.com/software-opal/embroidery-go/breader"
	"github.com/software-opal/embroidery-go/vp3"
)

// CharacterOffset names one character's byte offset into the stream,
// relative to wherever the character records begin (immediately after
// Header's own fields).
type CharacterOffset struct {
	Char   rune
	Offset uint32
}

// Header is VF3's font-collection header, grounded on
// common/header/vf3.rs's Vf3Header/read_font_header.
type Header struct {
	FontName          string
	CharacterEncoding string
	CharacterOffsets  []CharacterOffset
}

var fontHeaderMagicA = []byte{
	0x00, 0x19, 0x00, 0x33, 0x42, 0x3E, 0x18, 0x02, 0xB3, 0x93, 0x48, 0x8F,
	0x52, 0x89, 0x51, 0xE3, 0x78, 0xBA, 0x9A, 0x00, 0x22, 0x00, 0x23,
}
var fontHeaderMagicB = []byte{0x78, 0x78, 0x50, 0x50, 0x01, 0x00}

// ReadHeader reads a VF3 font header.
//
// read_font_header's character loop destructures each
// `(character, offset)` pair from a pre-allocated `('\0', 0)` vector but
// only ever assigns `offset`, never `character` — every character name
// in the original is always '\0'. That can't be what a working font
// reader does (collection keys would all collide), so this port assigns
// the rune from the u16 code point actually read, which is otherwise
// decoded and then silently dropped in the original.
func ReadHeader(item io.Reader) (*Header, error) {
	r := breader.New(item)
	fontName, err := vp3.ReadWideStringField(r, "font_name")
	if err != nil {
		return nil, err
	}
	characterEncoding, err := vp3.ReadASCIIStringField(r, "character_encoding")
	if err != nil {
		return nil, err
	}
	if err := r.ReadMagic(fontHeaderMagicA); err != nil {
		return nil, err
	}

	characterCount, err := r.ReadUint16(binary.BigEndian)
	if err != nil {
		return nil, breader.Context(err, "vf3: reading character_count")
	}
	offsets := make([]CharacterOffset, characterCount)
	for i := range offsets {
		code, err := r.ReadUint16(binary.BigEndian)
		if err != nil {
			return nil, breader.Context(err, "vf3: reading character %d code", i)
		}
		offset, err := r.ReadUint32(binary.BigEndian)
		if err != nil {
			return nil, breader.Context(err, "vf3: reading character %d offset", i)
		}
		offsets[i] = CharacterOffset{Char: rune(code), Offset: offset}
	}

	if err := r.ReadMagic(fontHeaderMagicB); err != nil {
		return nil, err
	}

	if _, err := vp3.ReadWideStringField(r, "another_software_vendor_string"); err != nil {
		return nil, err
	}
	// number_of_threads is read by the original and never used; kept
	// here only to advance the stream to the first character record.
	if _, err := r.ReadUint16(binary.BigEndian); err != nil {
		return nil, breader.Context(err, "vf3: reading number_of_threads")
	}

	return &Header{
		FontName:          fontName,
		CharacterEncoding: characterEncoding,
		CharacterOffsets:  offsets,
	}, nil
}
