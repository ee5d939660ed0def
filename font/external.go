// ahas/pdf - a library for creating PDF documents
// Copyright (C) 2026  The ahas/pdf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package font

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/ahas/pdf"
)

// External is an outline font loaded from raw font bytes.  It embeds as a
// composite (Type0/CIDFontType2) font carrying the complete font program,
// a width table, a font descriptor and a ToUnicode reverse mapping.
//
// Two External fonts are considered the same font if and only if their font
// programs are byte-for-byte identical; the face name plays no part in
// identity.
type External struct {
	// VerticalWriting selects Identity-V encoding and vertical metrics
	// (W2/DW2) instead of the horizontal defaults.
	VerticalWriting bool

	faceName string
	data     []byte
	info     *sfnt.Font
	cmap     sfntcmap.Subtable
}

// NewExternal reads an outline font from r.  The font program is parsed
// immediately; malformed or unsupported fonts are rejected here rather than
// at save time.
func NewExternal(r io.Reader) (*External, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read font program: %w", err)
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font program: %w", err)
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("font has no usable character map: %w", err)
	}
	return &External{
		data: data,
		info: info,
		cmap: subtable,
	}, nil
}

// SetFaceName sets the name used for the font in the PDF file.  The
// document assigns a face name when the font is added; a font embedded
// without one falls back to the font program's PostScript name.
func (e *External) SetFaceName(name string) {
	e.faceName = name
}

// LogicalName implements the [Font] interface.
func (e *External) LogicalName() string {
	if e.faceName == "" {
		return e.info.PostScriptName()
	}
	return e.faceName
}

// Equal reports whether both fonts carry the same font program.
func (e *External) Equal(other *External) bool {
	return bytes.Equal(e.data, other.data)
}

// ResourceCategory implements the [Font] interface.
func (e *External) ResourceCategory() pdf.Name {
	return "Font"
}

// glyphRecord holds the data recorded for one glyph during the code point
// scan.  Width and height are in unscaled font units.
type glyphRecord struct {
	unicode rune
	width   int
	height  int
}

// glyphTable is the result of scanning the font's 16-bit code point range.
type glyphTable struct {
	gids map[glyph.ID]glyphRecord

	// sorted holds the keys of gids in ascending order.
	sorted []glyph.ID

	maxHeight  int
	totalWidth int
}

// scanGlyphs queries the font for every code point in [0x0000, 0xFFFF] and
// records glyph ID, code point, advance width and vertical extent for each
// resolved glyph.  Glyph 0 is pre-seeded with a neutral entry, so the CID
// ranges always have a defined base.
func (e *External) scanGlyphs() *glyphTable {
	t := &glyphTable{
		gids: map[glyph.ID]glyphRecord{
			0: {unicode: 0, width: 1000, height: 1000},
		},
	}

	bboxes := e.info.GlyphBBoxes()
	descent := int(e.info.Descent)

	for r := rune(0); r <= 0xFFFF; r++ {
		gid := e.cmap.Lookup(r)
		if gid == 0 {
			continue
		}

		w := int(e.info.GlyphWidth(gid))

		// Glyphs without an outline still have a horizontal advance.
		h := 1000
		if int(gid) < len(bboxes) {
			if b := bboxes[gid]; b != (funit.Rect16{}) {
				h = int(b.URy) - int(b.LLy) - descent
			}
		}

		if h > t.maxHeight {
			t.maxHeight = h
		}
		t.totalWidth += w

		t.gids[gid] = glyphRecord{unicode: r, width: w, height: h}
	}

	t.sorted = make([]glyph.ID, 0, len(t.gids))
	for gid := range t.gids {
		t.sorted = append(t.sorted, gid)
	}
	sort.Slice(t.sorted, func(i, j int) bool {
		return t.sorted[i] < t.sorted[j]
	})

	return t
}

// EmbedResource builds the composite font object graph fragment: the font
// program stream (uncompressed, as required for font files), the ToUnicode
// stream, the font descriptor and the CIDFontType2 descendant, all hanging
// off a Type0 font dictionary.
func (e *External) EmbedResource(f *pdf.File) (pdf.Reference, error) {
	faceName := e.LogicalName()
	t := e.scanGlyphs()

	fontFileRef := f.AddStream(pdf.Dict{
		"Length1": pdf.Integer(len(e.data)),
	}, e.data, false)

	toUnicode := generateToUnicode(faceName, toUnicodeBlocks(t))
	toUnicodeRef := f.AddStream(nil, toUnicode, true)

	descriptor := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(faceName),
		"Ascent":      pdf.Integer(int(e.info.Ascent)),
		"Descent":     pdf.Integer(int(e.info.Descent)),
		"CapHeight":   pdf.Integer(int(e.info.Ascent)),
		"ItalicAngle": pdf.Integer(0),
		"Flags":       pdf.Integer(32),
		"StemV":       pdf.Integer(80),
		"FontFile2":   fontFileRef,
		// Degenerate but viewer-compatible: some viewers insist on a
		// FontBBox even for CID fonts.
		"FontBBox": pdf.Array{
			pdf.Integer(0),
			pdf.Integer(t.maxHeight),
			pdf.Integer(t.totalWidth),
			pdf.Integer(t.maxHeight),
		},
	}
	descriptorRef := f.AddObject(descriptor)

	wKey, dwKey := pdf.Name("W"), pdf.Name("DW")
	encoding := pdf.Name("Identity-H")
	if e.VerticalWriting {
		wKey, dwKey = "W2", "DW2"
		encoding = "Identity-V"
	}

	descendant := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("CIDFontType2"),
		"BaseFont": pdf.Name(faceName),
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String("Adobe"),
			"Ordering":   pdf.String("Identity"),
			"Supplement": pdf.Integer(0),
		},
		wKey:             encodeWidths(t, e.info.UnitsPerEm),
		dwKey:            pdf.Integer(1000),
		"FontDescriptor": descriptorRef,
	}

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(faceName),
		"Encoding":        encoding,
		"DescendantFonts": pdf.Array{descendant},
		"ToUnicode":       toUnicodeRef,
	}
	return f.AddObject(fontDict), nil
}

// Encode converts text to big-endian 16-bit glyph IDs, the character codes
// of the Identity encoding.  Characters without a glyph map to glyph 0.
func (e *External) Encode(text string) pdf.HexString {
	buf := make([]byte, 0, 2*len(text))
	for _, r := range text {
		gid := e.cmap.Lookup(r)
		buf = append(buf, byte(gid>>8), byte(gid))
	}
	return pdf.HexString(buf)
}
