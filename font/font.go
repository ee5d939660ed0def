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

// Package font implements font embedding for PDF documents.
//
// Two kinds of fonts are supported: the 14 standard PostScript fonts, which
// every PDF viewer provides and which need no font program in the file, and
// external outline fonts, which are embedded as composite (Type0/
// CIDFontType2) fonts with the full glyph repertoire of the font program.
package font

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/ahas/pdf"
)

// Font is a font which can be embedded into a PDF document.
// The implementations are [Builtin] and [*External].
type Font interface {
	// ResourceCategory returns "Font".
	ResourceCategory() pdf.Name

	// EmbedResource inserts the font's object graph fragment into f and
	// returns a reference to the font dictionary.
	EmbedResource(f *pdf.File) (pdf.Reference, error)

	// LogicalName returns the name which identifies the font in the
	// document-wide font table: the PostScript name for builtin fonts, the
	// generated face name for external fonts.
	LogicalName() string

	// Encode converts text to the character codes used in content streams.
	Encode(text string) pdf.HexString
}

// Builtin represents one of the 14 standard PostScript fonts.
type Builtin string

// The 14 standard PostScript fonts.
const (
	Courier              Builtin = "Courier"
	CourierBold          Builtin = "Courier-Bold"
	CourierBoldOblique   Builtin = "Courier-BoldOblique"
	CourierOblique       Builtin = "Courier-Oblique"
	Helvetica            Builtin = "Helvetica"
	HelveticaBold        Builtin = "Helvetica-Bold"
	HelveticaBoldOblique Builtin = "Helvetica-BoldOblique"
	HelveticaOblique     Builtin = "Helvetica-Oblique"
	Symbol               Builtin = "Symbol"
	TimesBold            Builtin = "Times-Bold"
	TimesBoldItalic      Builtin = "Times-BoldItalic"
	TimesItalic          Builtin = "Times-Italic"
	TimesRoman           Builtin = "Times-Roman"
	ZapfDingbats         Builtin = "ZapfDingbats"
)

// ResourceCategory implements the [Font] interface.
func (b Builtin) ResourceCategory() pdf.Name {
	return "Font"
}

// LogicalName implements the [Font] interface.
func (b Builtin) LogicalName() string {
	return string(b)
}

// EmbedResource adds the font dictionary for the builtin font to the object
// graph.  No font program is embedded.
func (b Builtin) EmbedResource(f *pdf.File) (pdf.Reference, error) {
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(b),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	return f.AddObject(dict), nil
}

// Encode converts text to WinAnsi (Windows-1252) bytes.  Characters outside
// the WinAnsi repertoire are dropped, so that a document using a builtin
// font still saves when the text contains the odd unsupported character.
func (b Builtin) Encode(text string) pdf.HexString {
	buf := make([]byte, 0, len(text))
	for _, r := range text {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			continue
		}
		buf = append(buf, c)
	}
	return pdf.HexString(buf)
}
