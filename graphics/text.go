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

package graphics

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/ahas/pdf"
	"github.com/ahas/pdf/font"
	"github.com/ahas/pdf/internal/float"
	"github.com/ahas/pdf/resource"
)

// BeginTextSection starts a text object.  Callers must end the section
// with [Layer.EndTextSection].
//
// This implements the PDF graphics operator "BT".
func (l *Layer) BeginTextSection() {
	l.writeln("BT")
}

// EndTextSection ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (l *Layer) EndTextSection() {
	l.writeln("ET")
}

// SetFont selects a registered font for subsequent text, at the given size
// in points.
//
// This implements the PDF graphics operator "Tf".
func (l *Layer) SetFont(r *resource.Registered[font.Font], size float64) {
	l.writeName(r.Name())
	l.writeln(num(size), "Tf")
}

// SetTextCursor moves the text cursor relative to the start of the current
// line.
//
// This implements the PDF graphics operator "Td".
func (l *Layer) SetTextCursor(x, y pdf.Mm) {
	l.writeln(coord(x.Pt()), coord(y.Pt()), "Td")
}

// SetLineHeight sets the distance between baselines, in points.
//
// This implements the PDF graphics operator "TL".
func (l *Layer) SetLineHeight(height float64) {
	l.writeln(num(height), "TL")
}

// SetCharacterSpacing sets the additional spacing between glyphs, in
// points.
//
// This implements the PDF graphics operator "Tc".
func (l *Layer) SetCharacterSpacing(spacing float64) {
	l.writeln(num(spacing), "Tc")
}

// SetWordSpacing sets the additional spacing applied at space characters,
// in points.
//
// This implements the PDF graphics operator "Tw".
func (l *Layer) SetWordSpacing(spacing float64) {
	l.writeln(num(spacing), "Tw")
}

// SetTextScaling sets the horizontal glyph scaling, in percent.
//
// This implements the PDF graphics operator "Tz".
func (l *Layer) SetTextScaling(percent float64) {
	l.writeln(num(percent), "Tz")
}

// SetTextRise moves the baseline up or down, in points.
//
// This implements the PDF graphics operator "Ts".
func (l *Layer) SetTextRise(rise float64) {
	l.writeln(num(rise), "Ts")
}

// TextRenderingMode selects how glyphs are painted.
type TextRenderingMode int

const (
	TextFill TextRenderingMode = iota
	TextStroke
	TextFillStroke
	TextInvisible
	TextFillClip
	TextStrokeClip
	TextFillStrokeClip
	TextClip
)

// SetTextRenderingMode sets the glyph painting mode.
//
// This implements the PDF graphics operator "Tr".
func (l *Layer) SetTextRenderingMode(mode TextRenderingMode) {
	l.writeln(int(mode), "Tr")
}

// SetTextMatrix replaces the text matrix and the text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (l *Layer) SetTextMatrix(m matrix.Matrix) {
	l.writeln(
		float.Format(m[0], 3), float.Format(m[1], 3),
		float.Format(m[2], 3), float.Format(m[3], 3),
		float.Format(m[4], 3), float.Format(m[5], 3), "Tm")
}

// AddLineBreak moves the cursor to the start of the next line, using the
// distance set by [Layer.SetLineHeight].
//
// This implements the PDF graphics operator "T*".
func (l *Layer) AddLineBreak() {
	l.writeln("T*")
}

// WriteText encodes text with the registered font and shows it at the
// current cursor position.  The caller is responsible for being inside a
// text section.
//
// This implements the PDF graphics operator "Tj".
func (l *Layer) WriteText(text string, r *resource.Registered[font.Font]) {
	if l.Err != nil {
		return
	}
	enc := r.Res.Encode(text)
	if err := enc.PDF(&l.content); err != nil {
		l.Err = err
		return
	}
	l.writeln(" Tj")
}

// UseText shows text at the given position in one step.  It expands to a
// begin-text, set-font, set-cursor, show-text, end-text sequence and is a
// convenience wrapper around the individual operators.
func (l *Layer) UseText(text string, fontSize float64, x, y pdf.Mm, r *resource.Registered[font.Font]) {
	l.BeginTextSection()
	l.SetFont(r, fontSize)
	l.SetTextCursor(x, y)
	l.WriteText(text, r)
	l.EndTextSection()
}
