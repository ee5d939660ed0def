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

// Package graphics provides the content stream builder.
//
// A [Layer] accumulates drawing and text operators in the order the caller
// issues them.  The builder records operators verbatim and does not enforce
// balancing rules: callers must pair [Layer.PushGraphicsState] with
// [Layer.PopGraphicsState] and [Layer.BeginTextSection] with
// [Layer.EndTextSection] themselves.  An unbalanced sequence still
// serializes, it just yields a malformed content stream.
package graphics

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"github.com/ahas/pdf"
	"github.com/ahas/pdf/internal/float"
	"github.com/ahas/pdf/resource"
)

// Layer is one drawing surface of a page.  Each layer becomes an optional
// content group which viewers can toggle independently.
//
// Once an operator fails to serialize, the Err field is set and all further
// calls are ignored.
type Layer struct {
	// Err is the first error encountered while recording operators.
	Err error

	name    string
	content bytes.Buffer
}

// NewLayer creates an empty layer with the given display name.  The name
// must be unique among all layers of a document for the optional content
// groups to be distinguishable in a viewer.
func NewLayer(name string) *Layer {
	return &Layer{name: name}
}

// Name returns the layer's display name.
func (l *Layer) Name() string {
	return l.name
}

// Bytes returns the recorded content stream operators.
func (l *Layer) Bytes() []byte {
	return l.content.Bytes()
}

func coord(x pdf.Pt) string {
	return float.Format(float64(x), 3)
}

func num(x float64) string {
	return float.Format(x, 3)
}

// writeName appends a PDF name operand followed by a space.
func (l *Layer) writeName(name pdf.Name) {
	if l.Err != nil {
		return
	}
	if err := name.PDF(&l.content); err != nil {
		l.Err = err
		return
	}
	l.content.WriteByte(' ')
}

func (l *Layer) writeln(args ...any) {
	if l.Err != nil {
		return
	}
	_, l.Err = fmt.Fprintln(&l.content, args...)
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (l *Layer) PushGraphicsState() {
	l.writeln("q")
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (l *Layer) PopGraphicsState() {
	l.writeln("Q")
}

// Transform concatenates m with the current transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (l *Layer) Transform(m matrix.Matrix) {
	l.writeln(
		float.Format(m[0], 3), float.Format(m[1], 3),
		float.Format(m[2], 3), float.Format(m[3], 3),
		float.Format(m[4], 3), float.Format(m[5], 3), "cm")
}

// SetLineWidth sets the stroke line width, in points.
//
// This implements the PDF graphics operator "w".
func (l *Layer) SetLineWidth(width float64) {
	l.writeln(num(width), "w")
}

// LineCapStyle selects the shape of open subpath endpoints.
type LineCapStyle int

const (
	LineCapButt LineCapStyle = iota
	LineCapRound
	LineCapSquare
)

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (l *Layer) SetLineCap(style LineCapStyle) {
	l.writeln(int(style), "J")
}

// LineJoinStyle selects the shape of joints between path segments.
type LineJoinStyle int

const (
	LineJoinMiter LineJoinStyle = iota
	LineJoinRound
	LineJoinBevel
)

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (l *Layer) SetLineJoin(style LineJoinStyle) {
	l.writeln(int(style), "j")
}

// SetLineDash sets the dash pattern, in points.  An empty pattern selects
// solid lines.
//
// This implements the PDF graphics operator "d".
func (l *Layer) SetLineDash(pattern []float64, phase float64) {
	if l.Err != nil {
		return
	}
	l.content.WriteByte('[')
	for i, p := range pattern {
		if i > 0 {
			l.content.WriteByte(' ')
		}
		l.content.WriteString(num(p))
	}
	l.content.WriteString("] ")
	l.writeln(num(phase), "d")
}

// SetExtGState activates a registered graphics state parameter dictionary.
//
// This implements the PDF graphics operator "gs".
func (l *Layer) SetExtGState(r *resource.Registered[*ExtGState]) {
	l.writeName(r.Name())
	l.writeln("gs")
}
