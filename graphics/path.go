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
	"github.com/ahas/pdf"
)

// Point is one vertex of a path, in millimetres from the lower left page
// corner.
type Point struct {
	X, Y pdf.Mm

	// Bezier marks this point as the start of a cubic curve segment: the
	// point and its successor are the control points, and the point after
	// that is the segment's end point.
	Bezier bool
}

// Line is a path together with its painting instructions.
type Line struct {
	Points []Point

	// IsClosed connects the last point back to the first one.
	IsClosed bool

	HasFill   bool
	HasStroke bool

	// IsClippingPath intersects the path with the current clipping path
	// instead of painting it.
	IsClippingPath bool
}

// MoveTo starts a new subpath at the given position.
//
// This implements the PDF graphics operator "m".
func (l *Layer) MoveTo(x, y pdf.Mm) {
	l.writeln(coord(x.Pt()), coord(y.Pt()), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (l *Layer) LineTo(x, y pdf.Mm) {
	l.writeln(coord(x.Pt()), coord(y.Pt()), "l")
}

// CurveTo appends a cubic Bezier segment with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
//
// This implements the PDF graphics operator "c".
func (l *Layer) CurveTo(x1, y1, x2, y2, x3, y3 pdf.Mm) {
	l.writeln(
		coord(x1.Pt()), coord(y1.Pt()),
		coord(x2.Pt()), coord(y2.Pt()),
		coord(x3.Pt()), coord(y3.Pt()), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (l *Layer) ClosePath() {
	l.writeln("h")
}

// AddShape expands line into path construction operators followed by one
// painting operator.  Points flagged as Bezier start a cubic curve segment
// consuming the next two points as well; all other points become straight
// line segments.
//
// The painting operator depends on the line's flags: a clipping path is
// intersected and discarded, otherwise the path is filled, stroked, both,
// or ended invisibly.
func (l *Layer) AddShape(line Line) {
	if len(line.Points) == 0 {
		return
	}

	l.MoveTo(line.Points[0].X, line.Points[0].Y)
	for i := 1; i < len(line.Points); {
		p := line.Points[i]
		if p.Bezier && i+2 < len(line.Points) {
			q, r := line.Points[i+1], line.Points[i+2]
			l.CurveTo(p.X, p.Y, q.X, q.Y, r.X, r.Y)
			i += 3
		} else {
			l.LineTo(p.X, p.Y)
			i++
		}
	}
	if line.IsClosed {
		l.ClosePath()
	}

	switch {
	case line.IsClippingPath:
		l.writeln("W n")
	case line.HasFill && line.HasStroke:
		l.writeln("B")
	case line.HasFill:
		l.writeln("f")
	case line.HasStroke:
		l.writeln("S")
	default:
		l.writeln("n")
	}
}
