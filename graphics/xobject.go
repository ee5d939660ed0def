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
	"github.com/ahas/pdf/resource"
)

// XObjectOptions positions an XObject invocation on the page.  The zero
// value paints the object at the origin, unrotated and unscaled.
type XObjectOptions struct {
	TranslateX, TranslateY pdf.Mm

	// Rotate is counter-clockwise, in degrees.
	Rotate float64

	// Zero scale factors are treated as 1.
	ScaleX, ScaleY float64
}

// UseXObject paints a registered XObject.  The invocation is wrapped in a
// save/restore pair, and the transformations are emitted in a fixed order
// (translate, then rotate, then scale) so the transform cannot leak into
// subsequent operations.
//
// This implements the PDF graphics operator "Do".
func (l *Layer) UseXObject(r *resource.Registered[*Image], opt XObjectOptions) {
	l.PushGraphicsState()

	if opt.TranslateX != 0 || opt.TranslateY != 0 {
		l.Transform(matrix.Translate(
			float64(opt.TranslateX.Pt()), float64(opt.TranslateY.Pt())))
	}
	if opt.Rotate != 0 {
		l.Transform(matrix.RotateDeg(opt.Rotate))
	}
	sx, sy := opt.ScaleX, opt.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sx != 1 || sy != 1 {
		l.Transform(matrix.Scale(sx, sy))
	}

	l.writeName(r.Name())
	l.writeln("Do")

	l.PopGraphicsState()
}
