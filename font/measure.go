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
	"github.com/ahas/pdf"
)

// MeasureText returns the extent of text when shown at the given font size
// (in points).  The width is the sum of the glyph advance widths; the
// height is the scaled ascender.  Characters without a glyph contribute
// the advance of glyph 0.
func (e *External) MeasureText(text string, fontSize float64) (width, height pdf.Pt) {
	q := fontSize / float64(e.info.UnitsPerEm)
	var w float64
	for _, r := range text {
		gid := e.cmap.Lookup(r)
		w += float64(e.info.GlyphWidth(gid)) * q
	}
	return pdf.Pt(w), pdf.Pt(float64(e.info.Ascent) * q)
}
