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

// encodeWidths builds the W (or W2) array for the descendant font.  Glyphs
// with consecutive IDs are coalesced into runs of the form
//
//	lowGid [w1 w2 ... wn]
//
// and a new run starts whenever there is a gap in the glyph IDs.  Widths
// are scaled from font units to the 1000-per-em glyph space, truncating
// towards zero.
func encodeWidths(t *glyphTable, unitsPerEm uint16) pdf.Array {
	scale := 1000.0 / float64(unitsPerEm)

	var out pdf.Array
	var run pdf.Array
	var lowGID, highGID int

	for i, gid := range t.sorted {
		w := pdf.Integer(float64(t.gids[gid].width) * scale)

		if i == 0 {
			lowGID = int(gid)
			highGID = int(gid)
			run = pdf.Array{w}
			continue
		}

		if int(gid) == highGID+1 {
			highGID = int(gid)
			run = append(run, w)
			continue
		}

		out = append(out, pdf.Integer(lowGID), run)
		lowGID = int(gid)
		highGID = int(gid)
		run = pdf.Array{w}
	}
	if run != nil {
		out = append(out, pdf.Integer(lowGID), run)
	}

	return out
}
