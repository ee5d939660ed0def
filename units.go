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

package pdf

// Mm is a length in millimetres, the unit used by the public page and
// positioning APIs.  Internally everything is stored in points.
type Mm float64

// Pt is a length in DTP points (1/72 inch), the native PDF unit.
type Pt float64

// Pt converts a length from millimetres to points.  One millimetre is
// 72/25.4 points exactly; multiplying before dividing keeps the rational
// scaling exact for representable inputs.
func (m Mm) Pt() Pt {
	return Pt(float64(m) * 72.0 / 25.4)
}

// Mm converts a length from points to millimetres.
func (p Pt) Mm() Mm {
	return Mm(float64(p) * 25.4 / 72.0)
}
