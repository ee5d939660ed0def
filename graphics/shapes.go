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

import "github.com/ahas/pdf"

// circleC is the distance of a cubic Bezier control point from the arc
// endpoint for a quarter circle approximation.
const circleC = 0.551915024494

// CirclePoints returns the points of a circle approximated by four cubic
// Bezier arcs, centered at the given offset from the lower left corner of
// the page.  The result is ready for use with [Line].
func CirclePoints(radius, offsetX, offsetY pdf.Mm) []Point {
	r := float64(radius)
	c := circleC * r

	// start point, then control/control/end triples for each quarter
	quarters := [4][3][2]float64{
		{{c, r}, {r, c}, {r, 0}},
		{{r, -c}, {c, -r}, {0, -r}},
		{{-c, -r}, {-r, -c}, {-r, 0}},
		{{-r, c}, {-c, r}, {0, r}},
	}

	points := make([]Point, 0, 13)
	points = append(points, Point{X: offsetX, Y: offsetY + pdf.Mm(r)})
	for _, q := range quarters {
		for i, xy := range q {
			points = append(points, Point{
				X:      offsetX + pdf.Mm(xy[0]),
				Y:      offsetY + pdf.Mm(xy[1]),
				Bezier: i == 0,
			})
		}
	}
	return points
}

// RectPoints returns the four corners of a rectangle with the given width
// and height, centered at the given offset from the lower left corner of
// the page.  The result is ready for use with [Line].
func RectPoints(width, height, offsetX, offsetY pdf.Mm) []Point {
	top := offsetY + height/2
	bottom := offsetY - height/2
	left := offsetX - width/2
	right := offsetX + width/2

	return []Point{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
}
