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

// Color is a color in one of the device color spaces.  Component values
// are in the range [0, 1].
type Color interface {
	setFill(l *Layer)
	setStroke(l *Layer)
}

// RGB is a color in the DeviceRGB color space.
type RGB struct {
	R, G, B float64
}

func (c RGB) setFill(l *Layer) {
	l.writeln(num(c.R), num(c.G), num(c.B), "rg")
}

func (c RGB) setStroke(l *Layer) {
	l.writeln(num(c.R), num(c.G), num(c.B), "RG")
}

// CMYK is a color in the DeviceCMYK color space.
type CMYK struct {
	C, M, Y, K float64
}

func (c CMYK) setFill(l *Layer) {
	l.writeln(num(c.C), num(c.M), num(c.Y), num(c.K), "k")
}

func (c CMYK) setStroke(l *Layer) {
	l.writeln(num(c.C), num(c.M), num(c.Y), num(c.K), "K")
}

// Greyscale is a color in the DeviceGray color space.
type Greyscale struct {
	G float64
}

func (c Greyscale) setFill(l *Layer) {
	l.writeln(num(c.G), "g")
}

func (c Greyscale) setStroke(l *Layer) {
	l.writeln(num(c.G), "G")
}

// SetFillColor sets the color used for filling paths and showing text.
//
// This implements the PDF graphics operators "rg", "k" and "g".
func (l *Layer) SetFillColor(c Color) {
	c.setFill(l)
}

// SetStrokeColor sets the color used for stroking paths.
//
// This implements the PDF graphics operators "RG", "K" and "G".
func (l *Layer) SetStrokeColor(c Color) {
	c.setStroke(l)
}
