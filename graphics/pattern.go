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
	"github.com/ahas/pdf/resource"
)

// TilingPattern is a pattern cell painted repeatedly to fill an area.  The
// cell contents are drawn on a separate [Layer] which must not reference
// optional content.
type TilingPattern struct {
	// Cell holds the pattern cell's drawing operators.
	Cell *Layer

	// Width and Height give the cell bounding box, in points.
	Width, Height pdf.Pt

	// XStep and YStep are the tile spacing; zero values default to the
	// cell size.
	XStep, YStep pdf.Pt

	// Resources names the resources used by the cell operators.
	Resources pdf.Dict
}

// ResourceCategory implements the resource [resource.Embeddable]
// interface.
func (p *TilingPattern) ResourceCategory() pdf.Name {
	return "Pattern"
}

// EmbedResource adds the pattern stream to the object graph.
func (p *TilingPattern) EmbedResource(f *pdf.File) (pdf.Reference, error) {
	if p.Cell != nil && p.Cell.Err != nil {
		return 0, p.Cell.Err
	}

	xStep, yStep := p.XStep, p.YStep
	if xStep == 0 {
		xStep = p.Width
	}
	if yStep == 0 {
		yStep = p.Height
	}

	resources := p.Resources
	if resources == nil {
		resources = pdf.Dict{}
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(1),
		"PaintType":   pdf.Integer(1),
		"TilingType":  pdf.Integer(1),
		"BBox": pdf.Array{
			pdf.Integer(0), pdf.Integer(0),
			pdf.Real(p.Width), pdf.Real(p.Height),
		},
		"XStep":     pdf.Real(xStep),
		"YStep":     pdf.Real(yStep),
		"Resources": resources,
	}

	var data []byte
	if p.Cell != nil {
		data = p.Cell.Bytes()
	}
	return f.AddStream(dict, data, true), nil
}

// SetFillPattern selects a registered tiling pattern as the fill "color".
//
// This implements the PDF graphics operators "cs" and "scn".
func (l *Layer) SetFillPattern(r *resource.Registered[*TilingPattern]) {
	l.writeln("/Pattern cs")
	l.writeName(r.Name())
	l.writeln("scn")
}
