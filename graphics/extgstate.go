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

// ExtGState is a graphics state parameter dictionary.  Nil fields are
// omitted from the embedded dictionary, leaving the corresponding state
// parameter unchanged when the state is activated.
type ExtGState struct {
	LineWidth   *float64
	StrokeAlpha *float64
	FillAlpha   *float64

	OverprintStroke *bool
	OverprintFill   *bool

	BlendMode pdf.Name
}

// ResourceCategory implements the resource [resource.Embeddable]
// interface.
func (g *ExtGState) ResourceCategory() pdf.Name {
	return "ExtGState"
}

// EmbedResource adds the parameter dictionary to the object graph.
func (g *ExtGState) EmbedResource(f *pdf.File) (pdf.Reference, error) {
	dict := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
	}
	if g.LineWidth != nil {
		dict["LW"] = pdf.Real(*g.LineWidth)
	}
	if g.StrokeAlpha != nil {
		dict["CA"] = pdf.Real(*g.StrokeAlpha)
	}
	if g.FillAlpha != nil {
		dict["ca"] = pdf.Real(*g.FillAlpha)
	}
	if g.OverprintStroke != nil {
		dict["OP"] = pdf.Bool(*g.OverprintStroke)
	}
	if g.OverprintFill != nil {
		dict["op"] = pdf.Bool(*g.OverprintFill)
	}
	if g.BlendMode != "" {
		dict["BM"] = g.BlendMode
	}
	return f.AddObject(dict), nil
}
