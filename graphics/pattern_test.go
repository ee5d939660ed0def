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
	"bytes"
	"errors"
	"testing"

	"github.com/ahas/pdf"
)

func TestTilingPatternEmbed(t *testing.T) {
	cell := NewLayer("cell")
	cell.SetFillColor(RGB{R: 1})
	cell.AddShape(Line{
		Points:  RectPoints(2, 2, 2, 2),
		HasFill: true,
	})

	p := &TilingPattern{
		Cell:   cell,
		Width:  10,
		Height: 8,
	}

	f := pdf.NewFile(pdf.V1_3)
	ref, err := p.EmbedResource(f)
	if err != nil {
		t.Fatal(err)
	}
	stream, ok := f.Get(ref).(*pdf.Stream)
	if !ok {
		t.Fatalf("embedded object is %T, want *Stream", f.Get(ref))
	}

	if stream.Dict["PatternType"] != pdf.Integer(1) {
		t.Errorf("PatternType = %v", stream.Dict["PatternType"])
	}
	if stream.Dict["PaintType"] != pdf.Integer(1) {
		t.Errorf("PaintType = %v", stream.Dict["PaintType"])
	}
	// zero steps default to the cell size
	if stream.Dict["XStep"] != pdf.Real(10) || stream.Dict["YStep"] != pdf.Real(8) {
		t.Errorf("steps = %v, %v, want the cell size",
			stream.Dict["XStep"], stream.Dict["YStep"])
	}
	if _, ok := stream.Dict["Resources"].(pdf.Dict); !ok {
		t.Errorf("Resources is %T, want Dict", stream.Dict["Resources"])
	}
	if !bytes.Equal(stream.Data, cell.Bytes()) {
		t.Error("pattern stream does not carry the cell operators")
	}
}

func TestTilingPatternEmbedSteps(t *testing.T) {
	p := &TilingPattern{
		Cell:   NewLayer("cell"),
		Width:  10,
		Height: 8,
		XStep:  12,
		YStep:  9,
	}

	f := pdf.NewFile(pdf.V1_3)
	ref, err := p.EmbedResource(f)
	if err != nil {
		t.Fatal(err)
	}
	stream := f.Get(ref).(*pdf.Stream)
	if stream.Dict["XStep"] != pdf.Real(12) || stream.Dict["YStep"] != pdf.Real(9) {
		t.Errorf("steps = %v, %v, want 12, 9",
			stream.Dict["XStep"], stream.Dict["YStep"])
	}
}

func TestTilingPatternEmbedCellError(t *testing.T) {
	cell := NewLayer("cell")
	cell.Err = errors.New("cell failed")

	p := &TilingPattern{Cell: cell, Width: 10, Height: 8}
	f := pdf.NewFile(pdf.V1_3)
	if _, err := p.EmbedResource(f); err == nil {
		t.Error("a failed cell layer must fail the embed")
	}
}
