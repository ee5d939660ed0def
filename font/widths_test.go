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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/ahas/pdf"
)

func makeTable(widths map[glyph.ID]int) *glyphTable {
	t := &glyphTable{gids: map[glyph.ID]glyphRecord{}}
	for gid, w := range widths {
		t.gids[gid] = glyphRecord{width: w}
	}
	for gid := range t.gids {
		t.sorted = append(t.sorted, gid)
	}
	for i := range t.sorted {
		for j := i + 1; j < len(t.sorted); j++ {
			if t.sorted[j] < t.sorted[i] {
				t.sorted[i], t.sorted[j] = t.sorted[j], t.sorted[i]
			}
		}
	}
	return t
}

func TestEncodeWidthsRuns(t *testing.T) {
	// gids 0..2 are contiguous, then a gap before 5..6
	table := makeTable(map[glyph.ID]int{
		0: 1000,
		1: 500,
		2: 600,
		5: 250,
		6: 300,
	})
	got := encodeWidths(table, 1000)
	want := pdf.Array{
		pdf.Integer(0),
		pdf.Array{pdf.Integer(1000), pdf.Integer(500), pdf.Integer(600)},
		pdf.Integer(5),
		pdf.Array{pdf.Integer(250), pdf.Integer(300)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("width runs mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeWidthsScaling(t *testing.T) {
	// 1229 font units at 2048 per em is 600.09 glyph-space units,
	// truncated to 600
	table := makeTable(map[glyph.ID]int{3: 1229})
	got := encodeWidths(table, 2048)
	want := pdf.Array{
		pdf.Integer(3),
		pdf.Array{pdf.Integer(600)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("scaled widths mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeWidthsNoGapInRun(t *testing.T) {
	table := makeTable(map[glyph.ID]int{
		2: 100, 3: 100, 7: 100, 8: 100, 9: 100, 20: 100,
	})
	arr := encodeWidths(table, 1000)

	// entries alternate between run start and run array
	if len(arr)%2 != 0 {
		t.Fatalf("odd number of W entries: %d", len(arr))
	}
	total := 0
	for i := 0; i < len(arr); i += 2 {
		start, ok := arr[i].(pdf.Integer)
		if !ok {
			t.Fatalf("entry %d is %T, want Integer", i, arr[i])
		}
		run, ok := arr[i+1].(pdf.Array)
		if !ok {
			t.Fatalf("entry %d is %T, want Array", i+1, arr[i+1])
		}
		total += len(run)
		for j := range run {
			gid := glyph.ID(int(start) + j)
			if _, present := table.gids[gid]; !present {
				t.Errorf("run starting at %d covers absent glyph %d", start, gid)
			}
		}
	}
	if total != len(table.gids) {
		t.Errorf("runs cover %d glyphs, want %d", total, len(table.gids))
	}
}
