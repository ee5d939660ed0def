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
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt/glyph"
)

// bfchar is one glyph ID to Unicode pair in a ToUnicode CMap.
type bfchar struct {
	gid     glyph.ID
	unicode rune
}

// toUnicodeBlocks partitions the glyph map into bfchar blocks.  All entries
// of a block share the high byte of their glyph ID, and a block holds at
// most 100 entries (the CMap operator limit).  Either condition being
// violated forces a block boundary.
func toUnicodeBlocks(t *glyphTable) [][]bfchar {
	var blocks [][]bfchar
	var cur []bfchar
	var curHigh glyph.ID

	for _, gid := range t.sorted {
		if gid>>8 != curHigh || len(cur) >= 100 {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
			}
			cur = nil
			curHigh = gid >> 8
		}
		cur = append(cur, bfchar{gid: gid, unicode: t.gids[gid].unicode})
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

const toUnicodeBeg = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /%s def
/CMapType 2 def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
`

const toUnicodeEnd = `endcmap
CMapName currentdict /CMap defineresource pop
end
end`

// generateToUnicode renders the blocks as the text of a ToUnicode CMap
// stream.  Output is deterministic: the same glyph map always yields
// byte-identical CMap text.
func generateToUnicode(faceName string, blocks [][]bfchar) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, toUnicodeBeg, faceName)
	for _, block := range blocks {
		fmt.Fprintf(buf, "%d beginbfchar\r\n", len(block))
		for _, bf := range block {
			fmt.Fprintf(buf, "<%04x> <%04x>\n", bf.gid, bf.unicode)
		}
		buf.WriteString("endbfchar\r\n")
	}
	buf.WriteString(toUnicodeEnd)
	return buf.Bytes()
}
