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

	"github.com/ahas/pdf"
)

func TestBuiltinEncode(t *testing.T) {
	cases := []struct {
		text string
		want pdf.HexString
	}{
		{"Hello", pdf.HexString("Hello")},
		{"", pdf.HexString("")},

		// U+20AC has a WinAnsi code point
		{"1€", pdf.HexString{'1', 0x80}},

		// characters outside WinAnsi are dropped
		{"a日b", pdf.HexString("ab")},
		{"日本語", pdf.HexString("")},
	}
	for _, c := range cases {
		got := Helvetica.Encode(c.text)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Encode(%q) mismatch (-want +got):\n%s", c.text, d)
		}
	}
}

func TestBuiltinEmbed(t *testing.T) {
	f := pdf.NewFile(pdf.V1_3)
	ref, err := TimesRoman.EmbedResource(f)
	if err != nil {
		t.Fatal(err)
	}

	dict, ok := f.Get(ref).(pdf.Dict)
	if !ok {
		t.Fatalf("expected a font dictionary, got %T", f.Get(ref))
	}
	want := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Times-Roman"),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("font dictionary mismatch (-want +got):\n%s", d)
	}
}

func TestBuiltinNames(t *testing.T) {
	all := []Builtin{
		Courier, CourierBold, CourierOblique, CourierBoldOblique,
		Helvetica, HelveticaBold, HelveticaOblique, HelveticaBoldOblique,
		TimesRoman, TimesBold, TimesItalic, TimesBoldItalic,
		Symbol, ZapfDingbats,
	}
	seen := map[string]bool{}
	for _, b := range all {
		name := b.LogicalName()
		if name == "" || seen[name] {
			t.Errorf("bad or duplicate font name %q", name)
		}
		seen[name] = true
	}
}
