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

import (
	"bytes"
	"testing"
	"time"
)

func format(obj Object) string {
	buf := &bytes.Buffer{}
	if obj == nil {
		return "null"
	}
	err := obj.PDF(buf)
	if err != nil {
		panic(err)
	}
	return buf.String()
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-12), "-12"},
		{Real(1.5), "1.5"},
		{Real(3), "3."},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), `(a \(test version)`},
		{String(""), "()"},
		{String("\000\000"), "<0000>"},
		{HexString("Hi"), "<4869>"},
		{Name("Type"), "/Type"},
		{Name("a b"), "/a#20b"},
		{Name("A#B"), "/A#23B"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{NewReference(3, 0), "3 0 R"},
		{NewReference(17, 2), "17 2 R"},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestFormatDict(t *testing.T) {
	d := Dict{
		"Type":  Name("Test"),
		"Count": Integer(2),
		"Skip":  nil,
	}
	out := format(d)
	want := "<<\n/Count 2\n/Type /Test\n>>"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

func TestFormatStream(t *testing.T) {
	s := &Stream{
		Dict: Dict{"Type": Name("Test")},
		Data: []byte("hello"),
	}
	out := format(s)
	want := "<<\n/Length 5\n/Type /Test\n>>\nstream\nhello\nendstream"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"ein Bär",
		"中文",
		"日本語",
	}
	for _, test := range cases {
		enc := TextString(test)
		isASCII := true
		for _, r := range test {
			if r < 32 || r >= 127 {
				isASCII = false
			}
		}
		if isASCII {
			if string(enc) != test {
				t.Errorf("%q: ASCII text must pass through, got %q",
					test, enc)
			}
		} else if len(enc) < 2 || enc[0] != 0xFE || enc[1] != 0xFF {
			t.Errorf("%q: missing UTF-16 byte order mark", test)
		}
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	in := time.Date(2010, 12, 24, 16, 30, 12, 0, loc)
	out := string(Date(in))
	want := "D:20101224163012+02'00"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(12345, 7)
	if ref.Number() != 12345 {
		t.Errorf("wrong object number %d", ref.Number())
	}
	if ref.Generation() != 7 {
		t.Errorf("wrong generation %d", ref.Generation())
	}
	var zero Reference
	if zero.Number() != 0 || zero.Generation() != 0 {
		t.Error("zero reference must have number and generation 0")
	}
}

func TestMm(t *testing.T) {
	pt := Mm(25.4).Pt()
	if float64(pt) != 72 {
		t.Errorf("25.4mm = %gpt, expected 72pt", float64(pt))
	}
	back := pt.Mm()
	if float64(back) != 25.4 {
		t.Errorf("72pt = %gmm, expected 25.4mm", float64(back))
	}

	cases := []Mm{0, 1, 10, 25.4, 210, 297}
	for _, mm := range cases {
		if got := mm.Pt().Mm(); got != mm {
			t.Errorf("%gmm does not round-trip: got %gmm", float64(mm), float64(got))
		}
	}
	if got := Pt(72).Mm().Pt(); got != 72 {
		t.Errorf("72pt does not round-trip: got %gpt", float64(got))
	}
}
