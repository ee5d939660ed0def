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

package document

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/ahas/pdf"
	"github.com/ahas/pdf/font"
	"github.com/ahas/pdf/resource"
)

func mustRegister(t *testing.T, page *Page, emb *resource.Embedded[font.Font]) *resource.Registered[font.Font] {
	t.Helper()
	reg, err := resource.Register(page.Resources(), emb)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestAddBuiltinFontIdempotent(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(1))

	a, err := d.AddBuiltinFont(font.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	before := d.File().Count()
	b, err := d.AddBuiltinFont(font.Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Error("adding the same builtin twice must return the same handle")
	}
	if d.File().Count() != before {
		t.Error("second add must not embed new objects")
	}

	c, err := d.AddBuiltinFont(font.Courier)
	if err != nil {
		t.Fatal(err)
	}
	if c.Ref == a.Ref {
		t.Error("distinct builtins must embed distinct objects")
	}
}

func TestAddExternalFontDedup(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(1))

	a, err := d.AddExternalFont(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.AddExternalFont(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Error("identical font programs must share one handle")
	}
	if a.Res.LogicalName() != "F0" {
		t.Errorf("face name %q, want F0", a.Res.LogicalName())
	}
}

func TestSharedFontAcrossPages(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(7))
	helv, err := d.AddBuiltinFont(font.Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		page := d.AddPage(210, 297)
		layer := page.AddLayer("content")
		layer.UseText("shared", 12, 10, 280, mustRegister(t, page, helv))
	}

	buf := &bytes.Buffer{}
	if err := d.Save(buf, nil); err != nil {
		t.Fatal(err)
	}

	// the font dictionary must appear exactly once in the object graph
	if got := bytes.Count(buf.Bytes(), []byte("/BaseFont /Helvetica")); got != 1 {
		t.Errorf("font dictionary appears %d times, want 1", got)
	}
	if got := bytes.Count(buf.Bytes(), []byte("/Count 2")); got != 1 {
		t.Errorf("page tree count marker appears %d times, want 1", got)
	}
}

func TestSaveOCGCount(t *testing.T) {
	const nPages, nLayers = 3, 2

	d := NewDocumentWithIDs("layers", NewIDSource(3))
	for p := 0; p < nPages; p++ {
		page := d.AddPage(210, 297)
		for l := 0; l < nLayers; l++ {
			layer := page.AddLayer(layerName(p, l))
			layer.MoveTo(0, 0)
			layer.LineTo(10, 10)
		}
	}

	buf := &bytes.Buffer{}
	if err := d.Save(buf, &SaveOptions{SkipOptimization: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	// each layer OCG carries an /Intent entry; the shared usage
	// dictionary does not
	if got := bytes.Count(out, []byte("/Intent")); got != nPages*nLayers {
		t.Errorf("%d optional content groups, want %d", got, nPages*nLayers)
	}
	if !bytes.Contains(out, []byte("/OCProperties")) {
		t.Error("catalog has no OCProperties entry")
	}
	if !bytes.Contains(out, []byte("/ON")) {
		t.Error("no initially-visible set")
	}
}

func TestSaveDropsUnsupportedRunes(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(5))
	helv, err := d.AddBuiltinFont(font.Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	page := d.AddPage(210, 297)
	layer := page.AddLayer("text")
	layer.UseText("a日b", 12, 10, 280, mustRegister(t, page, helv))

	buf := &bytes.Buffer{}
	if err := d.Save(buf, &SaveOptions{SkipOptimization: true}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<6162> Tj")) {
		t.Error("unsupported rune was not dropped from the hex string")
	}
}

func TestSaveTwice(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(9))
	d.AddPage(210, 297).AddLayer("l")

	if err := d.Save(&bytes.Buffer{}, nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Save(&bytes.Buffer{}, nil); err == nil {
		t.Error("second save must fail")
	}
}

func TestSetVersion(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(10))
	d.AddPage(210, 297).AddLayer("l")

	if v := d.File().Version(); v != pdf.V1_3 {
		t.Errorf("new document starts at version %v, want %v", v, pdf.V1_3)
	}
	d.SetVersion(pdf.V1_7)

	buf := &bytes.Buffer{}
	if err := d.Save(buf, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.7\n")) {
		t.Errorf("wrong file header %q", buf.Bytes()[:9])
	}
}

func TestSaveTrailerID(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(11))
	d.AddPage(210, 297).AddLayer("l")

	id := d.ID()
	if len(id) != 32 {
		t.Fatalf("document identifier %q, want 32 characters", id)
	}

	buf := &bytes.Buffer{}
	if err := d.Save(buf, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(id)) {
		t.Error("trailer does not carry the document identifier")
	}
}

func TestSaveXMPMetadata(t *testing.T) {
	d := NewDocumentWithIDs("archival", NewIDSource(13))
	d.Conformance = ConformanceA1B_2005
	d.AddPage(210, 297).AddLayer("l")

	buf := &bytes.Buffer{}
	if err := d.Save(buf, &SaveOptions{SkipOptimization: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	if !bytes.Contains(out, []byte("/Subtype /XML")) {
		t.Error("no XMP metadata stream in the output")
	}
	if !bytes.Contains(out, []byte("archival")) {
		t.Error("document title missing from the output")
	}
}

func TestSaveNoXMPByDefault(t *testing.T) {
	d := NewDocumentWithIDs("plain", NewIDSource(15))
	d.AddPage(210, 297).AddLayer("l")

	buf := &bytes.Buffer{}
	if err := d.Save(buf, &SaveOptions{SkipOptimization: true}); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte("/Subtype /XML")) {
		t.Error("unexpected XMP metadata stream at the default conformance level")
	}
}

func TestSetICCProfileRejectsGarbage(t *testing.T) {
	d := NewDocumentWithIDs("test", NewIDSource(17))
	if err := d.SetICCProfile([]byte("not a profile")); err == nil {
		t.Error("expected an error for malformed profile data")
	}
}

func layerName(page, layer int) string {
	return "page " + string(rune('1'+page)) + " layer " + string(rune('1'+layer))
}
