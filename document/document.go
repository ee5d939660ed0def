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

// Package document provides the document and page model and the final
// assembly into a PDF file.
//
// A typical use builds a [Document], adds [Page] values, adds layers to
// the pages, draws on the layers, and calls [Document.Save] once.
package document

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"seehuhn.de/go/icc"

	"github.com/ahas/pdf"
	"github.com/ahas/pdf/font"
	"github.com/ahas/pdf/resource"
)

// Document is a PDF document under construction.  Pages keep their
// insertion order.  The metadata fields may be changed freely until
// [Document.Save] is called.
type Document struct {
	Title            string
	CreationDate     time.Time
	ModificationDate time.Time
	Trapped          bool
	Conformance      Conformance

	file  *pdf.File
	pages []*Page

	// fonts is the document-wide font table, keyed by logical name:
	// builtin fonts by their PostScript name, external fonts by their
	// generated face name.
	fonts []fontEntry

	iccProfile    []byte
	iccComponents int

	id    string
	ids   *IDSource
	saved bool
}

type fontEntry struct {
	name string
	emb  *resource.Embedded[font.Font]
}

// NewDocument creates an empty document with the given title.  The
// identifier generator is seeded from the current time; use
// [NewDocumentWithIDs] for reproducible identifiers.
func NewDocument(title string) *Document {
	return NewDocumentWithIDs(title, NewIDSource(uint64(time.Now().UnixNano())))
}

// NewDocumentWithIDs creates an empty document drawing its document and
// instance identifiers from ids.
func NewDocumentWithIDs(title string, ids *IDSource) *Document {
	now := time.Now()
	return &Document{
		Title:            title,
		CreationDate:     now,
		ModificationDate: now,
		Conformance:      ConformanceX3_2002,
		file:             pdf.NewFile(pdf.V1_3),
		id:               ids.ID(),
		ids:              ids,
	}
}

// File returns the object graph under construction.  It is needed to
// embed page-level resources such as images, graphics states and
// patterns with [resource.Embed].
func (d *Document) File() *pdf.File {
	return d.file
}

// ID returns the document identifier.
func (d *Document) ID() string {
	return d.id
}

// SetVersion changes the PDF version of the document.  New documents
// start at PDF 1.3.  The version is written to the file header and to
// the XMP metadata, if any.
func (d *Document) SetVersion(v pdf.Version) {
	d.file.SetVersion(v)
}

// AddPage appends a new page with the given size in millimetres and
// returns it.
func (d *Document) AddPage(width, height pdf.Mm) *Page {
	p := NewPage(width, height)
	d.pages = append(d.pages, p)
	return p
}

// AddBuiltinFont adds one of the 14 standard fonts to the document's font
// table.  Adding the same builtin font twice returns the handle embedded
// by the first call.
func (d *Document) AddBuiltinFont(b font.Builtin) (*resource.Embedded[font.Font], error) {
	name := b.LogicalName()
	for _, e := range d.fonts {
		if e.name == name {
			return e.emb, nil
		}
	}

	emb, err := resource.Embed[font.Font](d.file, b)
	if err != nil {
		return nil, err
	}
	d.fonts = append(d.fonts, fontEntry{name: name, emb: emb})
	return emb, nil
}

// AddExternalFont reads an outline font from r and adds it to the
// document's font table.  Fonts are compared by their raw bytes: adding
// the same font program twice returns the handle embedded by the first
// call.  A freshly added font is assigned a face name of the form "F0",
// "F1", ...
func (d *Document) AddExternalFont(r io.Reader) (*resource.Embedded[font.Font], error) {
	ext, err := font.NewExternal(r)
	if err != nil {
		return nil, err
	}

	for _, e := range d.fonts {
		if existing, ok := e.emb.Res.(*font.External); ok && existing.Equal(ext) {
			return e.emb, nil
		}
	}

	ext.SetFaceName("F" + strconv.Itoa(len(d.fonts)))
	emb, err := resource.Embed[font.Font](d.file, ext)
	if err != nil {
		return nil, err
	}
	d.fonts = append(d.fonts, fontEntry{name: ext.LogicalName(), emb: emb})
	return emb, nil
}

// SetICCProfile sets the ICC profile attached as the document's output
// intent when the conformance level requires one.  The profile is parsed
// here so malformed data is rejected early.
func (d *Document) SetICCProfile(data []byte) error {
	p, err := icc.Decode(data)
	if err != nil {
		return fmt.Errorf("parse ICC profile: %w", err)
	}
	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return fmt.Errorf("ICC profile with %d components not usable for an output intent", n)
	}
	d.iccProfile = data
	d.iccComponents = n
	return nil
}
