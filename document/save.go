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
	"errors"
	"fmt"
	"io"

	"github.com/ahas/pdf"
)

// SaveOptions control the final serialization step.
type SaveOptions struct {
	// SkipOptimization leaves the object graph unpruned and all streams
	// uncompressed.  Useful when inspecting the output by hand.
	SkipOptimization bool
}

// Save assembles the document into an object graph and writes the PDF
// file to w.  Save consumes the document: it can be called at most once,
// and the document must not be modified afterwards.
//
// Passing nil options selects the defaults.
func (d *Document) Save(w io.Writer, opt *SaveOptions) error {
	if d.saved {
		return errors.New("document has already been saved")
	}
	d.saved = true

	f := d.file
	pagesRef := f.Alloc()

	// document information and XMP metadata
	f.Info = f.AddObject(d.infoDict())

	catalog := pdf.Dict{
		"Type":       pdf.Name("Catalog"),
		"PageLayout": pdf.Name("OneColumn"),
		"PageMode":   pdf.Name("UseOC"),
		"Pages":      pagesRef,
	}

	if d.Conformance.RequiresXMPMetadata() {
		data, err := d.xmpMetadata()
		if err != nil {
			return err
		}
		catalog["Metadata"] = f.AddStream(pdf.Dict{
			"Type":    pdf.Name("Metadata"),
			"Subtype": pdf.Name("XML"),
		}, data, false)
	}

	if d.Conformance.RequiresICCProfile() && d.iccProfile != nil {
		profileRef := f.AddStream(pdf.Dict{
			"N": pdf.Integer(d.iccComponents),
		}, d.iccProfile, true)
		catalog["OutputIntents"] = pdf.Array{d.outputIntent(profileRef)}
	}

	// one OCG per layer, shared usage and intent objects
	usageRef := f.AddObject(pdf.Dict{
		"Type": pdf.Name("OCG"),
		"CreatorInfo": pdf.Dict{
			"Creator": pdf.TextString("Adobe Illustrator 14.0"),
			"Subtype": pdf.Name("Artwork"),
		},
	})
	intentRef := f.AddObject(pdf.Array{pdf.Name("View"), pdf.Name("Design")})

	var allOCGs pdf.Array
	pageOCGs := make([][]pdf.Reference, len(d.pages))
	for i, page := range d.pages {
		for _, layer := range page.Layers() {
			ref := f.AddObject(pdf.Dict{
				"Type":   pdf.Name("OCG"),
				"Name":   pdf.TextString(layer.Name()),
				"Intent": intentRef,
				"Usage":  usageRef,
			})
			pageOCGs[i] = append(pageOCGs[i], ref)
			allOCGs = append(allOCGs, ref)
		}
	}
	catalog["OCProperties"] = pdf.Dict{
		"OCGs": allOCGs,
		"D": pdf.Dict{
			"Order":    allOCGs,
			"RBGroups": pdf.Array{},
			"ON":       allOCGs,
		},
	}

	// the shared font table, one object for the whole document
	var fontDictRef pdf.Reference
	sharedFonts := pdf.Dict{}
	for _, e := range d.fonts {
		sharedFonts[pdf.Name(e.name)] = e.emb.Ref
	}
	if len(sharedFonts) > 0 {
		fontDictRef = f.AddObject(sharedFonts)
	}

	kids := make(pdf.Array, 0, len(d.pages))
	for i, page := range d.pages {
		resources, streams, err := page.collectResourcesAndStreams(pageOCGs[i])
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}

		if fontDictRef != 0 {
			err = attachSharedFonts(resources, sharedFonts, fontDictRef)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
		}

		// page content streams must stay uncompressed
		merged := bytes.Join(streams, nil)
		contentRef := f.AddStream(nil, merged, false)

		box := pdf.Array{
			pdf.Integer(0), pdf.Integer(0),
			pdf.Real(page.Width), pdf.Real(page.Height),
		}
		pageDict := pdf.Dict{
			"Type":     pdf.Name("Page"),
			"Rotate":   pdf.Integer(0),
			"MediaBox": box,
			"TrimBox":  box,
			"CropBox":  box,
			"Parent":   pagesRef,
			"Contents": contentRef,
		}
		if len(resources) > 0 {
			pageDict["Resources"] = f.AddObject(resources)
		}
		kids = append(kids, f.AddObject(pageDict))
	}

	f.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Count": pdf.Integer(len(d.pages)),
		"Kids":  kids,
	})

	f.Root = f.AddObject(catalog)
	f.ID = [2]pdf.String{
		pdf.String(d.id),
		pdf.String(d.ids.ID()),
	}

	if opt == nil || !opt.SkipOptimization {
		if err := f.Optimize(); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// attachSharedFonts makes the document-wide font table visible from one
// page's resource dictionary.  A page without its own font registrations
// references the shared dictionary directly; otherwise the shared entries
// are merged into the page's Font sub-dictionary, and a name collision
// with a different object is an error.
func attachSharedFonts(resources, sharedFonts pdf.Dict, fontDictRef pdf.Reference) error {
	switch existing := resources["Font"].(type) {
	case nil:
		resources["Font"] = fontDictRef
	case pdf.Dict:
		for name, ref := range sharedFonts {
			if prev, ok := existing[name]; ok && prev != ref {
				return fmt.Errorf("font resource %q already bound to %v", name, prev)
			}
			existing[name] = ref
		}
	default:
		return fmt.Errorf("resource slot %q holds %T, not a dictionary", "Font", existing)
	}
	return nil
}

// outputIntent describes the printing condition of the attached ICC
// profile.  The condition text matches the FOGRA39 offset printing
// profile commonly used for PDF/X output.
func (d *Document) outputIntent(profileRef pdf.Reference) pdf.Dict {
	return pdf.Dict{
		"Type": pdf.Name("OutputIntent"),
		"S":    pdf.Name("GTS_PDFX"),
		"OutputCondition": pdf.TextString("Commercial and special offset print " +
			"according to ISO 12647-2:2004 / Amd 1, paper type 1 or 2 (matte or " +
			"gloss-coated offset paper, 115 g/m2), screen ruling 60/cm"),
		"OutputConditionIdentifier": pdf.TextString("FOGRA39"),
		"RegistryName":              pdf.TextString("http://www.color.org"),
		"Info":                      pdf.TextString("Coated FOGRA39 (ISO 12647-2:2004)"),
		"DestinationOutputProfile":  profileRef,
	}
}
