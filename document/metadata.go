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
	"strconv"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"github.com/ahas/pdf"
)

const producer = "ahas/pdf"

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Producer   xmp.AgentName
	PDFVersion xmp.Text
	Trapped    xmp.Text
}

// infoDict builds the document information dictionary.
func (d *Document) infoDict() pdf.Dict {
	trapped := pdf.Name("False")
	if d.Trapped {
		trapped = "True"
	}

	info := pdf.Dict{
		"Title":        pdf.TextString(d.Title),
		"Producer":     pdf.TextString(producer),
		"CreationDate": pdf.Date(d.CreationDate),
		"ModDate":      pdf.Date(d.ModificationDate),
		"Trapped":      trapped,
	}
	if id := d.Conformance.Identifier(); id != "" && d.Conformance.RequiresICCProfile() && !d.Conformance.RequiresXMPMetadata() {
		info["GTS_PDFXVersion"] = pdf.TextString(id)
	}
	return info
}

// xmpMetadata renders the XMP packet for the document.
func (d *Document) xmpMetadata() ([]byte, error) {
	trapped := "False"
	if d.Trapped {
		trapped = "True"
	}

	dc := &xmp.DublinCore{}
	dc.Title.Set(language.MustParse("x-default"), d.Title)

	basic := &xmp.Basic{
		CreateDate:  xmp.NewDate(d.CreationDate),
		ModifyDate:  xmp.NewDate(d.ModificationDate),
		CreatorTool: xmp.NewAgentName(producer),
	}

	pdfInfo := &xmpPDF{
		Producer:   xmp.NewAgentName(producer),
		PDFVersion: xmp.NewText("1." + strconv.Itoa(int(d.file.Version()))),
		Trapped:    xmp.NewText(trapped),
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	buf := &bytes.Buffer{}
	if err := packet.Write(buf, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
