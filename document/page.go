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
	"fmt"
	"strconv"

	"github.com/ahas/pdf"
	"github.com/ahas/pdf/graphics"
)

// Page is one page of a document.  A page exclusively owns its layers;
// fonts and other embedded resources are document-owned and only
// referenced from the page's resource dictionary.
type Page struct {
	// Width and Height of the page, in points.
	Width, Height pdf.Pt

	layers    []*graphics.Layer
	resources pdf.Dict
}

// NewPage creates an empty page with the given size in millimetres.
func NewPage(width, height pdf.Mm) *Page {
	return &Page{
		Width:     width.Pt(),
		Height:    height.Pt(),
		resources: pdf.Dict{},
	}
}

// AddLayer appends a new drawing layer with the given display name and
// returns it.  Whether resources used by the layer's operators were
// actually registered on this page is not validated here.
func (p *Page) AddLayer(name string) *graphics.Layer {
	l := graphics.NewLayer(name)
	p.layers = append(p.layers, l)
	return l
}

// Layers returns the page's layers in drawing order.
func (p *Page) Layers() []*graphics.Layer {
	return p.layers
}

// Resources returns the page's resource dictionary, for use with
// [resource.Register].
func (p *Page) Resources() pdf.Dict {
	return p.resources
}

// collectResourcesAndStreams is the page-to-assembly handoff.  It merges
// the optional content group references into the page's resource
// dictionary under the "Properties" category and wraps each layer's
// operators in a marked-content pair nested inside a save/restore pair:
//
//	/OC /MC0 BDC
//	q
//	<layer operators>
//	Q
//	EMC
//
// ocgRefs must hold one reference per layer, in layer order.
func (p *Page) collectResourcesAndStreams(ocgRefs []pdf.Reference) (pdf.Dict, [][]byte, error) {
	resources := make(pdf.Dict, len(p.resources)+1)
	for k, v := range p.resources {
		resources[k] = v
	}

	if len(ocgRefs) > 0 {
		var properties pdf.Dict
		switch existing := resources["Properties"].(type) {
		case nil:
			properties = pdf.Dict{}
			resources["Properties"] = properties
		case pdf.Dict:
			properties = existing
		default:
			return nil, nil, fmt.Errorf("resource slot %q holds %T, not a dictionary",
				"Properties", existing)
		}
		for i, ref := range ocgRefs {
			properties[ocgName(i)] = ref
		}
	}

	streams := make([][]byte, 0, len(p.layers))
	for i, layer := range p.layers {
		if layer.Err != nil {
			return nil, nil, fmt.Errorf("layer %q: %w", layer.Name(), layer.Err)
		}

		buf := &bytes.Buffer{}
		fmt.Fprintf(buf, "/OC /%s BDC\nq\n", ocgName(i))
		buf.Write(layer.Bytes())
		buf.WriteString("Q\nEMC\n")
		streams = append(streams, buf.Bytes())
	}

	return resources, streams, nil
}

// ocgName returns the resource name of the i-th layer's optional content
// group within one page.
func ocgName(i int) pdf.Name {
	return pdf.Name("MC" + strconv.Itoa(i))
}
