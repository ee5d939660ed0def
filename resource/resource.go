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

// Package resource implements the embed-once/register-per-page protocol for
// shared PDF resources.
//
// Resource objects (fonts, images, graphics states, patterns) are embedded
// into the document-wide object graph exactly once.  Resource names are
// scoped to one page's resource dictionary: registering an embedded resource
// on a page allocates a dense name within the resource's category
// sub-dictionary.  The same embedded resource can be registered on any number
// of pages.
package resource

import (
	"fmt"
	"strconv"

	"github.com/ahas/pdf"
)

// Embeddable is a resource which can be inserted into a PDF object graph.
// Implementations exist for fonts, image XObjects, extended graphics states
// and patterns.
type Embeddable interface {
	// ResourceCategory returns the name of the resource-dictionary slot the
	// resource belongs to, e.g. "Font" or "XObject".
	ResourceCategory() pdf.Name

	// EmbedResource writes the PDF representation of the resource into the
	// object graph and returns a reference to it.
	EmbedResource(f *pdf.File) (pdf.Reference, error)
}

// Embedded ties a resource to the object reference allocated for it in one
// document's object graph.  An Embedded value must be created at most once
// per logical resource: embedding the same resource twice creates two
// distinct PDF objects.  Share the *Embedded pointer instead.
type Embedded[T Embeddable] struct {
	Res T
	Ref pdf.Reference
}

// Embed inserts the PDF representation of res into the object graph and
// returns a handle which can be registered on any page of the same document.
func Embed[T Embeddable](f *pdf.File, res T) (*Embedded[T], error) {
	ref, err := res.EmbedResource(f)
	if err != nil {
		return nil, err
	}
	return &Embedded[T]{Res: res, Ref: ref}, nil
}

// Registered is an embedded resource together with the name index assigned
// to it in one page's resource dictionary.
type Registered[T Embeddable] struct {
	*Embedded[T]
	Index int
}

// Name returns the name under which the resource can be used from the
// page's content streams.
func (r *Registered[T]) Name() pdf.Name {
	return pdf.Name("R" + strconv.Itoa(r.Index))
}

// Register inserts emb into the category sub-dictionary of a page's
// resource dictionary and returns the assigned name.  Registration is
// idempotent: registering the same Embedded twice on one page yields the
// same name and leaves the dictionary unchanged.  Names are allocated
// densely ("R0", "R1", ...) per category per page.
//
// Register fails if the category slot exists but does not hold a
// dictionary.
func Register[T Embeddable](resources pdf.Dict, emb *Embedded[T]) (*Registered[T], error) {
	key := emb.Res.ResourceCategory()

	var sub pdf.Dict
	switch existing := resources[key].(type) {
	case nil:
		sub = pdf.Dict{}
		resources[key] = sub
	case pdf.Dict:
		sub = existing
	default:
		return nil, fmt.Errorf("resource slot %q holds %T, not a dictionary", key, existing)
	}

	for name, obj := range sub {
		ref, ok := obj.(pdf.Reference)
		if ok && ref == emb.Ref {
			idx, err := strconv.Atoi(string(name[1:]))
			if err != nil {
				return nil, fmt.Errorf("malformed resource name %q", name)
			}
			return &Registered[T]{Embedded: emb, Index: idx}, nil
		}
	}

	idx := len(sub)
	sub[pdf.Name("R"+strconv.Itoa(idx))] = emb.Ref
	return &Registered[T]{Embedded: emb, Index: idx}, nil
}
