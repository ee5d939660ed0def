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
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"
)

// File is an in-memory PDF object graph.  Objects are accumulated during
// document construction and serialized in one pass by [File.WriteTo].
type File struct {
	// Root is the reference to the document catalog.
	Root Reference

	// Info is the reference to the document information dictionary.
	Info Reference

	// ID holds the two binary strings of the file identifier.
	ID [2]String

	version Version
	objects map[Reference]Object
	lastRef uint32
}

// NewFile creates an empty object graph for a PDF file with the given
// version.
func NewFile(v Version) *File {
	return &File{
		version: v,
		objects: map[Reference]Object{},
	}
}

// Version returns the PDF version of the file.
func (f *File) Version() Version {
	return f.version
}

// SetVersion changes the PDF version written to the file header.
func (f *File) SetVersion(v Version) {
	f.version = v
}

// Alloc allocates an object number for an indirect object.
func (f *File) Alloc() Reference {
	for {
		f.lastRef++
		ref := NewReference(f.lastRef, 0)
		if _, ok := f.objects[ref]; !ok {
			return ref
		}
	}
}

// Put stores an object under a previously allocated reference.
// A nil object removes the entry.
func (f *File) Put(ref Reference, obj Object) {
	if obj == nil {
		delete(f.objects, ref)
	} else {
		f.objects[ref] = obj
	}
}

// Get returns the object stored under ref, or nil.
func (f *File) Get(ref Reference) Object {
	return f.objects[ref]
}

// AddObject allocates a reference, stores obj under it and returns the
// reference.
func (f *File) AddObject(obj Object) Reference {
	ref := f.Alloc()
	f.objects[ref] = obj
	return ref
}

// AddStream stores a stream with the given dictionary and data.  If
// compressible is set, the stream may be flate-compressed by
// [File.Optimize]; page content streams and font programs must pass false.
func (f *File) AddStream(dict Dict, data []byte, compressible bool) Reference {
	if dict == nil {
		dict = Dict{}
	}
	return f.AddObject(&Stream{
		Dict:        dict,
		Data:        data,
		CanCompress: compressible,
	})
}

// Count returns the number of objects currently in the graph.
func (f *File) Count() int {
	return len(f.objects)
}

// Optimize prunes objects which are not reachable from the catalog or the
// information dictionary, removes zero-length streams, and flate-compresses
// streams which are marked compressible and not yet filtered.
func (f *File) Optimize() error {
	if f.Root != 0 {
		reachable := map[Reference]bool{}
		f.mark(f.Root, reachable)
		f.mark(f.Info, reachable)
		for ref := range f.objects {
			if !reachable[ref] {
				delete(f.objects, ref)
			}
		}
	}

	for ref, obj := range f.objects {
		s, ok := obj.(*Stream)
		if !ok {
			continue
		}
		if len(s.Data) == 0 {
			delete(f.objects, ref)
			continue
		}
		if !s.CanCompress {
			continue
		}
		if _, hasFilter := s.Dict["Filter"]; hasFilter {
			continue
		}

		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		if _, err := zw.Write(s.Data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		if buf.Len() >= len(s.Data) {
			continue
		}

		dict := make(Dict, len(s.Dict)+2)
		for k, v := range s.Dict {
			dict[k] = v
		}
		dict["Filter"] = Name("FlateDecode")
		dict["Length"] = Integer(buf.Len())
		f.objects[ref] = &Stream{Dict: dict, Data: buf.Bytes()}
	}
	return nil
}

func (f *File) mark(ref Reference, seen map[Reference]bool) {
	if ref == 0 || seen[ref] {
		return
	}
	seen[ref] = true
	f.markObj(f.objects[ref], seen)
}

func (f *File) markObj(obj Object, seen map[Reference]bool) {
	switch x := obj.(type) {
	case Reference:
		f.mark(x, seen)
	case Dict:
		for _, v := range x {
			f.markObj(v, seen)
		}
	case Array:
		for _, v := range x {
			f.markObj(v, seen)
		}
	case *Stream:
		f.markObj(x.Dict, seen)
	}
}

// WriteTo serializes the object graph, writing the file header, all indirect
// objects, the cross-reference table and the trailer.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f.Root == 0 {
		return 0, errors.New("missing document catalog")
	}

	out := &posWriter{w: w}

	_, err := fmt.Fprintf(out, "%%PDF-1.%d\n%%\x80\x80\x80\x80\n", f.version)
	if err != nil {
		return out.pos, err
	}

	refs := maps.Keys(f.objects)
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Number() < refs[j].Number()
	})

	offsets := make(map[uint32]int64, len(refs))
	for _, ref := range refs {
		offsets[ref.Number()] = out.pos
		_, err = fmt.Fprintf(out, "%d %d obj\n", ref.Number(), ref.Generation())
		if err != nil {
			return out.pos, err
		}
		err = f.objects[ref].PDF(out)
		if err != nil {
			return out.pos, err
		}
		_, err = out.Write([]byte("\nendobj\n"))
		if err != nil {
			return out.pos, err
		}
	}

	xrefPos := out.pos
	err = f.writeXRefTable(out, refs, offsets)
	if err != nil {
		return out.pos, err
	}

	trailer := Dict{
		"Size": Integer(f.maxNumber(refs) + 1),
		"Root": f.Root,
	}
	if f.Info != 0 {
		trailer["Info"] = f.Info
	}
	if len(f.ID[0]) > 0 {
		trailer["ID"] = Array{f.ID[0], f.ID[1]}
	}

	_, err = out.Write([]byte("trailer\n"))
	if err != nil {
		return out.pos, err
	}
	err = trailer.PDF(out)
	if err != nil {
		return out.pos, err
	}
	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	return out.pos, err
}

func (f *File) maxNumber(refs []Reference) uint32 {
	if len(refs) == 0 {
		return 0
	}
	return refs[len(refs)-1].Number()
}

// writeXRefTable writes a classic cross-reference table.  Object numbers may
// have gaps after pruning, so the table is written in subsections.
func (f *File) writeXRefTable(out io.Writer, refs []Reference, offsets map[uint32]int64) error {
	_, err := fmt.Fprint(out, "xref\n")
	if err != nil {
		return err
	}

	// the free-list head at object number 0 starts the first subsection
	numbers := make([]uint32, 0, len(refs)+1)
	numbers = append(numbers, 0)
	for _, ref := range refs {
		numbers = append(numbers, ref.Number())
	}

	for i := 0; i < len(numbers); {
		j := i + 1
		for j < len(numbers) && numbers[j] == numbers[j-1]+1 {
			j++
		}
		_, err = fmt.Fprintf(out, "%d %d\n", numbers[i], j-i)
		if err != nil {
			return err
		}
		for _, num := range numbers[i:j] {
			if num == 0 {
				_, err = fmt.Fprint(out, "0000000000 65535 f\r\n")
			} else {
				_, err = fmt.Fprintf(out, "%010d 00000 n\r\n", offsets[num])
			}
			if err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
