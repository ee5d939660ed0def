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

// Package pdf implements the low-level object model for creating PDF files.
//
// A PDF file is a container for a graph of objects (typically Dictionaries
// and Streams).  A [File] holds such a graph in memory: objects are added
// with [File.Put], [File.AddObject] and [File.AddStream], and the complete
// file is serialised with [File.WriteTo]:
//
//	f := pdf.NewFile(pdf.V1_3)
//	f.Root = f.AddObject(pdf.Dict{
//	    "Type": pdf.Name("Catalog"),
//	})
//	err := f.WriteTo(w)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Most users will not use this package directly, but instead construct
// documents with the higher-level document, graphics and font packages.
package pdf
