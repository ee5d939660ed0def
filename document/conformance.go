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

// Conformance is a PDF conformance level.  The level controls which
// auxiliary structures are emitted at save time: PDF/X levels attach an
// output intent with an ICC profile, PDF/A levels additionally require an
// XMP metadata stream.
type Conformance int

const (
	// ConformanceNone emits a plain PDF without output intents or XMP
	// metadata.
	ConformanceNone Conformance = iota

	ConformanceX3_2002
	ConformanceX3_2003
	ConformanceA1B_2005
	ConformanceA2B_2011
)

// Identifier returns the standard's name, or "" for ConformanceNone.
func (c Conformance) Identifier() string {
	switch c {
	case ConformanceX3_2002:
		return "PDF/X-3:2002"
	case ConformanceX3_2003:
		return "PDF/X-3:2003"
	case ConformanceA1B_2005:
		return "PDF/A-1b:2005"
	case ConformanceA2B_2011:
		return "PDF/A-2b:2011"
	default:
		return ""
	}
}

// RequiresICCProfile reports whether documents at this level must carry an
// output intent with an ICC profile.
func (c Conformance) RequiresICCProfile() bool {
	return c != ConformanceNone
}

// RequiresXMPMetadata reports whether documents at this level must carry
// an XMP metadata stream.
func (c Conformance) RequiresXMPMetadata() bool {
	switch c {
	case ConformanceA1B_2005, ConformanceA2B_2011:
		return true
	default:
		return false
	}
}

// CheckConformance validates the document against its conformance level.
//
// TODO: validate that an ICC profile is present when the level requires
// one.  Until then this always succeeds.
func (d *Document) CheckConformance() error {
	return nil
}
