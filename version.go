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

// Version represents a version of the PDF standard.  The value is the minor
// version of the 1.x series, as written in the file header.
type Version int

// Constants for the supported PDF versions.
const (
	V1_3 Version = 3
	V1_4 Version = 4
	V1_5 Version = 5
	V1_6 Version = 6
	V1_7 Version = 7
)

func (v Version) String() string {
	return "1." + string(rune('0'+v))
}
