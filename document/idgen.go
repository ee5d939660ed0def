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

import "strconv"

// IDSource generates document and instance identifiers.  The generator
// does not need to be cryptographically strong, only distinct across calls,
// so a simple xorshift sequence is used.  Each Document carries its own
// source; passing the same seeded source to two documents makes their
// identifiers reproducible, which the tests rely on.
type IDSource struct {
	state uint64
}

// NewIDSource returns a generator starting from the given seed.
func NewIDSource(seed uint64) *IDSource {
	return &IDSource{state: seed}
}

func (s *IDSource) next() uint64 {
	x := s.state
	s.state += 21
	x ^= x << 21
	x ^= x >> 35
	x ^= x << 4
	return x
}

// ID returns a 32-character identifier string.  The characters are drawn
// from 'A' to 'J', one per decimal digit of the generator output.
func (s *IDSource) ID() string {
	buf := make([]byte, 0, 32)
	for len(buf) < 32 {
		for _, c := range strconv.FormatUint(s.next(), 10) {
			if len(buf) >= 32 {
				break
			}
			buf = append(buf, 'A'+byte(c-'0'))
		}
	}
	return string(buf)
}
