// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package raptor

import "encoding/binary"

// ltEncode produces the encoding symbol for esi by XORing together the
// intermediate symbols its LT row selects (§4.11). Colliding columns
// cancel automatically: XORing the same intermediate symbol in twice
// is a no-op, which is exactly the bit-cancellation the row-building
// rule in §4.3 describes.
func ltEncode(p *Params, intermediate [][]byte, esi int) []byte {
	w := len(intermediate[0])
	result := make([]byte, w)
	for _, col := range ltColumns(p, esi) {
		xorBytesInto(result, intermediate[col])
	}
	return result
}

// optimalESIs generates the first n entries of the optimal-ESI
// sequence: ESIs whose LT row has the fewest ones not yet spent,
// skipping any row identical to one already present in the precode
// section or already chosen. This mirrors gen_optimal_symbols in the
// retrieved Python original, adapted to search per-call rather than
// populate a static table — the table spec.md's external interfaces
// section calls "optional" and this build computes on demand instead
// of shipping a precomputed annex.
func optimalESIs(p *Params, n int) []int {
	seen := make(map[string]bool)
	for _, r := range assembleMatrix(p, nil) {
		seen[rowKey(r)] = true
	}

	result := make([]int, 0, n)
	xorsTarget := 1
	esi := 0
	sinceProgress := 0
	for len(result) < n {
		r := ltRow(p, esi)
		key := rowKey(r)
		if r.popCount(0, r.cols) == xorsTarget && !seen[key] {
			seen[key] = true
			result = append(result, esi)
		}
		esi++
		sinceProgress++
		if sinceProgress == 5000 {
			sinceProgress = 0
			esi = 0
			xorsTarget++
		}
	}
	return result
}

// rowKey returns a comparable byte-string encoding of r's bits,
// suitable as a map key.
func rowKey(r row) string {
	buf := make([]byte, len(r.words)*8)
	for i, w := range r.words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}
