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

// xorOp is one recorded row-XOR, addressed by the ORIGINAL row indices
// it involves (not by the matrix positions the solver was looking at
// when it fired) so the log can be replayed directly against an
// unpermuted payload buffer D: D[Tgt] ^= D[Src].
type xorOp struct {
	Src, Tgt int
}

// schedule is the solver's output: an append-only log of the row-XORs
// applied while reducing A to the identity, plus the row and column
// permutations that tell a caller which original row/column ended up
// at which final position. Row and column swaps are never replayed
// directly against payload data — they only update the logical d/c
// position maps; XORs alone touch the payload buffer, and they are
// translated to original-row addressing at the moment they are
// recorded so replay order and addressing stay correct regardless of
// how many swaps happened before or after.
type schedule struct {
	l, m int
	xors []xorOp

	// row holds, for each current matrix position p, the original row
	// index whose content now sits there (row[p] == p initially).
	row []int
	// col holds, for each current matrix position p, the original
	// column index whose content now sits there (col[p] == p initially).
	col []int
}

func newSchedule(l, m int) *schedule {
	s := &schedule{l: l, m: m, row: make([]int, m), col: make([]int, l)}
	for i := range s.row {
		s.row[i] = i
	}
	for i := range s.col {
		s.col[i] = i
	}
	return s
}

// xor records that the row currently at position tgtPos was XORed with
// the row currently at position srcPos.
func (s *schedule) xor(tgtPos, srcPos int) {
	s.xors = append(s.xors, xorOp{Src: s.row[srcPos], Tgt: s.row[tgtPos]})
}

// swapRow records that the rows at positions r1 and r2 were exchanged.
func (s *schedule) swapRow(r1, r2 int) {
	s.row[r1], s.row[r2] = s.row[r2], s.row[r1]
}

// swapColumn records that the columns at positions c1 and c2 were
// exchanged.
func (s *schedule) swapColumn(c1, c2 int) {
	s.col[c1], s.col[c2] = s.col[c2], s.col[c1]
}

// d returns the final row index vector: d[p] is the original row whose
// (post-XOR) content belongs at identity position p, for p in [0, l).
func (s *schedule) d() []int {
	return s.row[:s.l]
}

// c returns the final column index vector: c[p] is the original column
// (intermediate symbol index) that identity position p represents.
func (s *schedule) c() []int {
	return s.col
}
