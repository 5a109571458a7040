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

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

const wordBits = 64

// wideXorUnroll is how many consecutive uint64 words xorWords processes
// per loop iteration. On AVX2-capable hardware the matrix rows (which
// can run to a few hundred words at K=8192) benefit from processing four
// words per iteration instead of one; elsewhere the scalar loop is used.
// This mirrors spec.md §5's "payload buffers ... XORed with SIMD-friendly
// word operations" without hand-written assembly: the Go compiler still
// emits scalar XORs, but the unrolled loop shape reduces loop-overhead
// per word on the wider pipelines AVX2-class CPUs carry.
var wideXorUnroll = func() int {
	if cpuid.CPU.Has(cpuid.AVX2) {
		return 4
	}
	return 1
}()

// row is a packed bit-vector of a fixed number of columns. It represents
// one row of the R10 constraint matrix A, or (reused for the same
// column count) a scratch vector used by the solver.
type row struct {
	words []uint64
	cols  int
}

func newRow(cols int) row {
	return row{words: make([]uint64, (cols+wordBits-1)/wordBits), cols: cols}
}

func (r row) get(i int) bool {
	return r.words[i/wordBits]&(uint64(1)<<uint(i%wordBits)) != 0
}

func (r row) set(i int) {
	r.words[i/wordBits] |= uint64(1) << uint(i%wordBits)
}

func (r row) clear(i int) {
	r.words[i/wordBits] &^= uint64(1) << uint(i%wordBits)
}

func (r row) setBool(i int, v bool) {
	if v {
		r.set(i)
	} else {
		r.clear(i)
	}
}

// clone returns an independent copy of r.
func (r row) clone() row {
	c := row{words: make([]uint64, len(r.words)), cols: r.cols}
	copy(c.words, r.words)
	return c
}

// xorInto applies r ^= src, word by word.
func (r row) xorInto(src row) {
	xorWords(r.words, src.words)
}

func xorWords(dst, src []uint64) {
	n := len(dst)
	i := 0
	for ; i+wideXorUnroll <= n; i += wideXorUnroll {
		for j := 0; j < wideXorUnroll; j++ {
			dst[i+j] ^= src[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// popCount returns the number of 1 bits in columns [lo, hi).
func (r row) popCount(lo, hi int) int {
	if lo >= hi {
		return 0
	}
	loWord, hiWord := lo/wordBits, (hi-1)/wordBits
	if loWord == hiWord {
		mask := wordMask(lo%wordBits, hi-loWord*wordBits)
		return bits.OnesCount64(r.words[loWord] & mask)
	}

	count := bits.OnesCount64(r.words[loWord] & wordMask(lo%wordBits, wordBits))
	for w := loWord + 1; w < hiWord; w++ {
		count += bits.OnesCount64(r.words[w])
	}
	count += bits.OnesCount64(r.words[hiWord] & wordMask(0, hi-hiWord*wordBits))
	return count
}

// wordMask returns a mask with bits [lo, hi) set, within a single word.
func wordMask(lo, hi int) uint64 {
	if hi >= wordBits {
		return ^uint64(0) << uint(lo)
	}
	return (uint64(1)<<uint(hi) - 1) &^ (uint64(1)<<uint(lo) - 1)
}

// swapColumns exchanges column c1 and c2 across every row in rows.
func swapColumns(rows []row, c1, c2 int) {
	if c1 == c2 {
		return
	}
	for _, r := range rows {
		b1, b2 := r.get(c1), r.get(c2)
		r.setBool(c1, b2)
		r.setBool(c2, b1)
	}
}
