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

// assembleMatrix builds the constraint matrix A (§4.6): S LDPC rows,
// then H HDPC rows, then one LT row per received ESI in insertion
// order. Every row has width L.
func assembleMatrix(p *Params, esis []int) []row {
	a := make([]row, 0, p.S+p.H+len(esis))

	ldpc := ldpcRows(p)
	for _, r := range ldpc {
		wide := newRow(p.L)
		copyBits(wide, r, 0)
		a = append(a, wide)
	}
	for i := range ldpc {
		a[i].set(p.K + i) // S x S identity
	}

	hdpc := hdpcRows(p)
	for h, r := range hdpc {
		wide := newRow(p.L)
		copyBits(wide, r, 0)
		wide.set(p.K + p.S + h) // H x H identity
		a = append(a, wide)
	}

	for _, esi := range esis {
		a = append(a, ltRow(p, esi))
	}
	return a
}

// copyBits copies every set bit of src (columns [0, src.cols)) into
// dst starting at column offset.
func copyBits(dst, src row, offset int) {
	for c := 0; c < src.cols; c++ {
		if src.get(c) {
			dst.set(offset + c)
		}
	}
}
