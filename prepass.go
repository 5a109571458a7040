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

import "math/bits"

// prepass makes a single pass over unordered row pairs (i, j), i < j.
// Whenever XORing row i into row j would leave row j with at least three
// fewer ones than it has now, the XOR is performed and recorded. This
// never changes the rank of a, only trims some of the main solver's
// eventual work; it is a heuristic, not a correctness-bearing step
// (see the "use_prepass" open question carried from the original
// design notes).
func prepass(a []row, sched *schedule) {
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			count := a[j].popCount(0, a[j].cols)
			newCount := popCountXor(a[i], a[j])
			if newCount+2 < count {
				a[j].xorInto(a[i])
				sched.xor(j, i)
			}
		}
	}
}

// popCountXor returns popcount(r1 ^ r2) without mutating either row.
func popCountXor(r1, r2 row) int {
	n := 0
	for w := range r1.words {
		n += bits.OnesCount64(r1.words[w] ^ r2.words[w])
	}
	return n
}
