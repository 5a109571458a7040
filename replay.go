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

// replay builds the L intermediate symbols by applying sched's XOR log
// to a payload buffer seeded with zero LDPC/HDPC rows followed by the
// received payloads in insertion order, then resolving the schedule's
// row/column permutation (§4.10).
func replay(p *Params, sched *schedule, payloads [][]byte) [][]byte {
	m := p.S + p.H + len(payloads)
	w := len(payloads[0])

	d := make([][]byte, m)
	for row := 0; row < p.S+p.H; row++ {
		d[row] = make([]byte, w)
	}
	for i, payload := range payloads {
		d[p.S+p.H+i] = append([]byte(nil), payload...)
	}

	for _, op := range sched.xors {
		xorBytesInto(d[op.Tgt], d[op.Src])
	}

	dVec, cVec := sched.d(), sched.c()
	intermediate := make([][]byte, p.L)
	for pos := 0; pos < p.L; pos++ {
		intermediate[cVec[pos]] = d[dVec[pos]]
	}
	return intermediate
}

func xorBytesInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
