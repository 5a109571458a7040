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

// hdpcRows builds the H x (K+S) HDPC submatrix (§4.5). Each of the K+S
// columns is assigned the j-th value of the Gray sequence with H' bits
// set; row h's entry in that column is bit h of the assigned value.
func hdpcRows(p *Params) []row {
	cols := p.K + p.S
	seq := graySequence(cols, p.HPrime)

	rows := make([]row, p.H)
	for h := range rows {
		rows[h] = newRow(cols)
		for j := 0; j < cols; j++ {
			if bitSet(seq[j], uint(h)) {
				rows[h].set(j)
			}
		}
	}
	return rows
}
