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

// ldpcRows builds the S x K LDPC submatrix (§4.4): column i sets three
// rows, b = i mod S, then b += a twice more (mod S), where
// a = 1 + (i/S mod (S-1)).
func ldpcRows(p *Params) []row {
	rows := make([]row, p.S)
	for i := range rows {
		rows[i] = newRow(p.K)
	}
	for i := 0; i < p.K; i++ {
		a := 1 + (i/p.S)%(p.S-1)
		b := i % p.S
		rows[b].set(i)
		b = (b + a) % p.S
		rows[b].set(i)
		b = (b + a) % p.S
		rows[b].set(i)
	}
	return rows
}
