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

// solve reduces a (in place) to the L x L identity matrix, recording
// every row-XOR and row/column swap it performs. a's length is the
// total row count M = S + H + N; on success the returned schedule's
// d()/c() vectors resolve intermediate symbols from a payload buffer
// built in the same row order a was given.
func solve(p *Params, a []row, usePrepass bool) (*schedule, error) {
	m := len(a)
	l := p.L
	sched := newSchedule(l, m)

	oDegrees := make([]int, m)
	for idx, r := range a {
		oDegrees[idx] = r.popCount(0, r.cols)
	}

	if usePrepass {
		prepass(a, sched)
	}

	i, u := 0, 0
	for i+u < l {
		r, rowsWithR := rowsWithMinR(a, m, i, u, l)
		if r < 0 {
			return nil, &DecodingScheduleError{Reason: "No nonzero row to choose from v"}
		}

		var chosen int
		if r == 2 {
			chosen = rowFromGraph(a, i, u, l, rowsWithR)
		} else {
			chosen = minDegreeRow(oDegrees, rowsWithR)
		}

		if chosen != i {
			a[i], a[chosen] = a[chosen], a[i]
			oDegrees[i], oDegrees[chosen] = oDegrees[chosen], oDegrees[i]
			sched.swapRow(i, chosen)
		}

		alignColumns(a, sched, i, u, l)

		for row := i + 1; row < m; row++ {
			if a[row].get(i) {
				a[row].xorInto(a[i])
				sched.xor(row, i)
			}
		}

		i++
		u += r - 1
	}

	for col := l - u; col < l; col++ {
		if col >= m || !a[col].get(col) {
			found := -1
			for row := col + 1; row < m; row++ {
				if a[row].get(col) {
					found = row
					break
				}
			}
			if found < 0 {
				return nil, &DecodingScheduleError{Reason: "U lower is of less rank than " + itoa(u)}
			}
			a[col], a[found] = a[found], a[col]
			oDegrees[col], oDegrees[found] = oDegrees[found], oDegrees[col]
			sched.swapRow(col, found)
		}
		for row := col + 1; row < m; row++ {
			if a[row].get(col) {
				a[row].xorInto(a[col])
				sched.xor(row, col)
			}
		}
	}

	for col := l - 1; col >= l-u; col-- {
		for row := i; row < col; row++ {
			if a[row].get(col) {
				a[row].xorInto(a[col])
				sched.xor(row, col)
			}
		}
	}

	a = a[:l]

	for row := 0; row < i; row++ {
		for col := l - u; col < l; col++ {
			if a[row].get(col) {
				a[row].xorInto(a[col])
				sched.xor(row, col)
			}
		}
	}

	return sched, nil
}

// rowsWithMinR scans rows [i, m) for the minimum nonzero popcount
// restricted to columns [i, l-u), returning that count (-1 if every
// row in range is zero there) and the rows achieving it.
func rowsWithMinR(a []row, m, i, u, l int) (int, []int) {
	minR := -1
	var rows []int
	for rowIdx := i; rowIdx < m; rowIdx++ {
		cnt := a[rowIdx].popCount(i, l-u)
		if cnt == 0 {
			continue
		}
		switch {
		case minR == -1 || cnt < minR:
			minR = cnt
			rows = []int{rowIdx}
		case cnt == minR:
			rows = append(rows, rowIdx)
		}
	}
	return minR, rows
}

// rowFromGraph handles the r == 2 tie-break: every candidate row has
// exactly two ones in V, forming an edge between those two column
// indices. The row chosen is an edge of the largest connected
// component.
func rowFromGraph(a []row, i, u, l int, rows []int) int {
	ds := newDisjointSet()
	for _, rowIdx := range rows {
		v1, v2 := -1, -1
		for col := i; col < l-u; col++ {
			if a[rowIdx].get(col) {
				if v1 == -1 {
					v1 = col
				} else {
					v2 = col
					break
				}
			}
		}
		ds.addEdge(v1, v2, rowIdx)
	}
	return ds.largestComponentRow()
}

// minDegreeRow picks, among rows, the one with the smallest original
// (construction-time) degree.
func minDegreeRow(oDegrees []int, rows []int) int {
	best, bestDeg := rows[0], oDegrees[rows[0]]
	for _, r := range rows[1:] {
		if oDegrees[r] < bestDeg {
			bestDeg = oDegrees[r]
			best = r
		}
	}
	return best
}

// alignColumns arranges row i so its first one-bit lands on the
// diagonal (column i) and the rest of its ones in V pack against the
// right edge of the live submatrix, columns [l-u-(r-1), l-u).
func alignColumns(a []row, sched *schedule, i, u, l int) {
	var ones []int
	for col := i; col < l-u; col++ {
		if a[i].get(col) {
			ones = append(ones, col)
		}
	}

	if !a[i].get(i) {
		last := ones[len(ones)-1]
		ones = ones[:len(ones)-1]
		swapColumnsRecorded(a, sched, i, last)
	} else {
		removeValue(&ones, i)
	}

	for col := l - u - 1; col > i && len(ones) > 0; col-- {
		if !a[i].get(col) {
			last := ones[len(ones)-1]
			ones = ones[:len(ones)-1]
			swapColumnsRecorded(a, sched, col, last)
		} else {
			removeValue(&ones, col)
		}
	}
}

func removeValue(s *[]int, v int) {
	for idx, x := range *s {
		if x == v {
			*s = append((*s)[:idx], (*s)[idx+1:]...)
			return
		}
	}
}

func swapColumnsRecorded(a []row, sched *schedule, c1, c2 int) {
	if c1 == c2 {
		return
	}
	swapColumns(a, c1, c2)
	sched.swapColumn(c1, c2)
}
