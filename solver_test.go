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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func esiRange(n int) []int {
	esis := make([]int, n)
	for i := range esis {
		esis[i] = i
	}
	return esis
}

func TestSolveSucceedsWithExactlyKSymbols(t *testing.T) {
	p, err := deriveParams(10)
	require.NoError(t, err)

	a := assembleMatrix(p, esiRange(10))
	sched, err := solve(p, a, true)
	require.NoError(t, err)
	assert.Len(t, sched.d(), p.L)
	assert.Len(t, sched.c(), p.L)
}

func TestSolveFailsWithTooFewSymbols(t *testing.T) {
	p, err := deriveParams(10)
	require.NoError(t, err)

	a := assembleMatrix(p, esiRange(9))
	_, err = solve(p, a, true)
	require.Error(t, err)
	var serr *DecodingScheduleError
	require.ErrorAs(t, err, &serr)
}

func TestScheduleIndexVectorsArePermutations(t *testing.T) {
	p, err := deriveParams(10)
	require.NoError(t, err)

	a := assembleMatrix(p, esiRange(10))
	sched, err := solve(p, a, true)
	require.NoError(t, err)

	seenC := make(map[int]bool)
	for _, v := range sched.c() {
		assert.False(t, seenC[v], "column permutation must not repeat %d", v)
		seenC[v] = true
	}
	seenD := make(map[int]bool)
	for _, v := range sched.d() {
		assert.False(t, seenD[v], "row permutation must not repeat %d", v)
		seenD[v] = true
	}
}
