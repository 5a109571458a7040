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

func TestTripleIsPureAndDeterministic(t *testing.T) {
	p, err := deriveParams(10)
	require.NoError(t, err)

	d1, a1, b1 := triple(p, 5)
	d2, a2, b2 := triple(p, 5)
	assert.Equal(t, d1, d2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	assert.GreaterOrEqual(t, a1, uint32(1))
	assert.Less(t, a1, uint32(p.LPrime))
	assert.Less(t, b1, uint32(p.LPrime))
}

func TestLTRowWidthAndDegree(t *testing.T) {
	p, err := deriveParams(10)
	require.NoError(t, err)

	for esi := 0; esi < 20; esi++ {
		r := ltRow(p, esi)
		assert.Equal(t, p.L, r.cols)
		d, _, _ := triple(p, esi)
		assert.LessOrEqual(t, r.popCount(0, r.cols), d)
	}
}
