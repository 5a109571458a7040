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
)

func TestRowSetGetClear(t *testing.T) {
	r := newRow(130)
	r.set(0)
	r.set(63)
	r.set(64)
	r.set(129)
	for _, i := range []int{0, 63, 64, 129} {
		assert.True(t, r.get(i), "bit %d should be set", i)
	}
	assert.False(t, r.get(1))
	r.clear(64)
	assert.False(t, r.get(64))
}

func TestRowPopCountRanges(t *testing.T) {
	r := newRow(200)
	for _, i := range []int{2, 10, 63, 64, 100, 150, 199} {
		r.set(i)
	}
	assert.Equal(t, 7, r.popCount(0, 200))
	assert.Equal(t, 3, r.popCount(0, 64))
	assert.Equal(t, 3, r.popCount(60, 101))
	assert.Equal(t, 0, r.popCount(101, 101))
}

func TestRowXorInto(t *testing.T) {
	a := newRow(70)
	b := newRow(70)
	a.set(5)
	a.set(69)
	b.set(5)
	b.set(10)
	a.xorInto(b)
	assert.False(t, a.get(5))
	assert.True(t, a.get(10))
	assert.True(t, a.get(69))
}

func TestSwapColumns(t *testing.T) {
	r1 := newRow(10)
	r2 := newRow(10)
	r1.set(2)
	r2.set(7)
	rows := []row{r1, r2}
	swapColumns(rows, 2, 7)
	assert.False(t, rows[0].get(2))
	assert.True(t, rows[0].get(7))
	assert.True(t, rows[1].get(2))
	assert.False(t, rows[1].get(7))
}
