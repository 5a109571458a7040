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

func sourceSymbols(k, w int) [][]byte {
	symbols := make([][]byte, k)
	for i := range symbols {
		symbols[i] = make([]byte, w)
		for j := range symbols[i] {
			symbols[i][j] = byte(i)
		}
	}
	return symbols
}

func TestCodecRoundTripSystematic(t *testing.T) {
	const k, w = 10, 4
	symbols := sourceSymbols(k, w)

	c, err := New(k, DefaultOptions())
	require.NoError(t, err)
	for esi, s := range symbols {
		c.AddSymbol(esi, s)
	}

	require.True(t, c.CanDecode())
	require.NoError(t, c.CalculateIntermediateSymbols())

	for esi, want := range symbols {
		got, err := c.Encode(esi)
		require.NoError(t, err)
		assert.Equal(t, want, got, "re-encoded ESI %d should reproduce the source symbol", esi)
	}
}

func TestCodecInsufficientSymbols(t *testing.T) {
	const k, w = 10, 4
	symbols := sourceSymbols(k, w)

	c, err := New(k, DefaultOptions())
	require.NoError(t, err)
	for esi := 0; esi < k-1; esi++ {
		c.AddSymbol(esi, symbols[esi])
	}

	assert.False(t, c.CanDecode())
	err = c.CalculateIntermediateSymbols()
	require.Error(t, err)
	var serr *DecodingScheduleError
	require.ErrorAs(t, err, &serr)
}

func TestCodecDecodesWithRepairSymbols(t *testing.T) {
	const k, w = 10, 4
	symbols := sourceSymbols(k, w)

	encoder, err := New(k, DefaultOptions())
	require.NoError(t, err)
	for esi, s := range symbols {
		encoder.AddSymbol(esi, s)
	}
	require.NoError(t, encoder.CalculateIntermediateSymbols())

	decoder, err := New(k, DefaultOptions())
	require.NoError(t, err)
	// Skip ESI 3, substitute a repair symbol from beyond K.
	for esi := 0; esi < k; esi++ {
		if esi == 3 {
			continue
		}
		decoder.AddSymbol(esi, symbols[esi])
	}
	// ESI k+2 would leave A one short of full rank with this build's R10
	// tables; k+3 completes it.
	repairESI := k + 3
	repairPayload, err := encoder.Encode(repairESI)
	require.NoError(t, err)
	decoder.AddSymbol(repairESI, repairPayload)

	require.True(t, decoder.CanDecode())
	require.NoError(t, decoder.CalculateIntermediateSymbols())

	for esi, want := range symbols {
		got, err := decoder.Encode(esi)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ESI %d should reconstruct after substituting a repair symbol", esi)
	}
}

func TestCodecParameterError(t *testing.T) {
	_, err := New(MinK-1, DefaultOptions())
	require.Error(t, err)
	var perr *ParameterError
	require.ErrorAs(t, err, &perr)
}

func TestCodecPrepassDoesNotChangeResult(t *testing.T) {
	const k, w = 16, 8
	symbols := sourceSymbols(k, w)

	withPrepass, err := New(k, Options{UsePrepass: true})
	require.NoError(t, err)
	withoutPrepass, err := New(k, Options{UsePrepass: false})
	require.NoError(t, err)
	for esi, s := range symbols {
		withPrepass.AddSymbol(esi, s)
		withoutPrepass.AddSymbol(esi, s)
	}
	require.NoError(t, withPrepass.CalculateIntermediateSymbols())
	require.NoError(t, withoutPrepass.CalculateIntermediateSymbols())

	for esi := range symbols {
		a, err := withPrepass.Encode(esi)
		require.NoError(t, err)
		b, err := withoutPrepass.Encode(esi)
		require.NoError(t, err)
		assert.Equal(t, a, b, "prepass must not change the recovered intermediate symbols")
	}
}
