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

// Package raptor implements the systematic Raptor R10 fountain code:
// parameter derivation from a source symbol count, the LDPC/HDPC/LT
// precode matrix, a decoding-schedule solver that reduces that matrix
// to the identity while recording a replayable operation log, and the
// LT encoder that turns intermediate symbols into encoding symbols on
// demand.
//
// A Codec is strictly single-threaded: callers must serialise their
// own access to a given instance, the same way gofountain's codecs
// assume single-goroutine use.
package raptor

// Options configures a Codec. The zero value turns both options off;
// DefaultOptions returns the defaults listed on each field.
type Options struct {
	// UsePrepass runs the greedy row-reduction heuristic (§4.8) before
	// the main solver. Defaults to true.
	UsePrepass bool
	// UseOptimalESIs draws encoding symbol IDs from the low-degree-biased
	// sequence (§4.11) instead of the identity sequence 0, 1, 2, ...
	// Defaults to false.
	UseOptimalESIs bool
}

// DefaultOptions returns the Options spec.md's external-interfaces
// section lists as defaults: prepass on, optimal ESIs off.
func DefaultOptions() Options {
	return Options{UsePrepass: true, UseOptimalESIs: false}
}

// Codec is a Raptor R10 encoder/decoder instance for a fixed K.
type Codec struct {
	params *Params
	opts   Options

	esis     []int
	payloads [][]byte
	seen     map[int]bool

	intermediate [][]byte

	nextID       int
	optimalESIs  []int
	optimalDrawn int
}

// New creates a Codec for k source symbols. Returns a *ParameterError
// if k or a value derived from it cannot be satisfied.
func New(k int, opts Options) (*Codec, error) {
	p, err := deriveParams(k)
	if err != nil {
		return nil, err
	}
	return &Codec{
		params: p,
		opts:   opts,
		seen:   make(map[int]bool),
	}, nil
}

// K returns the source symbol count this Codec was constructed for.
func (c *Codec) K() int { return c.params.K }

// AddSymbol records a received (ESI, payload) pair. Payload sizes must
// be uniform within a block; duplicate ESIs are ignored.
func (c *Codec) AddSymbol(esi int, payload []byte) {
	if c.seen[esi] {
		return
	}
	c.seen[esi] = true
	c.esis = append(c.esis, esi)
	c.payloads = append(c.payloads, payload)
	c.intermediate = nil
}

// CanDecode reports whether the currently received symbols suffice to
// build a schedule, without surfacing the error or retaining any
// partial state: it runs the solver against a disposable copy of A.
func (c *Codec) CanDecode() bool {
	if len(c.esis) < c.params.K {
		return false
	}
	a := assembleMatrix(c.params, c.esis)
	_, err := solve(c.params, a, c.opts.UsePrepass)
	return err == nil
}

// CalculateIntermediateSymbols builds and caches the L intermediate
// symbols from the symbols received so far.
func (c *Codec) CalculateIntermediateSymbols() error {
	if len(c.esis) < c.params.K {
		return &DecodingScheduleError{Reason: "need at least " + itoa(c.params.K) + " symbols to decode but only have " + itoa(len(c.esis))}
	}

	a := assembleMatrix(c.params, c.esis)
	sched, err := solve(c.params, a, c.opts.UsePrepass)
	if err != nil {
		return err
	}

	c.intermediate = replay(c.params, sched, c.payloads)
	return nil
}

// NextEncodingSymbol produces the next (ESI, payload) pair.
// CalculateIntermediateSymbols must have succeeded first.
func (c *Codec) NextEncodingSymbol() (int, []byte, error) {
	if c.intermediate == nil {
		return 0, nil, &DecodingScheduleError{Reason: "intermediate symbols not yet calculated"}
	}
	esi := c.nextESI()
	return esi, ltEncode(c.params, c.intermediate, esi), nil
}

// Encode produces the encoding symbol for an arbitrary ESI.
// CalculateIntermediateSymbols must have succeeded first.
func (c *Codec) Encode(esi int) ([]byte, error) {
	if c.intermediate == nil {
		return nil, &DecodingScheduleError{Reason: "intermediate symbols not yet calculated"}
	}
	return ltEncode(c.params, c.intermediate, esi), nil
}

func (c *Codec) nextESI() int {
	if !c.opts.UseOptimalESIs {
		esi := c.nextID
		c.nextID++
		return esi
	}
	if c.optimalDrawn >= len(c.optimalESIs) {
		c.optimalESIs = optimalESIs(c.params, len(c.optimalESIs)+64)
	}
	esi := c.optimalESIs[c.optimalDrawn]
	c.optimalDrawn++
	return esi
}
