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

package symbolio

import "math"

// partitionCounts is the RFC 5053 §5.3.1.2 block partitioning function:
// splits a size-i quantity into j pieces, jl of them "long" (length
// il) and js "short" (length is).
func partitionCounts(i, j int) (il, is, jl, js int) {
	il = int(math.Ceil(float64(i) / float64(j)))
	is = int(math.Floor(float64(i) / float64(j)))
	jl = i - is*j
	js = j - jl

	if jl == 0 {
		il = 0
	}
	if js == 0 {
		is = 0
	}
	return
}

// Partition splits data into exactly numSymbols symbols of uniform
// length. If data does not divide evenly, the trailing short symbols
// are each padded up to the length of the long ones. Symbols
// are returned in order; reconstructing data is Join's job.
func Partition(data []byte, numSymbols int) []Symbol {
	lenLong, lenShort, numLong, numShort := partitionCounts(len(data), numSymbols)

	symbols := make([]Symbol, 0, numSymbols)
	rest := data

	sliceInto := func(num, length int) {
		for n := 0; n < num; n++ {
			sym := Symbol{}
			if len(rest) >= length {
				sym.Data, rest = rest[:length], rest[length:]
			} else {
				sym.Data, rest = rest, nil
			}
			if len(sym.Data) < length {
				sym.Padding = length - len(sym.Data)
			}
			symbols = append(symbols, sym)
		}
	}
	sliceInto(numLong, lenLong)
	sliceInto(numShort, lenShort)

	equalizeLengths(symbols)
	return symbols
}

// equalizeLengths pads every symbol up to the longest symbol's length,
// so the slice produced by Partition is safe to hand a raptor.Codec
// (which requires uniform payload size within a block).
func equalizeLengths(symbols []Symbol) {
	if len(symbols) == 0 {
		return
	}
	max := 0
	for _, s := range symbols {
		if l := s.Len(); l > max {
			max = l
		}
	}
	for i := range symbols {
		if deficit := max - symbols[i].Len(); deficit > 0 {
			symbols[i].Padding += deficit
		}
	}
}

// Join concatenates symbol payloads back into the original message,
// trimming the padding tracked on each symbol.
func Join(symbols []Symbol) []byte {
	out := make([]byte, 0, len(symbols)*len(symbols[0].Data))
	for _, s := range symbols {
		out = append(out, s.Data...)
	}
	return out
}
