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

// Package symbolio splits a source message into the fixed-size source
// symbols a Raptor Codec encodes, and reassembles a decoded message
// back out of them. It carries no fountain-code logic of its own —
// that lives in the raptor package — it only manages the padding
// bookkeeping that lets a message of arbitrary length map onto K
// symbols of uniform size W.
package symbolio

// Symbol is a source or decoded data symbol. Symbols handed to a
// raptor.Codec must be uniform length; Symbol tracks how much of its
// tail is padding so that trailing padding can be trimmed back off on
// reassembly.
type Symbol struct {
	Data    []byte
	Padding int
}

// NewSymbol returns a Symbol consisting entirely of length bytes of
// padding.
func NewSymbol(length int) Symbol {
	return Symbol{Padding: length}
}

// Len returns the symbol's total length, data plus padding.
func (s Symbol) Len() int {
	return len(s.Data) + s.Padding
}

// Empty reports whether the symbol has zero length.
func (s Symbol) Empty() bool {
	return s.Len() == 0
}

// Xor XORs other into s, growing s.Data as needed. Padding on either
// side is treated as zero bytes, the XOR identity.
func (s *Symbol) Xor(other Symbol) {
	if len(s.Data) < len(other.Data) {
		grow := len(other.Data) - len(s.Data)
		s.Data = append(s.Data, make([]byte, grow)...)
		if s.Padding > grow {
			s.Padding -= grow
		} else {
			s.Padding = 0
		}
	}
	for i := range other.Data {
		s.Data[i] ^= other.Data[i]
	}
}

// Payload returns the byte slice a raptor.Codec should treat as this
// symbol's fixed-width payload.
func (s Symbol) Payload() []byte {
	if s.Padding == 0 {
		return s.Data
	}
	out := make([]byte, len(s.Data)+s.Padding)
	copy(out, s.Data)
	return out
}
