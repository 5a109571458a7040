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

import (
	"bytes"
	"testing"
)

func TestSymbolLen(t *testing.T) {
	tests := []struct {
		s   Symbol
		len int
	}{
		{Symbol{}, 0},
		{Symbol{Data: []byte{1, 0, 1}}, 3},
		{Symbol{Data: []byte{1, 0, 1}, Padding: 1}, 4},
	}
	for _, tt := range tests {
		if got := tt.s.Len(); got != tt.len {
			t.Errorf("Len() = %d, want %d", got, tt.len)
		}
		if (tt.len == 0) != tt.s.Empty() {
			t.Errorf("Empty() = %v, want %v", tt.s.Empty(), tt.len == 0)
		}
	}
}

func TestSymbolXor(t *testing.T) {
	tests := []struct {
		a, b, out Symbol
	}{
		{Symbol{Data: []byte{1, 0, 1}}, Symbol{Data: []byte{1, 1, 1}}, Symbol{Data: []byte{0, 1, 0}}},
		{Symbol{Padding: 5}, Symbol{Data: []byte{0, 1, 0}}, Symbol{Data: []byte{0, 1, 0}, Padding: 2}},
		{Symbol{Data: []byte{1}, Padding: 4}, Symbol{Data: []byte{0, 1, 0, 2, 3, 7}}, Symbol{Data: []byte{1, 1, 0, 2, 3, 7}}},
	}
	for _, tt := range tests {
		tt.a.Xor(tt.b)
		if !bytes.Equal(tt.a.Data, tt.out.Data) {
			t.Errorf("Xor data = %v, want %v", tt.a.Data, tt.out.Data)
		}
		if len(tt.a.Data) != len(tt.b.Data) {
			t.Errorf("a and b should have equal data length after Xor: %d vs %d", len(tt.a.Data), len(tt.b.Data))
		}
	}
}

func TestPartitionAndJoinRoundTrip(t *testing.T) {
	msg := make([]byte, 97)
	for i := range msg {
		msg[i] = byte(i)
	}

	for _, n := range []int{1, 3, 10, 11, 97} {
		symbols := Partition(msg, n)
		if len(symbols) != n {
			t.Fatalf("Partition(%d) returned %d symbols, want %d", n, len(symbols), n)
		}
		want := symbols[0].Len()
		for i, s := range symbols {
			if s.Len() != want {
				t.Errorf("symbol %d length %d, want %d (uniform)", i, s.Len(), want)
			}
		}
		joined := Join(symbols)
		if !bytes.Equal(joined[:len(msg)], msg) {
			t.Errorf("Join after Partition(%d) did not round-trip", n)
		}
	}
}
