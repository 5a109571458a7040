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

// degreeThresholds and degreeValues implement the Deg(v) function from
// RFC 5053 §5.4.4.2: the output degree for a code symbol is chosen from
// a fixed distribution over v in [0, 2^20) via linear search over these
// cumulative thresholds.
var degreeThresholds = [...]uint32{0, 10241, 491582, 712794, 831695, 948446, 1032189, 1048576}
var degreeValues = [...]int{0, 1, 2, 3, 4, 10, 11, 40}

// MaxDegree is the largest degree value the distribution can produce.
const MaxDegree = 40

// Deg maps v (produced by R10(Y, 0, 2^20)) to the LT row degree.
func Deg(v uint32) int {
	for j := 1; j < len(degreeThresholds)-1; j++ {
		if v < degreeThresholds[j] {
			return degreeValues[j]
		}
	}
	return degreeValues[len(degreeValues)-1]
}
