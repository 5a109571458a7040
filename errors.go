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

import "fmt"

// ParameterError indicates K, or a value derived from K, cannot be
// satisfied from the tables this build carries (K out of [MinK, MaxK],
// or no prime/systematic index could be resolved).
type ParameterError struct {
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("raptor: parameter error: %s", e.Reason)
}

// DecodingScheduleError indicates the received symbol set is insufficient
// or degenerate: Phase I ran out of nonzero rows before i+u reached L, or
// Phase II found U_lower of less rank than u.
type DecodingScheduleError struct {
	Reason string
}

func (e *DecodingScheduleError) Error() string {
	return fmt.Sprintf("raptor: a problem occurred while creating the decoding schedule: %s", e.Reason)
}
