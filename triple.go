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

import "github.com/beginning1126/raptorcore/internal/tables"

// tripleQ is the fixed modulus RFC 5053 §5.4.4.3 uses to derive the
// per-ESI random seed Y.
const tripleQ = 65521

// triple computes (d, a, b) for esi: the degree and the two LT stepping
// constants used to select which intermediate symbols an encoding
// symbol XORs together.
func triple(p *Params, esi int) (d int, a, b uint32) {
	aConst := (53591 + p.SystematicIndex*997) % tripleQ
	bConst := (10267 * (p.SystematicIndex + 1)) % tripleQ
	y := uint32((bConst + esi*aConst) % tripleQ)

	v := tables.R10(y, 0, 1<<20)
	d = tables.Deg(v)
	a = 1 + tables.R10(y, 1, uint32(p.LPrime-1))
	b = tables.R10(y, 2, uint32(p.LPrime))
	return d, a, b
}
