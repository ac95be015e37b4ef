// Copyright 2025 go-vectest Authors
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

package unittest

import (
	"math/rand/v2"

	"github.com/ajroetker/go-vectest/vec"
)

// AllMasks returns pattern i of the mask enumeration for the given lane
// count: the all-true mask with the bits of i cleared. Pattern 0 is all
// true; pattern 1<<lanes - 1 is empty.
func AllMasks[T vec.Lanes](lanes int, i uint64) vec.Mask[T] {
	return vec.MaskFromBits[T](lanes, ^i)
}

// ForAllMasks calls f with every non-empty mask of the given lane
// count, in enumeration order. Requires lanes < 64.
func ForAllMasks[T vec.Lanes](lanes int, f func(vec.Mask[T])) {
	for i := uint64(0); ; i++ {
		m := AllMasks[T](lanes, i)
		if m.Empty() {
			return
		}
		f(m)
	}
}

// WithRandomMask calls f the given number of times with uniformly
// random masks of the given lane count. Lane counts up to 64 use every
// bit of the pattern word.
func WithRandomMask[T vec.Lanes](rng *rand.Rand, lanes, repetitions int, f func(vec.Mask[T])) {
	for rep := 0; rep < repetitions; rep++ {
		bits := rng.Uint64()
		if lanes < 64 {
			bits &= uint64(1)<<uint(lanes) - 1
		}
		f(vec.MaskFromBits[T](lanes, bits))
	}
}
