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

package main

import (
	"math/rand/v2"

	"github.com/ajroetker/go-vectest/unittest"
	"github.com/ajroetker/go-vectest/vec"
)

// For every mask, walking its set bits must agree with the masked
// reductions of an iota vector. Small lane counts enumerate every mask;
// larger ones sample the mask space.
func registerMaskTests(reg *unittest.Registry, rng *rand.Rand, m matrices) {
	reg.AddTypes("foreachBit", m.All, unittest.Typed{
		Int8:    foreachBitCase[int8](rng),
		Uint8:   foreachBitCase[uint8](rng),
		Int16:   foreachBitCase[int16](rng),
		Uint16:  foreachBitCase[uint16](rng),
		Int32:   foreachBitCase[int32](rng),
		Uint32:  foreachBitCase[uint32](rng),
		Int64:   foreachBitCase[int64](rng),
		Uint64:  foreachBitCase[uint64](rng),
		Float32: foreachBitCase[float32](rng),
		Float64: foreachBitCase[float64](rng),
	})
}

const randomMaskRepetitions = 1000

func foreachBitCase[T vec.Lanes](rng *rand.Rand) unittest.TypedFunc {
	return func(rt *unittest.R, tag vec.Tag) {
		lanes := vec.LanesOf[T](tag)
		unittest.Verify(rt, lanes > 0, " lanes for ", tag.Name())
		indexes := vec.Iota[T](tag)
		zero := vec.Zero[T](tag)

		check := func(m vec.Mask[T]) {
			bits := 0
			var indexSum T
			for i := 0; i < lanes; i++ {
				if m.GetBit(i) {
					bits++
					indexSum += T(i)
				}
			}
			unittest.Compare(rt, bits, m.CountTrue())
			unittest.Compare(rt, m.AnyTrue(), bits > 0)
			unittest.Compare(rt, m.AllTrue(), bits == lanes)
			unittest.Compare(rt, indexSum, vec.ReduceSum(vec.IfThenElse(m, indexes, zero)),
				" with ", bits, " set bits")
		}

		if lanes <= 12 {
			unittest.ForAllMasks[T](lanes, check)
			// the enumeration stops short of the empty mask
			check(vec.MaskAll[T](lanes, false))
			return
		}
		unittest.WithRandomMask[T](rng, lanes, randomMaskRepetitions, check)
	}
}
