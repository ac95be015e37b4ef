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

// Visiting the distinct values of a vector in ascending order must
// touch every lane exactly once, grouped by equal value.
func registerCallTests(reg *unittest.Registry, rng *rand.Rand, m matrices) {
	reg.AddTypes("callWithValuesSorted", m.All, unittest.Typed{
		Int8:    callSortedCase[int8](rng),
		Uint8:   callSortedCase[uint8](rng),
		Int16:   callSortedCase[int16](rng),
		Uint16:  callSortedCase[uint16](rng),
		Int32:   callSortedCase[int32](rng),
		Uint32:  callSortedCase[uint32](rng),
		Int64:   callSortedCase[int64](rng),
		Uint64:  callSortedCase[uint64](rng),
		Float32: callSortedCase[float32](rng),
		Float64: callSortedCase[float64](rng),
	})
}

func callSortedCase[T vec.Lanes](rng *rand.Rand) unittest.TypedFunc {
	return func(rt *unittest.R, tag vec.Tag) {
		lanes := vec.LanesOf[T](tag)
		unittest.Verify(rt, lanes > 0, " lanes for ", tag.Name())

		// values drawn from a small range force duplicate lanes
		src := make([]T, lanes)
		for i := range src {
			src[i] = T(rng.IntN(max(2, lanes/2)))
		}
		v := vec.Load[T](tag, src)

		visited := 0
		var prev T
		first := true
		forDistinctSorted(v, func(value T, m vec.Mask[T]) {
			if !first {
				unittest.Verify(rt, prev < value, " values out of order: ", prev, " then ", value)
			}
			first = false
			prev = value

			unittest.CompareMasks(rt, m, vec.Equal(v, vec.Set[T](tag, value)))
			visited += m.CountTrue()
		})
		unittest.Compare(rt, visited, lanes, " every lane visited once")
	}
}

// forDistinctSorted calls f once per distinct value of v, in ascending
// order, with the mask of lanes holding that value.
func forDistinctSorted[T vec.Lanes](v vec.Vec[T], f func(T, vec.Mask[T])) {
	remaining := vec.MaskAll[T](v.NumLanes(), true)
	for remaining.AnyTrue() {
		// smallest value among the remaining lanes
		var lowest T
		found := false
		for i := 0; i < v.NumLanes(); i++ {
			if !remaining.GetBit(i) {
				continue
			}
			if !found || v.Get(i) < lowest {
				lowest = v.Get(i)
				found = true
			}
		}
		group := vec.Equal(v, vec.Set[T](vec.FixedLanes(v.NumLanes()), lowest))
		f(lowest, group)

		next := uint64(0)
		for i := 0; i < v.NumLanes(); i++ {
			if remaining.GetBit(i) && !group.GetBit(i) {
				next |= 1 << uint(i)
			}
		}
		remaining = vec.MaskFromBits[T](v.NumLanes(), next)
	}
}
