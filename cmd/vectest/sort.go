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

// Sorting a permuted iota vector must recover the iota vector. Lane
// counts up to 8 are checked against every permutation; beyond that the
// permutation space is sampled.
func registerSortTests(reg *unittest.Registry, rng *rand.Rand, m matrices) {
	reg.AddTypes("sort", m.All, unittest.Typed{
		Int8:    sortCase[int8](rng),
		Uint8:   sortCase[uint8](rng),
		Int16:   sortCase[int16](rng),
		Uint16:  sortCase[uint16](rng),
		Int32:   sortCase[int32](rng),
		Uint32:  sortCase[uint32](rng),
		Int64:   sortCase[int64](rng),
		Uint64:  sortCase[uint64](rng),
		Float32: sortCase[float32](rng),
		Float64: sortCase[float64](rng),
	})
}

const randomPermutations = 100

func sortCase[T vec.Lanes](rng *rand.Rand) unittest.TypedFunc {
	return func(rt *unittest.R, tag vec.Tag) {
		lanes := vec.LanesOf[T](tag)
		unittest.Verify(rt, lanes > 0, " lanes for ", tag.Name())
		want := vec.Iota[T](tag)

		check := func(perm []int) {
			src := make([]T, lanes)
			for i, p := range perm {
				src[i] = T(p)
			}
			got := vec.Sorted(vec.Load[T](tag, src))
			unittest.CompareVec(rt, got, want, " input ", src)
		}

		if lanes <= 8 {
			forEachPermutation(lanes, check)
			return
		}
		for rep := 0; rep < randomPermutations; rep++ {
			check(rng.Perm(lanes))
		}
	}
}

// forEachPermutation enumerates all permutations of 0..n-1 with Heap's
// algorithm.
func forEachPermutation(n int, f func([]int)) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var heap func(k int)
	heap = func(k int) {
		if k == 1 {
			f(perm)
			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
	}
	heap(n)
}
