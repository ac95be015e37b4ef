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

package typelist

import (
	"math/rand/v2"

	"github.com/ajroetker/go-vectest/vec"
)

// Predicate selects element kinds, typically for exclusion via Filter.
type Predicate func(Kind) bool

// Is returns a predicate matching exactly the given kinds.
func Is(kinds ...Kind) Predicate {
	return func(k Kind) bool {
		for _, x := range kinds {
			if k == x {
				return true
			}
		}
		return false
	}
}

// SizeIs returns a predicate matching kinds of exactly n bytes.
func SizeIs(n int) Predicate {
	return func(k Kind) bool { return k.Size() == n }
}

// SizeGreater returns a predicate matching kinds larger than n bytes.
func SizeGreater(n int) Predicate {
	return func(k Kind) bool { return k.Size() > n }
}

// Filter returns l without the kinds matched by excluded, preserving
// order. Filtering with a predicate that matches nothing returns an equal
// list, and filtering twice with the same predicate equals filtering once.
func Filter(excluded Predicate, l List) List {
	out := make(List, 0, len(l))
	for _, k := range l {
		if !excluded(k) {
			out = append(out, k)
		}
	}
	return out
}

// Concat concatenates any number of lists, preserving relative order.
// All-empty inputs yield an empty list.
func Concat[E any](lists ...[]E) []E {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]E, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// ExpandOne pairs a single ABI tag with every element kind of the list,
// in list order.
func ExpandOne(t vec.Tag, l List) []Entry {
	out := make([]Entry, 0, len(l))
	for _, k := range l {
		out = append(out, Entry{ABI: t, Elem: k})
	}
	return out
}

// ExpandList produces the full cross product of tags and element kinds in
// constructor-major order: all kinds for the first tag, then all kinds for
// the second, and so on. This keeps related ABI variants grouped in the
// test report.
func ExpandList(tags []vec.Tag, l List) []Entry {
	out := make([]Entry, 0, len(tags)*len(l))
	for _, t := range tags {
		out = append(out, ExpandOne(t, l)...)
	}
	return out
}

// ChooseOneRandomly returns a single-element list holding one member of
// the input, selected by rng. Used to subsample ABI pools that would
// otherwise make the matrix excessively large. Calling it with an empty
// list is a precondition violation and panics.
func ChooseOneRandomly[E any](rng *rand.Rand, list []E) []E {
	if len(list) == 0 {
		panic("typelist: ChooseOneRandomly on empty list")
	}
	return []E{list[rng.IntN(len(list))]}
}

// Restrict returns l keeping only the kinds present in include, preserving
// the order of l. An empty include list returns l unchanged.
func Restrict(l List, include []Kind) List {
	if len(include) == 0 {
		return Filter(func(Kind) bool { return false }, l)
	}
	return Filter(func(k Kind) bool { return !Is(include...)(k) }, l)
}
