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

// Package typelist computes the combinatorial test-type matrix: the cross
// product of element kinds and ABI tags, filtered by predicates and gated
// on CPU capabilities.
//
// Lists are values, never mutated in place; every operation returns a new
// list. Order is preserved throughout so that test display names are
// reproducible run to run.
package typelist

import "github.com/ajroetker/go-vectest/vec"

// Kind identifies a primitive element type.
type Kind uint8

const (
	Int8 Kind = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64

	numKinds
)

var kindNames = [numKinds]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

var kindSizes = [numKinds]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Int64:   8,
	Uint64:  8,
	Float32: 4,
	Float64: 8,
}

// String returns the Go spelling of the kind, e.g. "uint16".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Size returns the size of the kind in bytes.
func (k Kind) Size() int {
	return kindSizes[k]
}

// IsFloat reports whether the kind is a floating-point type.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsSigned reports whether the kind is a signed integer or float type.
func (k Kind) IsSigned() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Float32, Float64:
		return true
	}
	return false
}

// KindFromString returns the kind with the given String() name.
func KindFromString(s string) (Kind, bool) {
	for k := Kind(0); k < numKinds; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return 0, false
}

// List is an ordered sequence of element kinds.
type List []Kind

// AllTypes returns the full element-kind list. The order is deliberately
// mixed so that adjacent matrix entries vary in size and signedness.
func AllTypes() List {
	return List{Float64, Float32, Int64, Uint64, Int32, Uint16, Int8, Uint32, Int16, Uint8}
}

// Types64_32 returns the element kinds of size 4 or 8 bytes, in AllTypes
// order.
func Types64_32() List {
	return Filter(func(k Kind) bool { return k.Size() < 4 }, AllTypes())
}

// TypesFP returns the floating-point element kinds.
func TypesFP() List {
	return Filter(func(k Kind) bool { return !k.IsFloat() }, AllTypes())
}

// TypesFloat returns the single-precision element kind only.
func TypesFloat() List {
	return Filter(Is(Float64), TypesFP())
}

// Entry is one concrete (ABI, element kind) pair of the matrix.
type Entry struct {
	ABI  vec.Tag
	Elem Kind
}

// String formats the entry the way it appears in test names,
// e.g. "float32/avx2".
func (e Entry) String() string {
	return e.Elem.String() + "/" + e.ABI.Name()
}

// Lanes returns the lane count of the vector type this entry denotes.
func (e Entry) Lanes() int {
	return e.ABI.Lanes(e.Elem.Size())
}
