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

package vec

import (
	"math"
	"slices"
)

// This file provides the reference (lane-at-a-time) implementations of all
// vector operations. The harness compares SIMD kernels against these
// semantics; the operations themselves are deliberately simple.

// Zero creates a vector under tag t with all lanes set to zero.
func Zero[T Lanes](t Tag) Vec[T] {
	return Vec[T]{data: make([]T, LanesOf[T](t))}
}

// Set creates a vector under tag t with all lanes set to the same value.
func Set[T Lanes](t Tag, value T) Vec[T] {
	data := make([]T, LanesOf[T](t))
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Iota creates a vector under tag t with lane i set to T(i).
func Iota[T Lanes](t Tag) Vec[T] {
	data := make([]T, LanesOf[T](t))
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Load creates a vector under tag t from the leading elements of src.
// Lanes beyond len(src) are zero.
func Load[T Lanes](t Tag, src []T) Vec[T] {
	data := make([]T, LanesOf[T](t))
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data)
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x * y })
}

// Min performs element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max performs element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// Neg negates every lane. Unsigned lanes wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	data := make([]T, len(v.data))
	for i, x := range v.data {
		data[i] = -x
	}
	return Vec[T]{data: data}
}

// Abs returns the element-wise absolute value. Unsigned lanes are returned
// unchanged.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	data := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			data[i] = -x
		} else {
			data[i] = x
		}
	}
	return Vec[T]{data: data}
}

// Sorted returns a copy of v with its lanes sorted in ascending order.
func Sorted[T Lanes](v Vec[T]) Vec[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)
	slices.Sort(data)
	return Vec[T]{data: data}
}

// CopySign returns a vector with the magnitudes of v and the signs of sign.
func CopySign[T Floats](v, sign Vec[T]) Vec[T] {
	return lanewise(v, sign, func(x, s T) T {
		return T(math.Copysign(float64(x), float64(s)))
	})
}

// Equal compares two vectors lane by lane.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// ReduceSum returns the horizontal sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMax returns the horizontal maximum of all lanes.
// It panics on an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	max := v.data[0]
	for _, x := range v.data[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// IfThenElse selects lanes from yes where the mask is active and from no
// elsewhere.
func IfThenElse[T Lanes](m Mask[T], yes, no Vec[T]) Vec[T] {
	n := min(len(yes.data), len(no.data))
	data := make([]T, n)
	for i := range n {
		if m.GetBit(i) {
			data[i] = yes.data[i]
		} else {
			data[i] = no.data[i]
		}
	}
	return Vec[T]{data: data}
}

// MaskFromBits builds a mask of the given lane count from the low bits of
// the pattern: bit i of bits activates lane i.
func MaskFromBits[T Lanes](lanes int, bits uint64) Mask[T] {
	m := make([]bool, lanes)
	for i := range m {
		m[i] = bits&(1<<uint(i)) != 0
	}
	return Mask[T]{bits: m}
}

// MaskAll builds a mask of the given lane count with every lane set to b.
func MaskAll[T Lanes](lanes int, b bool) Mask[T] {
	m := make([]bool, lanes)
	for i := range m {
		m[i] = b
	}
	return Mask[T]{bits: m}
}

func lanewise[T Lanes](a, b Vec[T], f func(T, T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: data}
}

func compare[T Lanes](a, b Vec[T], f func(T, T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = f(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}
