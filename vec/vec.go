// Package vec provides the portable numeric vector types exercised by the
// test harness.
//
// The design is a generic Vec[T] with a known lane count, per-lane
// comparisons producing a Mask[T], and horizontal reductions. The lane count of a vector is determined by an ABI Tag
// (scalar, a fixed byte width, a fixed lane count, or the native width of
// an instruction-set extension).
//
// Basic usage:
//
//	tag := vec.Native(vec.CurrentLevel())
//	a := vec.Iota[float32](tag)
//	b := vec.Sorted(a)
//	ok := vec.Equal(a, b).AllTrue()
package vec

import (
	"fmt"
	"strings"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector value with a fixed number of lanes.
//
// Vec instances should not be created directly; use Load, Set, Zero, or
// Iota with an ABI Tag instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
func (v Vec[T]) Data() []T {
	return v.data
}

// Get returns the value of lane i.
func (v Vec[T]) Get(i int) T {
	return v.data[i]
}

// With returns a copy of v with lane i set to x.
func (v Vec[T]) With(i int, x T) Vec[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)
	data[i] = x
	return Vec[T]{data: data}
}

// String formats the vector for diagnostics, e.g. "[3 1 2]".
func (v Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}

// Mask represents the per-lane result of a comparison operation.
//
// Mask instances should not be created directly; use comparison operations
// like Equal or LessThan, or MaskFromBits, instead.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// Empty returns true if no lane in the mask is active.
func (m Mask[T]) Empty() bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
