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
	"strconv"
	"unsafe"
)

// Tag identifies a vectorization strategy: it maps an element size to a
// lane count. Tags are small comparable values so they can be stored in
// the test-type matrix and in map keys.
type Tag interface {
	// Name returns a short name used in test display names
	// ("scalar", "avx2", "w24", "fixed7").
	Name() string

	// Lanes returns the number of lanes a vector of elements with the
	// given size (in bytes) has under this tag. The matrix assembly only
	// pairs a tag with element sizes that divide its width; Lanes
	// returns 0 for a size that does not fit evenly.
	Lanes(elemSize int) int
}

// LanesOf returns the lane count of a vector of T under tag t.
func LanesOf[T Lanes](t Tag) int {
	var zero T
	return t.Lanes(int(unsafe.Sizeof(zero)))
}

// Scalar returns the tag for single-lane (non-vectorized) execution.
func Scalar() Tag {
	return scalarTag{}
}

type scalarTag struct{}

func (scalarTag) Name() string           { return "scalar" }
func (scalarTag) Lanes(elemSize int) int { return 1 }

// Native returns the tag for the full register width of an instruction-set
// level, e.g. 32 bytes for AVX2.
func Native(l Level) Tag {
	return nativeTag{level: l}
}

type nativeTag struct {
	level Level
}

func (t nativeTag) Name() string { return t.level.String() }

func (t nativeTag) Lanes(elemSize int) int {
	w := t.level.Width()
	if elemSize <= 0 || w%elemSize != 0 {
		return 0
	}
	return w / elemSize
}

// FixedBytes returns the tag for a vector occupying exactly n bytes,
// independent of any hardware extension. Odd widths such as 24 or 12
// bytes exercise partial-register code paths.
func FixedBytes(n int) Tag {
	return fixedBytesTag{bytes: n}
}

type fixedBytesTag struct {
	bytes int
}

func (t fixedBytesTag) Name() string { return "w" + strconv.Itoa(t.bytes) }

func (t fixedBytesTag) Lanes(elemSize int) int {
	if elemSize <= 0 || t.bytes%elemSize != 0 {
		return 0
	}
	return t.bytes / elemSize
}

// MaskedBytes returns the tag for a vector occupying exactly n bytes whose
// comparisons produce mask registers (the AVX-512 flavor of a fixed-width
// vector). It is distinct from FixedBytes of the same width so the two can
// coexist in one test-type matrix.
func MaskedBytes(n int) Tag {
	return maskedBytesTag{bytes: n}
}

type maskedBytesTag struct {
	bytes int
}

func (t maskedBytesTag) Name() string { return "mw" + strconv.Itoa(t.bytes) }

func (t maskedBytesTag) Lanes(elemSize int) int {
	if elemSize <= 0 || t.bytes%elemSize != 0 {
		return 0
	}
	return t.bytes / elemSize
}

// FixedLanes returns the tag for a vector with exactly n lanes regardless
// of the element size.
func FixedLanes(n int) Tag {
	return fixedLanesTag{n: n}
}

type fixedLanesTag struct {
	n int
}

func (t fixedLanesTag) Name() string           { return "fixed" + strconv.Itoa(t.n) }
func (t fixedLanesTag) Lanes(elemSize int) int { return t.n }
