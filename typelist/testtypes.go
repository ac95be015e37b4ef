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

	"github.com/ajroetker/go-vectest/internal/cpu"
	"github.com/ajroetker/go-vectest/vec"
)

// This file assembles the capability-gated test-type matrices. The
// branches for one instruction-set family are mutually exclusive
// ("partial" vs "full" extension support), so a single capability
// configuration never produces the same (element, ABI) pair twice.

// NativeTestTypes returns the matrix of hardware-native and odd-width
// vector types available under caps, over the given element kinds,
// ending with the unconditional scalar expansion.
func NativeTestTypes(caps cpu.Features, types List) []Entry {
	types6432 := Filter(func(k Kind) bool { return k.Size() < 4 }, types)
	typesFP := Filter(func(k Kind) bool { return !k.IsFloat() }, types6432)
	typesFloat := Filter(Is(Float64), typesFP)
	no8 := Filter(SizeIs(8), types)
	small := Filter(SizeGreater(2), types)

	var groups [][]Entry

	// AVX-512 foundation without byte/word support: only dword/qword
	// lanes exist.
	if caps.HasAVX512F && !caps.FullAVX512() {
		groups = append(groups, ExpandList([]vec.Tag{
			vec.Native(vec.LevelAVX512),
			vec.MaskedBytes(40),
		}, types6432))
	}

	// AVX without AVX2: 256-bit vectors hold floating point only.
	if caps.HasAVX && !caps.HasAVX2 {
		groups = append(groups, ExpandList([]vec.Tag{
			vec.Native(vec.LevelAVX),
			vec.FixedBytes(24),
		}, typesFP))
	}

	// SSE2 without SSE4.1: the integer comparisons needed by the full
	// matrix are missing, keep float32 only.
	if caps.HasSSE2 && !caps.HasSSE41 {
		groups = append(groups, ExpandList([]vec.Tag{
			vec.Native(vec.LevelSSE2),
			vec.FixedBytes(12),
		}, typesFloat))
	}

	if caps.HasSSE41 {
		var full []vec.Tag
		if caps.FullAVX512() {
			full = append(full, vec.Native(vec.LevelAVX512), vec.MaskedBytes(40))
			if caps.HasAVX512VL {
				full = append(full, vec.MaskedBytes(24))
			}
		}
		if caps.HasAVX2 {
			full = append(full, vec.Native(vec.LevelAVX2), vec.FixedBytes(24))
		}
		full = append(full, vec.Native(vec.LevelSSE2))
		groups = append(groups, ExpandList(full, types))

		// Widths that cannot hold 8-byte lanes evenly.
		var narrow []vec.Tag
		if caps.FullAVX512() {
			narrow = append(narrow, vec.MaskedBytes(44))
			if caps.HasAVX512VL {
				narrow = append(narrow, vec.MaskedBytes(8))
			}
		}
		if caps.HasAVX2 {
			narrow = append(narrow, vec.FixedBytes(20))
		}
		narrow = append(narrow, vec.FixedBytes(12), vec.FixedBytes(8))
		groups = append(groups, ExpandList(narrow, no8))

		// Widths only divisible by 1- and 2-byte lanes.
		var tiny []vec.Tag
		if caps.FullAVX512() && caps.HasAVX512VL {
			tiny = append(tiny, vec.MaskedBytes(6), vec.MaskedBytes(4))
		}
		tiny = append(tiny, vec.FixedBytes(6), vec.FixedBytes(4))
		groups = append(groups, ExpandList(tiny, small))
	}

	if caps.HasNEON {
		groups = append(groups, ExpandOne(vec.FixedBytes(8), no8))
		groups = append(groups, ExpandOne(vec.FixedBytes(16), types))
	}

	groups = append(groups, ExpandOne(vec.Scalar(), types))
	return Concat(groups...)
}

// NativeRealTestTypes is the floating-point analogue of NativeTestTypes.
func NativeRealTestTypes(caps cpu.Features, types List) []Entry {
	typesFP := Filter(func(k Kind) bool { return !k.IsFloat() }, types)
	typesFloat := Filter(Is(Float64), typesFP)

	var groups [][]Entry
	if caps.HasAVX512F {
		groups = append(groups, ExpandOne(vec.Native(vec.LevelAVX512), typesFP))
	}
	if caps.HasAVX {
		groups = append(groups, ExpandOne(vec.Native(vec.LevelAVX), typesFP))
	}
	if caps.HasSSE2 {
		if caps.HasSSE41 {
			groups = append(groups, ExpandOne(vec.Native(vec.LevelSSE2), typesFP))
		} else {
			groups = append(groups, ExpandOne(vec.Native(vec.LevelSSE2), typesFloat))
		}
	}
	if caps.HasNEON {
		groups = append(groups, ExpandOne(vec.FixedBytes(8), typesFloat))
		groups = append(groups, ExpandOne(vec.FixedBytes(16), typesFP))
	}
	groups = append(groups, ExpandOne(vec.Scalar(), typesFP))
	return Concat(groups...)
}

// FixedSizeABIs returns the fixed-lane-count tags for this run.
//
// With abis nil the three pools below are each subsampled to one member;
// running every lane count from 1 to 32 on every element kind makes the
// matrix an order of magnitude larger for no added coverage per run, and
// successive seeds still sweep the whole range over time. With abis set
// to N in 1..8 the deterministic sweep {N, N+8, N+16, N+24} is used, and
// with abis set to 0 fixed-size ABIs are disabled.
func FixedSizeABIs(abis *int, rng *rand.Rand) []vec.Tag {
	if abis == nil {
		return Concat(
			ChooseOneRandomly(rng, lanesTags(3, 6, 8, 12)),
			ChooseOneRandomly(rng, lanesTags(1, 2, 4, 5, 7, 9, 10, 11, 13, 14, 15)),
			ChooseOneRandomly(rng, lanesTags(16, 31, 32)),
		)
	}
	if n := *abis; n >= 1 && n <= 8 {
		return lanesTags(n, n+8, n+16, n+24)
	}
	return nil
}

// AllTestTypes returns the complete matrix: native types (unless a
// fixed-size sweep was requested) followed by the fixed-size expansion.
func AllTestTypes(caps cpu.Features, types List, abis *int, rng *rand.Rand) []Entry {
	var native []Entry
	if abis == nil || *abis == 0 {
		native = NativeTestTypes(caps, types)
	}
	return Concat(native, ExpandList(FixedSizeABIs(abis, rng), types))
}

// RealTestTypes is AllTestTypes restricted to floating-point kinds.
func RealTestTypes(caps cpu.Features, types List, abis *int, rng *rand.Rand) []Entry {
	typesFP := Filter(func(k Kind) bool { return !k.IsFloat() }, types)
	var native []Entry
	if abis == nil || *abis == 0 {
		native = NativeRealTestTypes(caps, types)
	}
	return Concat(native, ExpandList(FixedSizeABIs(abis, rng), typesFP))
}

// ManyFixedSizeTypes returns a dense sweep of fixed lane counts over
// float32, for tests that stress lane-count edge cases specifically.
func ManyFixedSizeTypes(types List) []Entry {
	typesFloat := Filter(func(k Kind) bool { return k != Float32 }, types)
	return ExpandList(lanesTags(3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 17), typesFloat)
}

// ReducedTestTypes returns the native matrix only, without the fixed-size
// expansion. Used by expensive suites to bound run time.
func ReducedTestTypes(caps cpu.Features, types List) []Entry {
	return NativeTestTypes(caps, types)
}

func lanesTags(ns ...int) []vec.Tag {
	out := make([]vec.Tag, 0, len(ns))
	for _, n := range ns {
		out = append(out, vec.FixedLanes(n))
	}
	return out
}
