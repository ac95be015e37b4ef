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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ajroetker/go-vectest/vec"
)

// Verify fails and aborts the test body unless cond is true.
func Verify(rt *R, cond bool, detail ...any) {
	if cond {
		return
	}
	rt.report(message("condition evaluated to false", detail)...)
	rt.abort()
}

// Fail unconditionally fails and aborts the test body.
func Fail(rt *R, detail ...any) {
	rt.report(message("failed", detail)...)
	rt.abort()
}

// Compare fails and aborts the test body unless test == reference.
func Compare[T comparable](rt *R, test, reference T, detail ...any) {
	if test == reference {
		return
	}
	rt.report(message(fmt.Sprintf("test (%s) == reference (%s) -> false",
		formatValue(test), formatValue(reference)), detail)...)
	rt.abort()
}

// CompareVec fails and aborts the test body unless the vectors have the
// same lane count and agree exactly in every lane.
func CompareVec[T vec.Lanes](rt *R, test, reference vec.Vec[T], detail ...any) {
	if test.NumLanes() == reference.NumLanes() && vec.Equal(test, reference).AllTrue() {
		return
	}
	rt.report(message(fmt.Sprintf("test %s == reference %s -> false",
		test, reference), detail)...)
	rt.abort()
}

// CompareMasks fails and aborts the test body unless the masks have the
// same lane count and agree in every lane.
func CompareMasks[T vec.Lanes](rt *R, test, reference vec.Mask[T], detail ...any) {
	if masksEqual(test, reference) {
		return
	}
	rt.report(message(fmt.Sprintf("test mask %s == reference mask %s -> false",
		formatMask(test), formatMask(reference)), detail)...)
	rt.abort()
}

func masksEqual[T vec.Lanes](a, b vec.Mask[T]) bool {
	if a.NumLanes() != b.NumLanes() {
		return false
	}
	for i := 0; i < a.NumLanes(); i++ {
		if a.GetBit(i) != b.GetBit(i) {
			return false
		}
	}
	return true
}

func formatMask[T vec.Lanes](m vec.Mask[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.NumLanes(); i++ {
		if m.GetBit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// FuzzyCompare fails unless test is within the current ulp tolerance of
// reference. For non-float element types it degenerates to exact
// comparison. Every float comparison feeds the distance statistics,
// passing or not.
func FuzzyCompare[T vec.Lanes](rt *R, test, reference T, detail ...any) {
	switch tv := any(test).(type) {
	case float32:
		rv := any(reference).(float32)
		fuzzyScalar(rt, vec.ULPDistanceSigned(tv, rv), rt.floatFuzz,
			formatValue(tv), formatValue(rv), float64(rv), detail)
	case float64:
		rv := any(reference).(float64)
		fuzzyScalar(rt, vec.ULPDistanceSigned(tv, rv), rt.doubleFuzz,
			formatValue(tv), formatValue(rv), rv, detail)
	default:
		Compare(rt, test, reference, detail...)
	}
}

func fuzzyScalar(rt *R, dist, fuzz float64, ts, rs string, reference float64, detail []any) {
	rt.recordDistance(dist, reference)
	if math.Abs(dist) <= fuzz {
		return
	}
	rt.report(message(fmt.Sprintf(
		"test (%s) ≈ reference (%s) -> false\ndistance: %g ulp, allowed distance: ±%g ulp",
		ts, rs, dist, fuzz), detail)...)
	rt.abort()
}

// FuzzyCompareVec applies the fuzzy comparison lane by lane. All lane
// distances are recorded before any failure is reported, so the plot
// file sees the whole vector even when one lane is out of bounds.
func FuzzyCompareVec[T vec.Lanes](rt *R, test, reference vec.Vec[T], detail ...any) {
	var zero T
	switch any(zero).(type) {
	case float32:
		a := any(test).(vec.Vec[float32])
		b := any(reference).(vec.Vec[float32])
		fuzzyVec(rt, vec.ULPDiffVec(a, b), rt.floatFuzz, a.String(), b.String(), b.Data(), detail)
	case float64:
		a := any(test).(vec.Vec[float64])
		b := any(reference).(vec.Vec[float64])
		fuzzyVec(rt, vec.ULPDiffVec(a, b), rt.doubleFuzz, a.String(), b.String(), b.Data(), detail)
	default:
		CompareVec(rt, test, reference, detail...)
	}
}

func fuzzyVec[T vec.Floats](rt *R, dists []float64, fuzz float64, ts, rs string, refs []T, detail []any) {
	ok := true
	for i, d := range dists {
		rt.recordDistance(d, float64(refs[i]))
		if math.Abs(d) > fuzz {
			ok = false
		}
	}
	if ok {
		return
	}
	rt.report(message(fmt.Sprintf(
		"test %s ≈ reference %s -> false\ndistance: %s ulp, allowed distance: ±%g ulp",
		ts, rs, formatDists(dists), fuzz), detail)...)
	rt.abort()
}

func formatDists(dists []float64) string {
	parts := make([]string, len(dists))
	for i, d := range dists {
		parts[i] = strconv.FormatFloat(d, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// CompareAbsoluteError fails unless |test - reference| <= allowed. The
// difference is formed on the larger-minus-smaller side so unsigned
// element types never wrap.
func CompareAbsoluteError[T vec.Lanes](rt *R, test, reference, allowed T, detail ...any) {
	var diff T
	sign := "+"
	if test > reference {
		diff = test - reference
	} else {
		diff = reference - test
		sign = "-"
	}
	if diff <= allowed {
		return
	}
	lines := fmt.Sprintf(
		"test (%s) ≈ reference (%s) -> false\ndifference: %s%s, allowed difference: ±%s",
		formatValue(test), formatValue(reference), sign, formatValue(diff), formatValue(allowed))
	if d, isFloat := ulpOf(test, reference); isFloat {
		lines += fmt.Sprintf("\ndistance: %g ulp", d)
	}
	rt.report(message(lines, detail)...)
	rt.abort()
}

// CompareRelativeError fails unless |test - reference| <= allowed *
// |reference|. A zero reference is substituted by the smallest positive
// normal value of the element type, or 1 for integer types.
func CompareRelativeError[T vec.Lanes](rt *R, test, reference T, allowed float64, detail ...any) {
	absRef := math.Abs(float64(reference))
	if absRef == 0 {
		absRef = smallestNonzero[T]()
	}
	diff := float64(test) - float64(reference)
	bound := allowed * absRef
	if math.Abs(diff) <= bound {
		return
	}
	lines := fmt.Sprintf(
		"test (%s) ≈ reference (%s) -> false\n"+
			"relative difference: %+g, allowed: ±%g\n"+
			"absolute difference: %+g, allowed: ±%g",
		formatValue(test), formatValue(reference), diff/absRef, allowed, diff, bound)
	if d, isFloat := ulpOf(test, reference); isFloat {
		lines += fmt.Sprintf("\ndistance: %g ulp", d)
	}
	rt.report(message(lines, detail)...)
	rt.abort()
}

func ulpOf[T vec.Lanes](test, reference T) (float64, bool) {
	switch tv := any(test).(type) {
	case float32:
		return vec.ULPDistanceSigned(tv, any(reference).(float32)), true
	case float64:
		return vec.ULPDistanceSigned(tv, any(reference).(float64)), true
	}
	return 0, false
}

func smallestNonzero[T vec.Lanes]() float64 {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 0x1p-126
	case float64:
		return 0x1p-1022
	}
	return 1
}

// message renders a failure message as the lines of its block. User
// detail is appended to the first line, stream style.
func message(base string, detail []any) []string {
	if len(detail) > 0 {
		base += " " + fmt.Sprint(detail...)
	}
	return strings.Split(base, "\n")
}

// formatValue formats a compared value at full round-trip precision.
func formatValue(v any) string {
	switch x := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
