package unittest

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/go-vectest/vec"
)

// runBody executes fn in a fresh context and reports whether the body
// was aborted by a failing comparison.
func runBody(fn func(rt *R)) (aborted bool, out string) {
	var buf bytes.Buffer
	r := &Runner{reg: NewRegistry(), Out: &buf}
	rt := &R{name: "body", runner: r, status: true, floatFuzz: 1, doubleFuzz: 1}

	aborted = func() (aborted bool) {
		defer func() {
			if p := recover(); p != nil {
				if _, sentinel := p.(failNow); !sentinel {
					panic(p)
				}
				aborted = true
			}
		}()
		fn(rt)
		return false
	}()
	return aborted, buf.String()
}

func TestVerify(t *testing.T) {
	if aborted, _ := runBody(func(rt *R) { Verify(rt, true) }); aborted {
		t.Error("Verify(true) aborted the body")
	}
	aborted, out := runBody(func(rt *R) { Verify(rt, false, "broken invariant") })
	if !aborted {
		t.Error("Verify(false) did not abort the body")
	}
	if !strings.Contains(out, "condition evaluated to false broken invariant") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompareExact(t *testing.T) {
	if aborted, _ := runBody(func(rt *R) { Compare(rt, "a", "a") }); aborted {
		t.Error("equal values aborted the body")
	}
	aborted, out := runBody(func(rt *R) { Compare(rt, 0.1, 0.25) })
	if !aborted {
		t.Error("unequal values did not abort the body")
	}
	if !strings.Contains(out, "test (0.1) == reference (0.25) -> false") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompareVec(t *testing.T) {
	tag := vec.FixedLanes(4)
	a := vec.Load(tag, []int32{1, 2, 3, 4})

	if aborted, _ := runBody(func(rt *R) { CompareVec(rt, a, a) }); aborted {
		t.Error("equal vectors aborted the body")
	}
	b := a.With(2, 9)
	aborted, out := runBody(func(rt *R) { CompareVec(rt, a, b) })
	if !aborted {
		t.Error("differing vectors did not abort the body")
	}
	if !strings.Contains(out, "test [1 2 3 4] == reference [1 2 9 4] -> false") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompareMasks(t *testing.T) {
	a := vec.MaskFromBits[int32](4, 0b0101)
	b := vec.MaskFromBits[int32](4, 0b0111)

	if aborted, _ := runBody(func(rt *R) { CompareMasks(rt, a, a) }); aborted {
		t.Error("equal masks aborted the body")
	}
	aborted, out := runBody(func(rt *R) { CompareMasks(rt, a, b) })
	if !aborted {
		t.Error("differing masks did not abort the body")
	}
	if !strings.Contains(out, "[1010]") || !strings.Contains(out, "[1110]") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

// The default tolerance is one ulp, inclusive: the immediate neighbour
// passes, two steps away fails.
func TestFuzzyCompareBoundary(t *testing.T) {
	ref := 1.0
	oneUp := math.Nextafter(ref, 2)
	twoUp := math.Nextafter(oneUp, 2)

	if aborted, _ := runBody(func(rt *R) { FuzzyCompare(rt, oneUp, ref) }); aborted {
		t.Error("one ulp away failed with the default tolerance")
	}
	aborted, out := runBody(func(rt *R) { FuzzyCompare(rt, twoUp, ref) })
	if !aborted {
		t.Error("two ulp away passed with the default tolerance")
	}
	if !strings.Contains(out, "distance: 2 ulp, allowed distance: ±1 ulp") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFuzzyCompareLoosenedTolerance(t *testing.T) {
	ref := float32(1)
	fourUp := ref
	for i := 0; i < 4; i++ {
		fourUp = math.Nextafter32(fourUp, 2)
	}

	if aborted, _ := runBody(func(rt *R) {
		SetFuzzyness[float32](rt, 4)
		FuzzyCompare(rt, fourUp, ref)
	}); aborted {
		t.Error("four ulp away failed with tolerance 4")
	}
	// double tolerance is independent of the float tolerance
	if aborted, _ := runBody(func(rt *R) {
		SetFuzzyness[float32](rt, 100)
		FuzzyCompare(rt, math.Nextafter(math.Nextafter(1.0, 2), 2), 1.0)
	}); !aborted {
		t.Error("float64 tolerance was affected by SetFuzzyness[float32]")
	}
}

// Non-float element types fall back to exact comparison.
func TestFuzzyCompareInteger(t *testing.T) {
	if aborted, _ := runBody(func(rt *R) { FuzzyCompare(rt, int32(5), int32(5)) }); aborted {
		t.Error("equal integers aborted the body")
	}
	if aborted, _ := runBody(func(rt *R) { FuzzyCompare(rt, int32(5), int32(6)) }); !aborted {
		t.Error("off-by-one integers passed a fuzzy comparison")
	}
}

func TestFuzzyCompareVec(t *testing.T) {
	tag := vec.FixedLanes(3)
	ref := vec.Load(tag, []float64{1, 2, 4})
	okv := vec.Load(tag, []float64{math.Nextafter(1, 2), 2, 4})
	bad := vec.Load(tag, []float64{1, 2, math.Nextafter(math.Nextafter(4.0, 5), 5)})

	if aborted, _ := runBody(func(rt *R) { FuzzyCompareVec(rt, okv, ref) }); aborted {
		t.Error("vector within tolerance aborted the body")
	}
	aborted, out := runBody(func(rt *R) { FuzzyCompareVec(rt, bad, ref) })
	if !aborted {
		t.Error("vector outside tolerance passed")
	}
	if !strings.Contains(out, "allowed distance: ±1 ulp") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompareAbsoluteError(t *testing.T) {
	if aborted, _ := runBody(func(rt *R) {
		CompareAbsoluteError(rt, 1.05, 1.0, 0.1)
	}); aborted {
		t.Error("difference within the bound aborted the body")
	}
	aborted, out := runBody(func(rt *R) {
		CompareAbsoluteError(rt, 1.25, 1.0, 0.1)
	})
	if !aborted {
		t.Error("difference beyond the bound passed")
	}
	if !strings.Contains(out, "difference: +0.25, allowed difference: ±0.1") {
		t.Errorf("unexpected output:\n%s", out)
	}

	// unsigned operands must not wrap around zero
	if aborted, _ := runBody(func(rt *R) {
		CompareAbsoluteError(rt, uint8(3), uint8(5), uint8(2))
	}); aborted {
		t.Error("unsigned difference within the bound aborted the body")
	}
	if aborted, _ := runBody(func(rt *R) {
		CompareAbsoluteError(rt, uint8(3), uint8(6), uint8(2))
	}); !aborted {
		t.Error("unsigned difference beyond the bound passed")
	}
}

func TestCompareRelativeError(t *testing.T) {
	if aborted, _ := runBody(func(rt *R) {
		CompareRelativeError(rt, 101.0, 100.0, 0.02)
	}); aborted {
		t.Error("relative error within the bound aborted the body")
	}
	if aborted, _ := runBody(func(rt *R) {
		CompareRelativeError(rt, 105.0, 100.0, 0.02)
	}); !aborted {
		t.Error("relative error beyond the bound passed")
	}
}

// A zero reference switches to the smallest positive normal value, so
// any visible deviation is an enormous relative error.
func TestCompareRelativeErrorZeroReference(t *testing.T) {
	if aborted, _ := runBody(func(rt *R) {
		CompareRelativeError(rt, 0.0, 0.0, 0.01)
	}); aborted {
		t.Error("exact zero against zero aborted the body")
	}
	if aborted, _ := runBody(func(rt *R) {
		CompareRelativeError(rt, 1e-30, 0.0, 0.01)
	}); !aborted {
		t.Error("nonzero value against a zero reference passed")
	}
	// integer types use one as the substitute reference
	if aborted, _ := runBody(func(rt *R) {
		CompareRelativeError(rt, int32(0), int32(0), 0.5)
	}); aborted {
		t.Error("zero integers aborted the body")
	}
}

func TestFailAndFormat(t *testing.T) {
	aborted, out := runBody(func(rt *R) {
		Fail(rt, "giving up: x = ", 1.5)
	})
	if !aborted {
		t.Error("Fail did not abort the body")
	}
	if !strings.Contains(out, "failed giving up: x = 1.5") {
		t.Errorf("unexpected output:\n%s", out)
	}

	// values round-trip at full precision
	if got := formatValue(float32(0.1)); got != "0.1" {
		t.Errorf("formatValue(float32(0.1)): got %q", got)
	}
	if got := formatValue(1.0000000000000002); got != "1.0000000000000002" {
		t.Errorf("formatValue: got %q", got)
	}
}
