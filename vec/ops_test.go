package vec

import (
	"math"
	"testing"
)

var testTag = FixedLanes(8)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(testTag, data)

	if v.NumLanes() != 8 {
		t.Fatalf("Load: got %d lanes, want 8", v.NumLanes())
	}
	for i := range data {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShortSourcePadsWithZeros(t *testing.T) {
	v := Load(testTag, []int32{1, 2, 3})

	if v.NumLanes() != 8 {
		t.Fatalf("Load: got %d lanes, want 8", v.NumLanes())
	}
	for i := 3; i < 8; i++ {
		if v.data[i] != 0 {
			t.Errorf("Load: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestSet(t *testing.T) {
	v := Set(testTag, float32(42.0))

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32](testTag)

	if v.NumLanes() != 8 {
		t.Fatalf("Zero: got %d lanes, want 8", v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[int16](testTag)

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != int16(i) {
			t.Errorf("Iota: lane %d: got %v, want %d", i, v.data[i], i)
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set(testTag, float32(10.0))
	b := Set(testTag, float32(5.0))
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.data[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	a := Load(testTag, []int32{1, 9, 3, 7, 5, 5, 0, -2})
	b := Load(testTag, []int32{2, 8, 3, 6, 4, 5, -1, 2})

	lo := Min(a, b)
	hi := Max(a, b)
	for i := 0; i < 8; i++ {
		wantLo := min(a.data[i], b.data[i])
		wantHi := max(a.data[i], b.data[i])
		if lo.data[i] != wantLo {
			t.Errorf("Min: lane %d: got %v, want %v", i, lo.data[i], wantLo)
		}
		if hi.data[i] != wantHi {
			t.Errorf("Max: lane %d: got %v, want %v", i, hi.data[i], wantHi)
		}
	}
}

func TestNegAbs(t *testing.T) {
	v := Load(testTag, []int32{1, -2, 3, -4, 0, -6, 7, -8})

	n := Neg(v)
	a := Abs(v)
	for i := 0; i < 8; i++ {
		if n.data[i] != -v.data[i] {
			t.Errorf("Neg: lane %d: got %v, want %v", i, n.data[i], -v.data[i])
		}
		want := v.data[i]
		if want < 0 {
			want = -want
		}
		if a.data[i] != want {
			t.Errorf("Abs: lane %d: got %v, want %v", i, a.data[i], want)
		}
	}
}

func TestSorted(t *testing.T) {
	v := Load(testTag, []float64{7, 1, 5, 3, 0, 6, 2, 4})
	s := Sorted(v)

	for i := 0; i < 8; i++ {
		if s.data[i] != float64(i) {
			t.Errorf("Sorted: lane %d: got %v, want %d", i, s.data[i], i)
		}
	}
	// the input is untouched
	if v.data[0] != 7 {
		t.Errorf("Sorted modified its input: lane 0 is %v", v.data[0])
	}
}

func TestCopySign(t *testing.T) {
	v := Load(testTag, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	s := Load(testTag, []float64{1, -1, 1, -1, -0.0, 0.0, -2, 2})
	r := CopySign(v, s)

	for i := 0; i < 8; i++ {
		want := math.Copysign(v.data[i], s.data[i])
		got := r.data[i]
		if got != want || math.Signbit(got) != math.Signbit(want) {
			t.Errorf("CopySign: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestEqualLessThan(t *testing.T) {
	a := Load(testTag, []int32{1, 2, 3, 4, 5, 6, 7, 8})
	b := Load(testTag, []int32{1, 3, 3, 3, 5, 7, 7, 7})

	eq := Equal(a, b)
	lt := LessThan(a, b)
	for i := 0; i < 8; i++ {
		if eq.GetBit(i) != (a.data[i] == b.data[i]) {
			t.Errorf("Equal: lane %d: got %v", i, eq.GetBit(i))
		}
		if lt.GetBit(i) != (a.data[i] < b.data[i]) {
			t.Errorf("LessThan: lane %d: got %v", i, lt.GetBit(i))
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Iota[int64](testTag)
	if got := ReduceSum(v); got != 28 {
		t.Errorf("ReduceSum: got %v, want 28", got)
	}
}

func TestReduceMax(t *testing.T) {
	v := Load(testTag, []float32{3, 9, 1, 4, 1, 5, 9, 2})
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}
}

func TestIfThenElse(t *testing.T) {
	m := MaskFromBits[int32](8, 0b10101010)
	yes := Set(testTag, int32(1))
	no := Set(testTag, int32(-1))
	r := IfThenElse(m, yes, no)

	for i := 0; i < 8; i++ {
		want := int32(-1)
		if i%2 == 1 {
			want = 1
		}
		if r.data[i] != want {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, r.data[i], want)
		}
	}
}

func TestMaskFromBits(t *testing.T) {
	m := MaskFromBits[int8](5, 0b10011)

	if m.NumLanes() != 5 {
		t.Fatalf("MaskFromBits: got %d lanes, want 5", m.NumLanes())
	}
	want := []bool{true, true, false, false, true}
	for i, w := range want {
		if m.GetBit(i) != w {
			t.Errorf("MaskFromBits: bit %d: got %v, want %v", i, m.GetBit(i), w)
		}
	}
	if m.CountTrue() != 3 {
		t.Errorf("CountTrue: got %d, want 3", m.CountTrue())
	}
	if m.AllTrue() || m.Empty() || !m.AnyTrue() {
		t.Errorf("mask predicates: AllTrue=%v AnyTrue=%v Empty=%v",
			m.AllTrue(), m.AnyTrue(), m.Empty())
	}
}

func TestMaskAll(t *testing.T) {
	if !MaskAll[int32](4, true).AllTrue() {
		t.Error("MaskAll(true) is not all true")
	}
	if !MaskAll[int32](4, false).Empty() {
		t.Error("MaskAll(false) is not empty")
	}
}

func TestVecString(t *testing.T) {
	v := Load(FixedLanes(3), []int32{3, 1, 2})
	if got := v.String(); got != "[3 1 2]" {
		t.Errorf("String: got %q, want %q", got, "[3 1 2]")
	}
}
