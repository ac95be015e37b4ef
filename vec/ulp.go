package vec

import "math"

// ULP distance between a test value and a reference, measured in units of
// least precision of the reference. The reference determines the magnitude
// of one ulp: with a reference exponent e and m mantissa bits, one ulp is
// 2^(e-m).
//
// A positive distance means the test value is larger than the reference,
// a negative distance that it is smaller:
//
//	ULPDistanceSigned(1.00000011920928955078125, 1.0) == 1  (float32)
//	ULPDistanceSigned(1.0, 1.00000011920928955078125) == -1 (float32)
//
// Distance to a zero reference is measured against the smallest positive
// normal value of the type instead, plus one.

// ULPDistanceSigned returns the signed ulp distance from ref to val.
func ULPDistanceSigned[T Floats](val, ref T) float64 {
	m := ULPDistance(val, ref)
	if float64(val) < float64(ref) {
		return -m
	}
	return m
}

// ULPDistance returns the magnitude of the ulp distance from ref to val.
func ULPDistance[T Floats](val, ref T) float64 {
	mantBits, minNormal := floatLayout[T]()
	return ulpMag(float64(val), float64(ref), minNormal, mantBits)
}

// ULPDiffVec returns the per-lane signed ulp distances of a against b,
// with b the reference.
func ULPDiffVec[T Floats](a, b Vec[T]) []float64 {
	n := min(a.NumLanes(), b.NumLanes())
	out := make([]float64, n)
	for i := range n {
		out[i] = ULPDistanceSigned(a.data[i], b.data[i])
	}
	return out
}

// floatLayout returns the mantissa bit count (including the implicit bit)
// and the smallest positive normal value of T.
func floatLayout[T Floats]() (mantBits int, minNormal float64) {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 24, 0x1p-126
	default:
		return 53, 0x1p-1022
	}
}

func ulpMag(val, ref, minNormal float64, mantBits int) float64 {
	if val == ref {
		return 0
	}
	if math.IsNaN(val) || math.IsNaN(ref) {
		return math.NaN()
	}
	// Distance to zero: measure against the smallest normal and add one,
	// so the smallest nonzero normal value is one ulp away from zero.
	if ref == 0 {
		return 1 + ulpMag(math.Abs(val), minNormal, minNormal, mantBits)
	}
	if val == 0 {
		return 1 + ulpMag(minNormal, math.Abs(ref), minNormal, mantBits)
	}
	_, exp := math.Frexp(ref)
	return math.Ldexp(math.Abs(ref-val), mantBits-exp)
}
