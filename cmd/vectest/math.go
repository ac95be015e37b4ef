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

package main

import (
	"math"

	"github.com/meko-christian/algo-approx"

	"github.com/ajroetker/go-vectest/unittest"
	"github.com/ajroetker/go-vectest/vec"
)

// Float payloads: copySign across the real matrix, and the fast math
// approximations checked against the standard library at loosened
// tolerances.
func registerMathTests(reg *unittest.Registry, m matrices) {
	reg.AddTypes("copySign", m.Real, unittest.Typed{
		Float32: copySignCase[float32],
		Float64: copySignCase[float64],
	})
	reg.Add("fastLog", fastLogTest)
	reg.Add("fastExp", fastExpTest)
	reg.Add("fastSqrt", fastSqrtTest)
}

func copySignCase[T vec.Floats](rt *unittest.R, tag vec.Tag) {
	lanes := vec.LanesOf[T](tag)
	unittest.Verify(rt, lanes > 0, " lanes for ", tag.Name())

	magnitude := make([]T, lanes)
	sign := make([]T, lanes)
	want := make([]T, lanes)
	for i := range magnitude {
		magnitude[i] = T(i + 1)
		if i%2 == 0 {
			sign[i] = -1
		} else {
			sign[i] = 1
		}
		want[i] = T(math.Copysign(float64(magnitude[i]), float64(sign[i])))
	}

	got := vec.CopySign(vec.Load[T](tag, magnitude), vec.Load[T](tag, sign))
	unittest.CompareVec(rt, got, vec.Load[T](tag, want))

	// the sign of zero must be transferred too
	negZero := T(math.Copysign(0, -1))
	z := vec.CopySign(vec.Zero[T](tag), vec.Set[T](tag, -1))
	for i := 0; i < lanes; i++ {
		unittest.Verify(rt, math.Signbit(float64(z.Get(i))), " lane ", i, " of ", z)
		unittest.Compare(rt, z.Get(i), negZero)
	}
}

const fastMathSamples = 1000

func fastLogTest(rt *unittest.R) {
	unittest.SetFuzzyness[float64](rt, 1e16)
	for i := 1; i <= fastMathSamples; i++ {
		x := float64(i) * 0.25
		want := math.Log(x)
		if want == 0 {
			// log(1) is exactly zero; ulp and relative measures have no
			// scale there, so bound the absolute error instead
			unittest.CompareAbsoluteError(rt, approx.FastLog(x), want, 1e-4, " x = ", x)
			continue
		}
		unittest.FuzzyCompare(rt, approx.FastLog(x), want, " x = ", x)
		unittest.CompareRelativeError(rt, approx.FastLog(x), want, 0.05, " x = ", x)
	}
}

func fastExpTest(rt *unittest.R) {
	unittest.SetFuzzyness[float64](rt, 1e16)
	for i := 0; i < fastMathSamples; i++ {
		x := float64(i)*0.02 - 10
		unittest.FuzzyCompare(rt, approx.FastExp(x), math.Exp(x), " x = ", x)
		unittest.CompareRelativeError(rt, approx.FastExp(x), math.Exp(x), 0.05, " x = ", x)
	}
}

func fastSqrtTest(rt *unittest.R) {
	unittest.SetFuzzyness[float64](rt, 1e16)
	for i := 0; i <= fastMathSamples; i++ {
		x := float64(i) * 0.5
		want := math.Sqrt(x)
		if want != 0 {
			unittest.FuzzyCompare(rt, approx.FastSqrt(x), want, " x = ", x)
		}
		unittest.CompareAbsoluteError(rt, approx.FastSqrt(x), want, 0.05, " x = ", x)
	}
}
