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

	"github.com/cwbudde/algo-vecmath"

	"github.com/ajroetker/go-vectest/unittest"
	"github.com/ajroetker/go-vectest/vec"
)

// The block kernels must agree with the lane-at-a-time reference ops.
// Only float64 entries participate: the kernels are float64-only.
func registerBlockTests(reg *unittest.Registry, m matrices) {
	reg.AddTypes("mulBlock", m.Reduced, unittest.Typed{
		Float64: mulBlockCase,
	})
	reg.Add("magnitudeBlock", magnitudeBlockTest)
	reg.Add("mulBlockInPlace", mulBlockInPlaceTest)
}

func mulBlockCase(rt *unittest.R, tag vec.Tag) {
	lanes := vec.LanesOf[float64](tag)
	unittest.Verify(rt, lanes > 0, " lanes for ", tag.Name())

	a := make([]float64, lanes)
	b := make([]float64, lanes)
	for i := range a {
		a[i] = float64(i+1) * 0.5
		b[i] = float64(lanes - i)
	}

	want := vec.Mul(vec.Load[float64](tag, a), vec.Load[float64](tag, b))
	got := make([]float64, lanes)
	vecmath.MulBlock(got, a, b)
	unittest.CompareVec(rt, vec.Load[float64](tag, got), want)
}

const blockLength = 64

func magnitudeBlockTest(rt *unittest.R) {
	re := make([]float64, blockLength)
	im := make([]float64, blockLength)
	for i := range re {
		re[i] = math.Cos(float64(i) * 0.1)
		im[i] = math.Sin(float64(i) * 0.1)
	}

	out := make([]float64, blockLength)
	vecmath.Magnitude(out, re, im)
	unittest.SetFuzzyness[float64](rt, 4)
	for i := range out {
		unittest.FuzzyCompare(rt, out[i], math.Hypot(re[i], im[i]), " index ", i)
	}
}

func mulBlockInPlaceTest(rt *unittest.R) {
	buf := make([]float64, blockLength)
	coeffs := make([]float64, blockLength)
	want := make([]float64, blockLength)
	for i := range buf {
		buf[i] = float64(i) - 31.5
		coeffs[i] = 1 / float64(i+1)
		want[i] = buf[i] * coeffs[i]
	}

	vecmath.MulBlockInPlace(buf, coeffs)
	for i := range buf {
		unittest.Compare(rt, buf[i], want[i], " index ", i)
	}
}
