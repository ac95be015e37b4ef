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
	"io"
	"math"
	"runtime"
	"strings"

	"github.com/ajroetker/go-vectest/vec"
)

// failNow is the sentinel panicked by a failing comparison to abort the
// current test body. The runner recovers it at the per-test boundary;
// any other panic value counts as an unexpected panic.
type failNow struct{}

// R is the per-test run context. One R is created for each executed test
// and discarded afterwards, so fuzziness settings and distance
// statistics never leak between tests.
type R struct {
	name   string
	runner *Runner

	status        bool
	expectFailure bool

	expectAssertFailure bool
	assertFailures      int

	// ulp tolerances for FuzzyCompare, reset to 1 per test
	floatFuzz  float64
	doubleFuzz float64

	// distance statistics over all fuzzy comparisons of this test
	maxDist   float64
	meanDist  float64
	meanCount int
}

// Name returns the display name of the running test.
func (rt *R) Name() string { return rt.name }

// Failed reports whether a non-aborting failure has already been
// recorded for this test.
func (rt *R) Failed() bool { return !rt.status }

// ExpectFailure marks the current test as expected to fail. A failing
// body is then reported as XFAIL and does not count against the run; a
// passing body is reported as an unexpected PASS and does.
func (rt *R) ExpectFailure() {
	rt.expectFailure = true
}

// Assert checks an internal invariant of code under test. Outside an
// ExpectAssertFailure block a false condition is an ordinary aborting
// failure; inside one it is counted and swallowed.
func (rt *R) Assert(cond bool, detail ...any) {
	if cond {
		return
	}
	if rt.expectAssertFailure {
		rt.assertFailures++
		return
	}
	rt.report(message("assertion failed", detail)...)
	rt.abort()
}

// ExpectAssertFailure runs fn and requires that it trips at least one
// Assert. If it does not, the block fails with its own message and the
// test body is aborted.
func (rt *R) ExpectAssertFailure(fn func()) {
	rt.expectAssertFailure = true
	rt.assertFailures = 0
	fn()
	rt.expectAssertFailure = false
	if rt.assertFailures == 0 {
		rt.report("the code was expected to trigger an assertion, but it did not")
		rt.abort()
	}
}

// SetFuzzyness loosens the tolerance of subsequent FuzzyCompare calls
// for the given float type, in units in the last place. The tolerance
// reverts to 1 when the next test starts.
func SetFuzzyness[T vec.Floats](rt *R, fuzz float64) {
	var zero T
	switch any(zero).(type) {
	case float32:
		rt.floatFuzz = fuzz
	default:
		rt.doubleFuzz = fuzz
	}
}

func (rt *R) out() io.Writer {
	return rt.runner.Out
}

func (rt *R) failTag() string {
	return rt.runner.failTag(rt.expectFailure)
}

// report prints one failure block and marks the test failed. The
// closing "┕ name" line is printed by the runner once the body has
// unwound.
func (rt *R) report(lines ...string) {
	tag := rt.failTag()
	fmt.Fprintf(rt.out(), "%s┍ at %s:\n", tag, callerLocation())
	for _, l := range lines {
		fmt.Fprintf(rt.out(), "%s│ %s\n", tag, l)
	}
	rt.status = false
}

func (rt *R) abort() {
	panic(failNow{})
}

// recordDistance folds one fuzzy-comparison ulp distance into the
// per-test statistics and streams it to the plot sink if one is open.
func (rt *R) recordDistance(dist, reference float64) {
	d := math.Abs(dist)
	if d > rt.maxDist {
		rt.maxDist = d
	}
	rt.meanDist += d
	rt.meanCount++
	rt.runner.plotPoint(reference, dist)
}

// callerLocation walks the stack to the first frame outside this
// package, which is the payload line that invoked the comparison.
func callerLocation() string {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.File != "" && !strings.Contains(f.File, "/unittest/") {
			return fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		if !more {
			return "unknown:0"
		}
	}
}
