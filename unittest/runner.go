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
	"os"
)

// Runner executes a registry and aggregates the results. Results are
// streamed to Out as tests run, one PASS/FAIL/XFAIL line (or block) per
// test, followed by a summary from Finalize.
type Runner struct {
	reg *Registry

	// Out receives all result output. Defaults to os.Stdout.
	Out io.Writer

	// Only, when non-empty, restricts the run to the test with this
	// exact name.
	Only string

	// FindMaxDistance adds maximal and mean ulp distance to each
	// test's result line.
	FindMaxDistance bool

	color  bool
	plot   *plotSink
	passed int
	failed int
}

// NewRunner returns a runner for the given registry, writing colorized
// results to stdout when it is a terminal.
func NewRunner(reg *Registry) *Runner {
	return &Runner{
		reg:   reg,
		Out:   os.Stdout,
		color: isTerminal(os.Stdout),
	}
}

func isTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}

// OpenPlot opens path as the sink for fuzzy-comparison distances. A
// path ending in ".lz4" is compressed on the fly.
func (r *Runner) OpenPlot(path string) error {
	s, err := openPlotSink(path)
	if err != nil {
		return err
	}
	r.plot = s
	return nil
}

func (r *Runner) plotPoint(reference, distance float64) {
	if r.plot != nil {
		r.plot.point(reference, distance)
	}
}

// Passed returns the number of tests that passed so far.
func (r *Runner) Passed() int { return r.passed }

// Failed returns the number of tests that failed so far.
func (r *Runner) Failed() int { return r.failed }

// RunAll executes every registered test in registration order,
// honouring the Only filter.
func (r *Runner) RunAll() {
	for _, rec := range r.reg.Tests() {
		if r.Only != "" && r.Only != rec.Name {
			continue
		}
		r.runTest(rec)
	}
}

// runTest executes one test body in a fresh context and classifies the
// outcome. Fuzziness always starts at 1 ulp.
func (r *Runner) runTest(rec TestRecord) {
	rt := &R{
		name:       rec.Name,
		runner:     r,
		status:     true,
		floatFuzz:  1,
		doubleFuzz: 1,
	}
	r.invoke(rt, rec.Fn)

	switch {
	case rt.expectFailure && !rt.status:
		fmt.Fprintf(r.Out, "XFAIL: %s\n", rec.Name)
	case rt.expectFailure:
		fmt.Fprintf(r.Out, "unexpected PASS: %s\n    This test should have failed but didn't. Check the code!\n", rec.Name)
		r.failed++
	case !rt.status:
		tag := r.failTag(false)
		if r.FindMaxDistance && rt.meanCount > 0 {
			fmt.Fprintf(r.Out, "%s│ with a maximal distance of %g to the reference (mean: %g).\n",
				tag, rt.maxDist, rt.meanDist/float64(rt.meanCount))
		}
		fmt.Fprintf(r.Out, "%s┕ %s\n", tag, rec.Name)
		r.failed++
	default:
		fmt.Fprintf(r.Out, "%s%s", r.passTag(), rec.Name)
		if r.FindMaxDistance && rt.meanCount > 0 {
			if rt.maxDist == 0 {
				fmt.Fprint(r.Out, " all values matched the reference precisely.")
			} else {
				fmt.Fprintf(r.Out, " with a maximal distance of %g to the reference (mean: %g).",
					rt.maxDist, rt.meanDist/float64(rt.meanCount))
			}
		}
		fmt.Fprintln(r.Out)
		r.passed++
	}
}

// invoke runs the body behind the per-test panic boundary. The failNow
// sentinel means the failure was already reported; anything else is an
// unexpected panic and gets its own block.
func (r *Runner) invoke(rt *R, fn TestFunc) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, sentinel := p.(failNow); sentinel {
			return
		}
		tag := rt.failTag()
		fmt.Fprintf(r.Out, "%s┍ %s panicked unexpectedly:\n", tag, rt.name)
		fmt.Fprintf(r.Out, "%s│ %v\n", tag, p)
		rt.status = false
	}()
	fn(rt)
}

// Finalize closes the plot sink, prints the summary, and returns the
// failed count for use as the process exit status.
func (r *Runner) Finalize() int {
	if r.plot != nil {
		r.plot.close()
		r.plot = nil
	}
	fmt.Fprintf(r.Out, "\n Testing done. %d tests passed. %d tests failed.\n", r.passed, r.failed)
	return r.failed
}

func (r *Runner) failTag(expected bool) string {
	if expected {
		return "XFAIL: "
	}
	if r.color {
		return " \033[1;40;31mFAIL:\033[0m "
	}
	return " FAIL: "
}

func (r *Runner) passTag() string {
	if r.color {
		return " \033[1;40;32mPASS:\033[0m "
	}
	return " PASS: "
}
