package unittest

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func runRegistry(reg *Registry) (*Runner, int, string) {
	var buf bytes.Buffer
	r := &Runner{reg: reg, Out: &buf}
	r.RunAll()
	code := r.Finalize()
	return r, code, buf.String()
}

func TestRunnerPassing(t *testing.T) {
	reg := NewRegistry()
	reg.Add("alwaysPasses", func(rt *R) {
		Compare(rt, 4, 4)
	})

	r, code, out := runRegistry(reg)
	if code != 0 {
		t.Errorf("exit code: got %d, want 0", code)
	}
	if r.Passed() != 1 || r.Failed() != 0 {
		t.Errorf("counters: %d passed, %d failed", r.Passed(), r.Failed())
	}
	if !strings.Contains(out, " PASS: alwaysPasses\n") {
		t.Errorf("missing PASS line in output:\n%s", out)
	}
	if !strings.Contains(out, "\n Testing done. 1 tests passed. 0 tests failed.\n") {
		t.Errorf("missing summary in output:\n%s", out)
	}
}

func TestRunnerFailing(t *testing.T) {
	reg := NewRegistry()
	reg.Add("alwaysFails", func(rt *R) {
		Compare(rt, 1, 2, " should differ")
	})

	r, code, out := runRegistry(reg)
	if code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if r.Passed() != 0 || r.Failed() != 1 {
		t.Errorf("counters: %d passed, %d failed", r.Passed(), r.Failed())
	}
	if !strings.Contains(out, " FAIL: ┍ at ") {
		t.Errorf("missing failure header in output:\n%s", out)
	}
	if !strings.Contains(out, " FAIL: │ test (1) == reference (2) -> false  should differ\n") {
		t.Errorf("missing failure detail in output:\n%s", out)
	}
	if !strings.Contains(out, " FAIL: ┕ alwaysFails\n") {
		t.Errorf("missing failure footer in output:\n%s", out)
	}
	if !strings.Contains(out, "1 tests failed.") {
		t.Errorf("missing summary in output:\n%s", out)
	}
}

// The first failing comparison aborts the body; later statements must
// not run.
func TestRunnerAbortsBodyOnFirstFailure(t *testing.T) {
	reg := NewRegistry()
	reached := false
	reg.Add("failsEarly", func(rt *R) {
		Verify(rt, false)
		reached = true
	})
	reg.Add("runsAfterFailure", func(rt *R) {
		Compare(rt, 1, 1)
	})

	r, _, _ := runRegistry(reg)
	if reached {
		t.Error("statement after a failing comparison was executed")
	}
	if r.Passed() != 1 || r.Failed() != 1 {
		t.Errorf("counters: %d passed, %d failed", r.Passed(), r.Failed())
	}
}

func TestRunnerExpectedFailure(t *testing.T) {
	reg := NewRegistry()
	reg.Add("knownBroken", func(rt *R) {
		rt.ExpectFailure()
		Compare(rt, 1, 2)
	})

	r, code, out := runRegistry(reg)
	if code != 0 {
		t.Errorf("exit code: got %d, want 0", code)
	}
	if r.Failed() != 0 {
		t.Errorf("expected failure counted as failed")
	}
	if !strings.Contains(out, "XFAIL: knownBroken\n") {
		t.Errorf("missing XFAIL line in output:\n%s", out)
	}
	if !strings.Contains(out, "XFAIL: ┍ at ") {
		t.Errorf("expected-failure block not tagged XFAIL:\n%s", out)
	}
}

func TestRunnerUnexpectedPass(t *testing.T) {
	reg := NewRegistry()
	reg.Add("fixedButStillMarked", func(rt *R) {
		rt.ExpectFailure()
		Compare(rt, 2, 2)
	})

	r, code, out := runRegistry(reg)
	if code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if r.Failed() != 1 {
		t.Errorf("unexpected pass not counted as failed")
	}
	if !strings.Contains(out, "unexpected PASS: fixedButStillMarked\n") {
		t.Errorf("missing unexpected PASS line in output:\n%s", out)
	}
}

func TestRunnerRecoversPanic(t *testing.T) {
	reg := NewRegistry()
	reg.Add("blowsUp", func(rt *R) {
		panic("kaboom")
	})
	reg.Add("survives", func(rt *R) {
		Compare(rt, 1, 1)
	})

	r, code, out := runRegistry(reg)
	if code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if r.Passed() != 1 || r.Failed() != 1 {
		t.Errorf("counters: %d passed, %d failed", r.Passed(), r.Failed())
	}
	if !strings.Contains(out, "blowsUp panicked unexpectedly:") {
		t.Errorf("missing panic report in output:\n%s", out)
	}
	if !strings.Contains(out, "│ kaboom\n") {
		t.Errorf("missing panic value in output:\n%s", out)
	}
}

func TestRunnerOnlyFilter(t *testing.T) {
	reg := NewRegistry()
	ran := []string{}
	for _, name := range []string{"first", "second", "third"} {
		name := name
		reg.Add(name, func(rt *R) {
			ran = append(ran, name)
		})
	}

	var buf bytes.Buffer
	r := &Runner{reg: reg, Out: &buf, Only: "second"}
	r.RunAll()
	r.Finalize()

	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("Only filter ran %v", ran)
	}
	if r.Passed() != 1 {
		t.Errorf("passed: got %d, want 1", r.Passed())
	}
}

func TestRunnerMaxDistanceReport(t *testing.T) {
	reg := NewRegistry()
	reg.Add("exact", func(rt *R) {
		SetFuzzyness[float64](rt, 4)
		FuzzyCompare(rt, 1.0, 1.0)
	})
	reg.Add("oneUlpOff", func(rt *R) {
		SetFuzzyness[float64](rt, 4)
		FuzzyCompare(rt, math.Nextafter(1, 2), 1.0)
	})

	var buf bytes.Buffer
	r := &Runner{reg: reg, Out: &buf, FindMaxDistance: true}
	r.RunAll()
	r.Finalize()

	if !strings.Contains(buf.String(), " PASS: exact all values matched the reference precisely.\n") {
		t.Errorf("missing exact-match report in output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), " PASS: oneUlpOff with a maximal distance of 1 to the reference (mean: 1).\n") {
		t.Errorf("missing distance report in output:\n%s", buf.String())
	}
}

func TestRegistryAddPanicking(t *testing.T) {
	reg := NewRegistry()
	reg.AddPanicking("mustPanic", func(rt *R) {
		panic("expected")
	})
	reg.AddPanicking("forgotToPanic", func(rt *R) {})

	r, _, out := runRegistry(reg)
	if r.Passed() != 1 || r.Failed() != 1 {
		t.Errorf("counters: %d passed, %d failed", r.Passed(), r.Failed())
	}
	if !strings.Contains(out, " PASS: mustPanic\n") {
		t.Errorf("panicking test did not pass:\n%s", out)
	}
	if !strings.Contains(out, "test was expected to panic, but it didn't") {
		t.Errorf("missing message for the non-panicking test:\n%s", out)
	}
}

func TestExpectAssertFailure(t *testing.T) {
	reg := NewRegistry()
	reg.Add("tripsAssertion", func(rt *R) {
		rt.ExpectAssertFailure(func() {
			rt.Assert(false, "on purpose")
		})
	})
	reg.Add("missesAssertion", func(rt *R) {
		rt.ExpectAssertFailure(func() {})
	})
	reg.Add("plainAssertion", func(rt *R) {
		rt.Assert(false, "aborts the body")
	})

	r, _, out := runRegistry(reg)
	if r.Passed() != 1 || r.Failed() != 2 {
		t.Errorf("counters: %d passed, %d failed", r.Passed(), r.Failed())
	}
	if !strings.Contains(out, "expected to trigger an assertion") {
		t.Errorf("missing missed-assertion message:\n%s", out)
	}
	if !strings.Contains(out, "assertion failed aborts the body") {
		t.Errorf("missing plain assertion message:\n%s", out)
	}
}
