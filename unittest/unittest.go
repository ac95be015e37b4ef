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

// Package unittest is the registration and execution engine of the test
// harness.
//
// Startup is an explicit two-phase affair: payloads register test
// functions into a Registry (usually once per entry of a typelist
// matrix), then a Runner executes the registry in registration order and
// reports per-test PASS/FAIL/XFAIL lines plus a final summary whose
// failed count doubles as the process exit status.
//
//	reg := unittest.NewRegistry()
//	reg.Add("twoPlusTwo", func(rt *unittest.R) {
//		unittest.Compare(rt, 2+2, 4)
//	})
//	r := unittest.NewRunner(reg)
//	r.RunAll()
//	os.Exit(r.Finalize())
//
// The first failing comparison inside a test body aborts that body only;
// the run always continues with the next test.
package unittest

import (
	"github.com/ajroetker/go-vectest/typelist"
	"github.com/ajroetker/go-vectest/vec"
)

// TestFunc is the body of a single registered test.
type TestFunc func(rt *R)

// TestRecord pairs a display name with a test body.
type TestRecord struct {
	Name string
	Fn   TestFunc
}

// Registry is the append-only collection of tests for one run.
// Registration order is execution order.
type Registry struct {
	tests []TestRecord
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a test to the registry.
func (g *Registry) Add(name string, fn TestFunc) {
	g.tests = append(g.tests, TestRecord{Name: name, Fn: fn})
}

// AddPanicking appends a test whose body is expected to panic. A body
// that returns normally fails; the recovered panic value is swallowed.
func (g *Registry) AddPanicking(name string, fn TestFunc) {
	g.Add(name, func(rt *R) {
		defer func() {
			if p := recover(); p != nil {
				if _, failed := p.(failNow); failed {
					panic(p)
				}
				// expected panic, test passes
			}
		}()
		fn(rt)
		Fail(rt, "test was expected to panic, but it didn't")
	})
}

// Tests returns the registered records in registration order.
func (g *Registry) Tests() []TestRecord {
	return g.tests
}

// Len returns the number of registered tests.
func (g *Registry) Len() int {
	return len(g.tests)
}

// TypedFunc is a test body instantiated for one element kind; the tag
// tells it which ABI to build its vectors with.
type TypedFunc func(rt *R, tag vec.Tag)

// Typed holds one instantiation of a generic test body per element kind.
// Payload authors fill it with explicit generic instantiations:
//
//	unittest.Typed{
//		Int32:   sortCase[int32],
//		Float32: sortCase[float32],
//		...
//	}
//
// A nil field means the payload does not support that kind; matrix
// entries for it are skipped.
type Typed struct {
	Int8    TypedFunc
	Uint8   TypedFunc
	Int16   TypedFunc
	Uint16  TypedFunc
	Int32   TypedFunc
	Uint32  TypedFunc
	Int64   TypedFunc
	Uint64  TypedFunc
	Float32 TypedFunc
	Float64 TypedFunc
}

func (t Typed) forKind(k typelist.Kind) TypedFunc {
	switch k {
	case typelist.Int8:
		return t.Int8
	case typelist.Uint8:
		return t.Uint8
	case typelist.Int16:
		return t.Int16
	case typelist.Uint16:
		return t.Uint16
	case typelist.Int32:
		return t.Int32
	case typelist.Uint32:
		return t.Uint32
	case typelist.Int64:
		return t.Int64
	case typelist.Uint64:
		return t.Uint64
	case typelist.Float32:
		return t.Float32
	case typelist.Float64:
		return t.Float64
	}
	return nil
}

// AddTypes registers one test per matrix entry, named
// "name<elem/abi>", in entry order.
func (g *Registry) AddTypes(name string, entries []typelist.Entry, fns Typed) {
	for _, e := range entries {
		fn := fns.forKind(e.Elem)
		if fn == nil {
			continue
		}
		tag := e.ABI
		g.Add(name+"<"+e.String()+">", func(rt *R) {
			fn(rt, tag)
		})
	}
}
