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
	"github.com/ajroetker/go-vectest/unittest"
)

// A few tests of the harness itself: expected failures, expected
// assertion trips, and expected panics must all classify correctly.
func registerSelfChecks(reg *unittest.Registry) {
	reg.Add("harnessExpectedFailure", func(rt *unittest.R) {
		rt.ExpectFailure()
		unittest.Compare(rt, 1, 2, " deliberately wrong")
	})
	reg.Add("harnessExpectedAssertion", func(rt *unittest.R) {
		rt.ExpectAssertFailure(func() {
			rt.Assert(false, "deliberately tripped")
		})
	})
	reg.AddPanicking("harnessExpectedPanic", func(rt *unittest.R) {
		panic("deliberate panic")
	})
}
