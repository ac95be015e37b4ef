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
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-vectest/typelist"
	"github.com/ajroetker/go-vectest/unittest"
)

// matrices holds the type × ABI matrices the payloads register over.
type matrices struct {
	// All is the full matrix of every element type on every supported ABI.
	All []typelist.Entry
	// Real is the float-only slice of the full matrix.
	Real []typelist.Entry
	// Many covers a spread of fixed lane counts over float32.
	Many []typelist.Entry
	// Reduced keeps only the native ABIs, for expensive payloads.
	Reduced []typelist.Entry
}

// registerAll wires every payload into the registry. Registration order
// is run order.
func registerAll(reg *unittest.Registry, rng *rand.Rand, m matrices) {
	registerSortTests(reg, rng, m)
	registerCallTests(reg, rng, m)
	registerMaskTests(reg, rng, m)
	registerMathTests(reg, m)
	registerBlockTests(reg, m)
	registerSelfChecks(reg)
}

// listTests prints the registered test names grouped by payload.
func listTests(w io.Writer, reg *unittest.Registry) {
	title := cases.Title(language.English)
	var last string
	for _, rec := range reg.Tests() {
		base, _, _ := strings.Cut(rec.Name, "<")
		if base != last {
			fmt.Fprintf(w, "%s:\n", title.String(base))
			last = base
		}
		fmt.Fprintf(w, "  %s\n", rec.Name)
	}
}
