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

// vectest runs the vector-library test suite across the full element
// type × ABI matrix supported by the host CPU and exits with the number
// of failed tests.
//
// Usage:
//
//	vectest [flags]
//
// Flags:
//
//	-only <name>    run only the test with this exact name
//	-maxdist        report maximal and mean ulp distance per test
//	-plotdist <f>   stream fuzzy-comparison distances to a file
//	-config <f>     YAML run configuration
//	-seed <n>       pin all randomized matrix choices
//	-list           list registered tests instead of running them
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/ajroetker/go-vectest/internal/config"
	"github.com/ajroetker/go-vectest/internal/cpu"
	"github.com/ajroetker/go-vectest/typelist"
	"github.com/ajroetker/go-vectest/unittest"
	"github.com/ajroetker/go-vectest/vec"
)

func main() {
	var (
		only       = flag.String("only", "", "run only the test with this exact name")
		maxDist    = flag.Bool("maxdist", false, "report maximal and mean ulp distance per test")
		plotFile   = flag.String("plotdist", "", "stream fuzzy-comparison distances to this file (.lz4 compresses)")
		configPath = flag.String("config", "", "YAML run configuration file")
		seed       = flag.Int64("seed", 0, "seed for randomized matrix choices (0 means a fresh seed per run)")
		list       = flag.Bool("list", false, "list registered tests instead of running them")
	)
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vectest: %v\n", err)
			os.Exit(1)
		}
	}
	if *only != "" {
		cfg.Only = *only
	}
	if *maxDist {
		cfg.MaxDistance = true
	}
	if *plotFile != "" {
		cfg.PlotFile = *plotFile
	}
	if *seed != 0 {
		cfg.Seed = seed
	}

	if !vec.CurrentSupported() {
		fmt.Fprintf(os.Stderr, "vectest: CPU does not support the %s instruction set\n", vec.CurrentName())
		os.Exit(1)
	}

	var rng *rand.Rand
	if cfg.Seed != nil {
		rng = rand.New(rand.NewPCG(uint64(*cfg.Seed), 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	caps := cpu.Detect()
	types := typelist.Restrict(typelist.AllTypes(), cfg.Kinds())
	if cfg.OneRandomType {
		types = typelist.ChooseOneRandomly(rng, types)
	}

	m := matrices{
		All:     typelist.AllTestTypes(caps, types, cfg.ABIs, rng),
		Real:    typelist.RealTestTypes(caps, types, cfg.ABIs, rng),
		Many:    typelist.ManyFixedSizeTypes(types),
		Reduced: typelist.ReducedTestTypes(caps, types),
	}

	reg := unittest.NewRegistry()
	registerAll(reg, rng, m)

	if *list {
		fmt.Printf("instruction set: %s (%d-byte vectors)\n\n", vec.CurrentName(), vec.CurrentWidth())
		listTests(os.Stdout, reg)
		return
	}

	r := unittest.NewRunner(reg)
	r.Only = cfg.Only
	r.FindMaxDistance = cfg.MaxDistance
	if cfg.PlotFile != "" {
		if err := r.OpenPlot(cfg.PlotFile); err != nil {
			fmt.Fprintf(os.Stderr, "vectest: %v\n", err)
			os.Exit(1)
		}
	}
	r.RunAll()
	os.Exit(r.Finalize())
}
