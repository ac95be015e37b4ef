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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// plotSink streams (reference, distance) pairs from fuzzy comparisons
// into a tab-separated file for offline plotting. Long runs produce a
// lot of rows, so paths ending in ".lz4" are block-compressed.
type plotSink struct {
	f  *os.File
	bw *bufio.Writer
	zw *lz4.Writer
	w  io.Writer
}

func openPlotSink(path string) (*plotSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open plot file: %w", err)
	}
	s := &plotSink{f: f, bw: bufio.NewWriter(f)}
	s.w = s.bw
	if strings.HasSuffix(path, ".lz4") {
		s.zw = lz4.NewWriter(s.bw)
		s.w = s.zw
	}
	fmt.Fprintf(s.w, "# reference\tdistance\n")
	return s, nil
}

func (s *plotSink) point(reference, distance float64) {
	fmt.Fprintf(s.w, "%.12g\t%g\n", reference, distance)
}

func (s *plotSink) close() error {
	if s.zw != nil {
		if err := s.zw.Close(); err != nil {
			return fmt.Errorf("close plot stream: %w", err)
		}
	}
	if err := s.bw.Flush(); err != nil {
		return fmt.Errorf("flush plot file: %w", err)
	}
	return s.f.Close()
}
