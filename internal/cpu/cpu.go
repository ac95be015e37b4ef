// Package cpu provides CPU capability detection for the test-type matrix.
//
// The typelist package gates ABI expansions on the Features reported here.
// Detection runs once, lazily, and is cached; tests can force an arbitrary
// flag combination to exercise matrix assembly for hardware they don't have.
package cpu

import "sync"

// Features describes the SIMD capabilities relevant to ABI selection.
//
// The x86 flags intentionally separate "partial" and "full" extension
// support: AVX without AVX2 only covers floating-point vectors, and
// AVX-512 without BW/VL cannot form byte/word or narrow vectors. The
// matrix assembly keys on these distinctions.
type Features struct {
	// x86/amd64
	HasSSE2     bool // x86-64 baseline, integer + float vectors
	HasSSE41    bool // full SSE integer support
	HasAVX      bool // 256-bit float vectors only
	HasAVX2     bool // full 256-bit integer + float vectors
	HasAVX512F  bool // 512-bit foundation (dword/qword lanes)
	HasAVX512BW bool // byte/word lanes in 512-bit vectors
	HasAVX512VL bool // AVX-512 instructions on 128/256-bit vectors

	// ARM
	HasNEON bool // Advanced SIMD (mandatory on ARMv8-A)

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
)

// Detect returns the capabilities of the current CPU. The first call runs
// the architecture-specific probe; later calls return the cached result.
func Detect() Features {
	detectOnce.Do(func() {
		detected = detectImpl()
	})
	return detected
}

// FullAVX512 reports whether f supports AVX-512 on every lane width.
func (f Features) FullAVX512() bool {
	return f.HasAVX512F && f.HasAVX512BW
}

// None returns a Features value with every capability cleared, useful as
// the scalar-only configuration.
func None() Features {
	return Features{Architecture: "none"}
}
