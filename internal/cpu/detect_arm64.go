//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectImpl probes ARM capabilities. NEON (Advanced SIMD) is mandatory on
// ARMv8-A, but the kernel still reports it, so trust the HWCAP bit.
func detectImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
