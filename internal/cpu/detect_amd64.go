//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectImpl probes x86 capabilities via golang.org/x/sys/cpu.
// SSE2 is part of the x86-64 baseline and always present.
func detectImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512F:   cpu.X86.HasAVX512F,
		HasAVX512BW:  cpu.X86.HasAVX512BW,
		HasAVX512VL:  cpu.X86.HasAVX512VL,
		Architecture: runtime.GOARCH,
	}
}
