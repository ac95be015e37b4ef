//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectImpl is the fallback for architectures without a probe: only the
// scalar ABI is available.
func detectImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
