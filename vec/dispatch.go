package vec

import (
	"os"
	"strconv"

	"github.com/ajroetker/go-vectest/internal/cpu"
)

// Level represents a SIMD instruction-set level.
type Level int

const (
	// LevelScalar indicates no SIMD, one lane per vector.
	LevelScalar Level = iota

	// LevelSSE2 indicates 128-bit x86 vectors (x86-64 baseline).
	LevelSSE2

	// LevelAVX indicates 256-bit x86 vectors, floating point only.
	LevelAVX

	// LevelAVX2 indicates full 256-bit x86 vectors.
	LevelAVX2

	// LevelAVX512 indicates 512-bit x86 vectors.
	LevelAVX512

	// LevelNEON indicates 128-bit ARM vectors.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX:
		return "avx"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width of the level in bytes.
func (l Level) Width() int {
	switch l {
	case LevelSSE2, LevelNEON:
		return 16
	case LevelAVX, LevelAVX2:
		return 32
	case LevelAVX512:
		return 64
	default:
		return 8
	}
}

// LevelFromName returns the level with the given String() name.
func LevelFromName(name string) (Level, bool) {
	for l := LevelScalar; l <= LevelNEON; l++ {
		if l.String() == name {
			return l, true
		}
	}
	return LevelScalar, false
}

// currentLevel is the level selected at startup.
var currentLevel Level

// levelSupported records whether currentLevel is actually usable on this
// CPU. It is only false when VECTEST_FORCE names an unavailable level.
var levelSupported bool

func init() {
	caps := cpu.Detect()
	detected := bestLevel(caps)
	currentLevel = detected
	levelSupported = true

	if noSimdEnv() {
		currentLevel = LevelScalar
		return
	}
	if name := os.Getenv("VECTEST_FORCE"); name != "" {
		forced, ok := LevelFromName(name)
		if !ok {
			levelSupported = false
			return
		}
		currentLevel = forced
		levelSupported = levelAvailable(forced, caps)
	}
}

// bestLevel picks the widest level the CPU supports.
func bestLevel(caps cpu.Features) Level {
	switch {
	case caps.FullAVX512():
		return LevelAVX512
	case caps.HasAVX2:
		return LevelAVX2
	case caps.HasAVX:
		return LevelAVX
	case caps.HasSSE2:
		return LevelSSE2
	case caps.HasNEON:
		return LevelNEON
	default:
		return LevelScalar
	}
}

func levelAvailable(l Level, caps cpu.Features) bool {
	switch l {
	case LevelScalar:
		return true
	case LevelSSE2:
		return caps.HasSSE2
	case LevelAVX:
		return caps.HasAVX
	case LevelAVX2:
		return caps.HasAVX2
	case LevelAVX512:
		return caps.FullAVX512()
	case LevelNEON:
		return caps.HasNEON
	default:
		return false
	}
}

// noSimdEnv checks the VECTEST_NO_SIMD environment variable. When set,
// the scalar level is used regardless of CPU capabilities.
func noSimdEnv() bool {
	val := os.Getenv("VECTEST_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CurrentLevel returns the instruction-set level selected at startup.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the register width of the current level in bytes.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentLevel.String()
}

// CurrentSupported reports whether the level selected at startup is usable
// on this CPU. A false result means a forced level is not available; the
// test driver diagnoses this and terminates before running any test.
func CurrentSupported() bool {
	return levelSupported
}
