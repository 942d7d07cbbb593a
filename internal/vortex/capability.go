package vortex

import (
	"os"
	"strings"
)

// Kernel identifies a block-processing strategy. Every kernel computes
// the same function; selection affects speed only.
type Kernel uint8

const (
	// Scalar is the canonical one-block-at-a-time loop.
	Scalar Kernel = iota
	// Wide is the unrolled two-block stride with hoisted lane state.
	Wide
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "wide":
		return Wide, true
	default:
		return Scalar, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeKernel is the selected block-processing strategy.
	activeKernel Kernel

	// hasOverride is true if QVORTEX_KERNEL was set.
	hasOverride bool

	// CPU feature flag (set by platform-specific init)
	hasFastMul bool // flag-free 64-bit widening multiply
)

// initCapabilities is called from platform-specific init functions after
// CPU features are detected.
func initCapabilities() {
	// Check for environment override. Both kernels run everywhere, so
	// any parsed override is valid.
	if override := os.Getenv("QVORTEX_KERNEL"); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			activeKernel = k
			applyKernel()
			return
		}
		// Unparseable override - fall through to auto-selection
	}

	activeKernel = selectBestKernel()
	applyKernel()
}

func applyKernel() {
	switch activeKernel {
	case Wide:
		kernelBlocks = blocksWide
	default:
		kernelBlocks = blocksScalar
	}
}

// selectBestKernel chooses the strategy for the current CPU. The wide
// kernel only pays off when 64-bit widening multiplies don't stall the
// unrolled dependency chains.
func selectBestKernel() Kernel {
	if hasFastMul {
		return Wide
	}
	return Scalar
}

// ActiveKernel returns the currently active kernel.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if QVORTEX_KERNEL was set.
func IsOverridden() bool {
	return hasOverride
}
