//go:build arm64

package vortex

import "golang.org/x/sys/cpu"

func init() {
	hasFastMul = cpu.ARM64.HasASIMD
	initCapabilities()
}
