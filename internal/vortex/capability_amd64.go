//go:build amd64

package vortex

import "golang.org/x/sys/cpu"

func init() {
	hasFastMul = cpu.X86.HasBMI2
	initCapabilities()
}
