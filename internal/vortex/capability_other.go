//go:build !amd64 && !arm64

package vortex

func init() {
	initCapabilities()
}
