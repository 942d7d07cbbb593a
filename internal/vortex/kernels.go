package vortex

import (
	"encoding/binary"
	"math/bits"
)

// Kernel function pointer - set once at init, zero runtime overhead.
// The scalar kernel is the default; capability selection may swap in the
// wide variant.
var kernelBlocks = blocksScalar

// Blocks folds len(p)/BlockSize complete blocks into the lanes using the
// active kernel.
//
// SAFETY: len(p) must be a multiple of BlockSize. Callers MUST guarantee
// this; the kernels do not re-check.
func Blocks(v *[4]uint64, p []byte) {
	kernelBlocks(v, p)
}

// chaoticRound is the canonical per-lane mix and the single source of
// truth for block processing: every kernel must produce bit-identical
// lane values to this formula.
//
// The multiplicative term is a logistic-map step in fixed point: with
// t = acc^x, the upper halves of t and ^t approximate x*(1-x).
func chaoticRound(acc, x uint64) uint64 {
	t := acc ^ x
	chaos := (t >> 32) * (^t >> 32)
	acc = chaos + x*prime2
	return bits.RotateLeft64(acc, 31) * prime1
}

func blocksScalar(v *[4]uint64, p []byte) {
	for len(p) >= BlockSize {
		v[0] = chaoticRound(v[0], binary.LittleEndian.Uint64(p[0:8]))
		v[1] = chaoticRound(v[1], binary.LittleEndian.Uint64(p[8:16]))
		v[2] = chaoticRound(v[2], binary.LittleEndian.Uint64(p[16:24]))
		v[3] = chaoticRound(v[3], binary.LittleEndian.Uint64(p[24:32]))
		p = p[BlockSize:]
	}
}

// blocksWide processes two blocks per iteration with the lane state held
// in locals. Same per-lane formula as blocksScalar, fewer loads and
// bounds checks.
func blocksWide(v *[4]uint64, p []byte) {
	v1, v2, v3, v4 := v[0], v[1], v[2], v[3]

	for len(p) >= 2*BlockSize {
		v1 = chaoticRound(v1, binary.LittleEndian.Uint64(p[0:8]))
		v2 = chaoticRound(v2, binary.LittleEndian.Uint64(p[8:16]))
		v3 = chaoticRound(v3, binary.LittleEndian.Uint64(p[16:24]))
		v4 = chaoticRound(v4, binary.LittleEndian.Uint64(p[24:32]))
		v1 = chaoticRound(v1, binary.LittleEndian.Uint64(p[32:40]))
		v2 = chaoticRound(v2, binary.LittleEndian.Uint64(p[40:48]))
		v3 = chaoticRound(v3, binary.LittleEndian.Uint64(p[48:56]))
		v4 = chaoticRound(v4, binary.LittleEndian.Uint64(p[56:64]))
		p = p[2*BlockSize:]
	}

	if len(p) >= BlockSize {
		v1 = chaoticRound(v1, binary.LittleEndian.Uint64(p[0:8]))
		v2 = chaoticRound(v2, binary.LittleEndian.Uint64(p[8:16]))
		v3 = chaoticRound(v3, binary.LittleEndian.Uint64(p[16:24]))
		v4 = chaoticRound(v4, binary.LittleEndian.Uint64(p[24:32]))
	}

	v[0], v[1], v[2], v[3] = v1, v2, v3, v4
}
