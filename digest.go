package qvortex

import (
	"hash"

	"github.com/hupe1980/qvortex/internal/vortex"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest)(nil)
var _ hash.Hash64 = (*Digest)(nil)

// Digest computes a qvortex digest in a streaming fashion. It implements
// [hash.Hash] and [hash.Hash64].
//
// A Digest must not be used from multiple goroutines concurrently.
// Distinct Digests are fully independent.
type Digest struct {
	seed uint64
	size int
	ctx  vortex.Context
}

// New returns a keyed streaming Digest producing Size-byte sums. An
// empty key hashes unkeyed.
func New(key []byte) *Digest {
	return NewSize(key, Size)
}

// NewSize returns a keyed streaming Digest producing size-byte sums.
// It panics if size is not positive.
func NewSize(key []byte, size int) *Digest {
	if size <= 0 {
		panic("qvortex: non-positive digest size")
	}
	d := &Digest{seed: vortex.DeriveSeed(key), size: size}
	d.ctx.Init(d.seed)
	return d
}

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.ctx.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b and returns the resulting slice.
// It does not change the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	return d.ctx.AppendSum(b, d.size)
}

// AppendSum appends an n-byte digest of the data written so far to dst.
// Like Sum it does not change the hash state, and shorter requests are
// prefixes of longer ones taken at the same point in the stream.
func (d *Digest) AppendSum(dst []byte, n int) []byte {
	return d.ctx.AppendSum(dst, n)
}

// Sum64 returns the 64-bit digest of the data written so far.
func (d *Digest) Sum64() uint64 {
	return d.ctx.Sum64()
}

// Reset restores the initial keyed state.
func (d *Digest) Reset() {
	d.ctx.Init(d.seed)
}

// Size returns the number of bytes Sum will return.
func (d *Digest) Size() int {
	return d.size
}

// BlockSize returns the hash's underlying block size. Write accepts any
// amount of data, but operates block-aligned internally.
func (d *Digest) BlockSize() int {
	return BlockSize
}
