package vortex

import (
	"encoding/binary"
	"math/bits"
)

// Prime constants shared with xxHash64.
const (
	prime1 = 0x9E3779B185EBCA87
	prime2 = 0xC2B2AE3D27D4EB4F
	prime3 = 0x165667B19E3779F9
	prime4 = 0x85EBCA77C2B2AE63
	prime5 = 0x27D4EB2F165667C5
)

// BlockSize is the input block size in bytes. Each block is consumed as
// four little-endian 64-bit lanes, one per accumulator.
const BlockSize = 32

// SmallInputMax is the largest input length handled by AppendSumSmall.
const SmallInputMax = 16

// avalanche is the final xor-shift/multiply mixer (the xxHash64
// avalanche). It is shared by seed derivation, the finalizer, the
// small-input path and output expansion.
func avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32
	return h
}

// DeriveSeed folds a key into a 64-bit seed. An empty key derives seed 0
// with no avalanche applied, so unkeyed hashing is the seed-0 case.
func DeriveSeed(key []byte) uint64 {
	if len(key) == 0 {
		return 0
	}
	var seed uint64
	for _, b := range key {
		seed = bits.RotateLeft64(seed, 5) ^ uint64(b)
	}
	return avalanche(seed)
}

// Context is the streaming hash state: four accumulator lanes, the total
// byte count and the pending partial block. It is a plain value with no
// owned resources; copying it forks the stream. A Context must not be
// used concurrently, but distinct Contexts are fully independent.
type Context struct {
	v        [4]uint64
	totalLen uint64
	buf      [BlockSize]byte
	n        int // bytes pending in buf, always < BlockSize
}

// Init seeds the accumulator lanes and clears the stream state.
func (c *Context) Init(seed uint64) {
	c.v[0] = seed + prime1 + prime2
	c.v[1] = seed + prime2
	c.v[2] = seed
	c.v[3] = seed - prime1
	c.totalLen = 0
	c.n = 0
}

// Update absorbs p. The digest depends only on the concatenation of all
// bytes passed across Update calls, not on how they were chunked.
func (c *Context) Update(p []byte) {
	c.totalLen += uint64(len(p))

	// Top up a pending block first.
	if c.n > 0 {
		m := copy(c.buf[c.n:], p)
		c.n += m
		if c.n < BlockSize {
			return
		}
		Blocks(&c.v, c.buf[:])
		c.n = 0
		p = p[m:]
	}

	// Whole blocks straight from the input, no buffering.
	if len(p) >= BlockSize {
		m := len(p) &^ (BlockSize - 1)
		Blocks(&c.v, p[:m])
		p = p[m:]
	}

	// Keep the tail for the next Update or the finalizer.
	if len(p) > 0 {
		c.n = copy(c.buf[:], p)
	}
}

// digestSeed merges the lanes, folds in the pending tail and applies the
// avalanche. It reads the Context without mutating it, so repeated calls
// on an unchanged Context return the same value.
func (c *Context) digestSeed() uint64 {
	var h uint64
	if c.totalLen >= BlockSize {
		v1, v2, v3, v4 := c.v[0], c.v[1], c.v[2], c.v[3]
		h = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		for _, v := range [...]uint64{v1, v2, v3, v4} {
			h ^= bits.RotateLeft64(v*prime2, 31) * prime1
			h = h*prime1 + prime4
		}
	} else {
		// Messages that never filled a block consult lane 2 only.
		h = c.v[2] + prime5
	}

	h += c.totalLen

	p := c.buf[:c.n]
	for ; len(p) >= 8; p = p[8:] {
		k := binary.LittleEndian.Uint64(p)
		h ^= bits.RotateLeft64(k*prime2, 31) * prime1
		h = bits.RotateLeft64(h, 27)*prime1 + prime4
	}
	if len(p) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(p)) * prime1
		h = bits.RotateLeft64(h, 23)*prime2 + prime3
		p = p[4:]
	}
	for _, b := range p {
		h ^= uint64(b) * prime5
		h = bits.RotateLeft64(h, 11) * prime1
	}

	return avalanche(h)
}

// Sum64 returns the 64-bit digest of the data absorbed so far. It does
// not mutate the Context.
func (c *Context) Sum64() uint64 { return c.digestSeed() }

// AppendSum expands the digest to n bytes and appends them to dst. It
// does not mutate the Context. Shorter requests are prefixes of longer
// ones taken at the same point in the stream.
func (c *Context) AppendSum(dst []byte, n int) []byte {
	return appendExpand(dst, c.digestSeed(), n, prime5)
}

// AppendSumSmall hashes data with the independent small-input
// construction and appends n digest bytes to dst. data must be at most
// SmallInputMax bytes; longer inputs belong to the main pipeline.
//
// Note the construction differs from Context: a single running word, and
// the expansion advances with increment 1 rather than prime5.
func AppendSumSmall(dst, key, data []byte, n int) []byte {
	h := DeriveSeed(key) + prime5 + uint64(len(data))
	for _, b := range data {
		h ^= uint64(b) * prime5
		h = bits.RotateLeft64(h, 11) * prime1
	}
	return appendExpand(dst, avalanche(h), n, 1)
}

// appendExpand emits the keystream for value h: eight little-endian
// bytes per step, truncated on the final step, advancing h with
// avalanche(h+inc) only while more output is needed.
func appendExpand(dst []byte, h uint64, n int, inc uint64) []byte {
	for n > 0 {
		var chunk [8]byte
		binary.LittleEndian.PutUint64(chunk[:], h)
		if n <= 8 {
			return append(dst, chunk[:n]...)
		}
		dst = append(dst, chunk[:]...)
		n -= 8
		h = avalanche(h + inc)
	}
	return dst
}
