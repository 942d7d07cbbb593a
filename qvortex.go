package qvortex

import (
	"encoding/binary"

	"github.com/hupe1980/qvortex/internal/vortex"
)

const (
	// Size is the default digest size in bytes.
	Size = 32

	// BlockSize is the underlying block size of the hash in bytes.
	BlockSize = vortex.BlockSize

	// SmallInputMax is the largest input length routed to the
	// small-input fast path by HashSmall.
	SmallInputMax = vortex.SmallInputMax
)

// Hash computes an n-byte keyed digest of data using the streaming
// pipeline. An empty key hashes unkeyed. A non-positive n yields an
// empty slice.
func Hash(key, data []byte, n int) []byte {
	var c vortex.Context
	c.Init(vortex.DeriveSeed(key))
	c.Update(data)
	return c.AppendSum(make([]byte, 0, max(n, 0)), n)
}

// HashSmall is Hash with a fast path for inputs of at most SmallInputMax
// bytes. The fast path is an independent construction: for such inputs
// its digests do not generally match Hash. Longer inputs delegate to the
// streaming pipeline and match Hash exactly.
func HashSmall(key, data []byte, n int) []byte {
	return appendHashSmall(make([]byte, 0, max(n, 0)), key, data, n)
}

func appendHashSmall(dst, key, data []byte, n int) []byte {
	if len(data) <= SmallInputMax {
		return vortex.AppendSumSmall(dst, key, data, n)
	}
	var c vortex.Context
	c.Init(vortex.DeriveSeed(key))
	c.Update(data)
	return c.AppendSum(dst, n)
}

// Sum256 returns the unkeyed 32-byte digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	var c vortex.Context
	c.Init(0)
	c.Update(data)
	c.AppendSum(out[:0], len(out))
	return out
}

// Sum512 returns the unkeyed 64-byte digest of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	var c vortex.Context
	c.Init(0)
	c.Update(data)
	c.AppendSum(out[:0], len(out))
	return out
}

// Sum64 returns the unkeyed 64-bit digest of data.
func Sum64(data []byte) uint64 {
	var c vortex.Context
	c.Init(0)
	c.Update(data)
	return c.Sum64()
}

// HashSeeded adapts a 32-bit seed to the keyed API: the seed is encoded
// as four little-endian bytes and used as the key for HashSmall. This is
// the calling convention of SMHasher-style test rigs.
func HashSeeded(seed uint32, data []byte) [32]byte {
	var key [4]byte
	binary.LittleEndian.PutUint32(key[:], seed)
	var out [32]byte
	appendHashSmall(out[:0], key[:], data, len(out))
	return out
}
