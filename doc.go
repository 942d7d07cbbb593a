// Package qvortex implements the qvortex hash: a fast, non-cryptographic,
// variable-output-length hash for fingerprinting, bucketing and checksums.
//
// Qvortex mixes an integer logistic-map ("chaotic") term into an
// xxHash64-style accumulator pipeline and expands the 64-bit digest seed
// into any requested number of output bytes. It targets speed and
// statistical distribution quality; it makes no cryptographic claims and
// must not be used where collision or preimage resistance matters.
//
// # Quick Start
//
// One-shot:
//
//	sum := qvortex.Sum256(data)              // unkeyed 32-byte digest
//	digest := qvortex.Hash(key, data, 48)    // keyed 48-byte digest
//	h64 := qvortex.Sum64(data)               // unkeyed 64-bit digest
//
// Streaming (implements hash.Hash):
//
//	d := qvortex.New(key)
//	d.Write(chunk1)
//	d.Write(chunk2)
//	sum := d.Sum(nil)
//
// The digest depends only on the concatenation of the written bytes,
// never on chunk boundaries, and Sum does not disturb the stream: you
// can take intermediate digests while continuing to write.
//
// # Output Expansion
//
// Any output length is available, and shorter digests are prefixes of
// longer ones: Hash(key, data, 16) equals the first 16 bytes of
// Hash(key, data, 64).
//
// # Small Inputs
//
// HashSmall routes inputs of at most 16 bytes to a separate, simpler
// construction tuned for tiny keys (hash-table style workloads) and
// delegates everything else to the streaming pipeline. The two
// constructions produce different digests for the same small input.
//
// # Kernels
//
// Block processing is capability-selected at init (scalar or unrolled
// wide kernel). All kernels are bit-identical: output never depends on
// which kernel ran. Set QVORTEX_KERNEL=scalar|wide to override.
package qvortex
