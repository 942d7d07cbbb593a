// Package vortex implements the qvortex hash core.
//
// # Construction
//
// Input is absorbed in 32-byte blocks into four 64-bit accumulator
// lanes. Each lane update mixes a chaotic (integer logistic-map)
// multiplicative term with xxHash64-style prime multiplications and
// rotations. The finalizer merges the lanes, folds in the buffered tail
// and applies the xxHash64 avalanche; the resulting 64-bit digest seed
// is expanded into any requested number of output bytes by a
// deterministic keystream.
//
// Inputs of at most 16 bytes have an independent, simpler construction
// (AppendSumSmall) that skips the accumulator pipeline entirely.
//
// # Kernels
//
// Block processing goes through a function pointer selected at package
// init. chaoticRound is the single source of truth: all kernels produce
// bit-identical lane values, so the digest never depends on which kernel
// ran. Set QVORTEX_KERNEL=scalar|wide to override auto-selection.
package vortex
