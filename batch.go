package qvortex

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// HashAll computes the n-byte keyed digest of every input, hashing
// inputs concurrently. Each input gets its own hash state, so results
// are identical to calling Hash per input; they are returned in input
// order. The only error condition is cancellation of ctx, in which case
// the partial results are discarded.
func HashAll(ctx context.Context, key []byte, inputs [][]byte, n int) ([][]byte, error) {
	out := make([][]byte, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	// Hashing is CPU-bound; more goroutines than cores just adds
	// scheduling overhead.
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, data := range inputs {
		i, data := i, data
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Hash(key, data, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
