// Package fanout runs a function across a slice with bounded concurrency and
// returns the results in input order. The reporter uses it to aggregate
// companies in parallel once all writes to a store are complete.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every item using at most limit concurrent goroutines and
// returns the values in the order of items.
//
// The first error cancels the context passed to the remaining calls and is
// returned once every started call has finished; the values are discarded in
// that case. Items not yet started when ctx is done are skipped. A limit
// below 1 is treated as 1. Empty input returns an empty non-nil slice.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation that only stopped the loop from scheduling work.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
