package wapi

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency limits how many requests a batch helper runs at once
const DefaultBatchConcurrency = 8

// fetchEach runs fn for every key with bounded concurrency and collects the
// Results by key. Failures never stop the rest of the batch.
func fetchEach[T any](ctx context.Context, keys []string, fn func(context.Context, string) Result[T]) map[string]Result[T] {
	results := make(map[string]Result[T], len(keys))
	if len(keys) == 0 {
		return results
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(DefaultBatchConcurrency)

	for _, key := range keys {
		g.Go(func() error {
			res := fn(ctx, key)

			mu.Lock()
			results[key] = res
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()
	return results
}
