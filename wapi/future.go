package wapi

import (
	"context"
	"fmt"
)

// Future is a handle to a Result that is being produced in the background.
// Dropping a Future does not stop the underlying request.
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
}

// Async runs fn in its own goroutine and returns a Future for its Result.
// When the client was built WithMaxConcurrent, fn waits for a free slot first.
func Async[T any](ctx context.Context, c *Client, fn func(context.Context) Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if p := recover(); p != nil {
				f.result = FailureErr[T](fmt.Errorf("request panicked: %v", p))
			}
		}()

		if c != nil && c.inflight != nil {
			if err := c.inflight.Acquire(ctx, 1); err != nil {
				f.result = FailureErr[T](&NetworkError{Method: "GET", Err: err})
				return
			}
			defer c.inflight.Release(1)
		}

		f.result = fn(ctx)
	}()

	return f
}

// Completed returns a Future that is already resolved to r.
func Completed[T any](r Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: r}
	close(f.done)
	return f
}

// Done is closed once the Result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the Result is available.
func (f *Future[T]) Result() Result[T] {
	<-f.done
	return f.result
}

// Await waits for the Result or for ctx to finish, whichever comes first.
// When ctx ends first the returned Result is a Failure carrying ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return FailureErr[T](ctx.Err()), ctx.Err()
	}
}

// Then maps the eventual Result of f, see Map.
func Then[T, R any](f *Future[T], fn func(T) (R, error)) *Future[R] {
	out := &Future[R]{done: make(chan struct{})}
	go func() {
		defer close(out.done)
		out.result = Map(f.Result(), fn)
	}()
	return out
}

// AwaitAll waits for every future and returns their Results in order.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]Result[T], error) {
	results := make([]Result[T], len(futures))
	for i, f := range futures {
		r, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}
