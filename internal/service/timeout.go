package service

import (
	"context"
	"fmt"
	"time"
)

// runWithTimeout runs fn in its own goroutine and stops waiting for it once
// timeout elapses or ctx is done. A zero timeout waits for ctx only. The
// abandoned goroutine is left to finish on its own; its result is discarded.
func runWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		val T
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				resultCh <- result{val: zero, err: fmt.Errorf("panic: %v", r)}
			}
		}()
		v, err := fn(ctx)
		resultCh <- result{val: v, err: err}
	}()

	select {
	case res := <-resultCh:
		return res.val, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
