package database

import (
	"context"
	"errors"
	"time"

	"github.com/rajraunak/portfolio-site-backend/errs"
)

// awaitFirst races fetch against a fixed deadline, first-completed-wins.
// The store can hang silently when access rules reject a query instead of
// returning an error, so an unbounded read would spin forever. The losing
// fetch is cancelled through its context rather than abandoned, so no
// connection outlives the race.
func awaitFirst[T any](ctx context.Context, timeout time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		value, err := fetch(fetchCtx)
		done <- outcome{value, err}
	}()

	var zero T
	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) {
			return zero, errs.NewStoreTimeoutError(timeout)
		}
		return out.value, out.err
	case <-fetchCtx.Done():
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			return zero, errs.NewStoreTimeoutError(timeout)
		}
		return zero, fetchCtx.Err()
	}
}
