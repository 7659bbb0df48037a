package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitFirstReturnsValueBeforeDeadline(t *testing.T) {
	got, err := awaitFirst(context.Background(), time.Second, func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestAwaitFirstPropagatesFetchError(t *testing.T) {
	boom := errors.New("boom")
	_, err := awaitFirst(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestAwaitFirstTimesOutHangingFetch(t *testing.T) {
	started := time.Now()
	_, err := awaitFirst(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	require.Error(t, err)
	assert.True(t, errs.IsStoreTimeout(err))
	assert.Contains(t, err.Error(), "Check permission rules.")
	assert.Less(t, time.Since(started), time.Second)
}

func TestAwaitFirstCancelsLosingFetch(t *testing.T) {
	cancelled := make(chan struct{})

	_, err := awaitFirst(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})
	require.Error(t, err)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("losing fetch was never cancelled")
	}
}

func TestAwaitFirstHonorsCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := awaitFirst(ctx, time.Second, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	require.Error(t, err)
	assert.False(t, errs.IsStoreTimeout(err))
}
