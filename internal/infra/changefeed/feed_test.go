package changefeed

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	emissionTimeout = 5 * time.Second
	quietPeriod     = 700 * time.Millisecond
)

func newTestFeed(t *testing.T) *Feed {
	t.Helper()

	feed := NewFeed(slog.Default(), 10*time.Second, 4)
	t.Cleanup(func() { _ = feed.Close(context.Background()) })

	return feed
}

func counterQuery(calls *atomic.Int64) QueryFunc[int64] {
	return func(context.Context) (int64, error) {
		return calls.Add(1), nil
	}
}

func next[T any](t *testing.T, obs repository.Observation[T]) (repository.Snapshot[T], bool) {
	t.Helper()

	select {
	case snap, ok := <-obs.Updates():
		return snap, ok
	case <-time.After(emissionTimeout):
		t.Fatal("timed out waiting for emission")

		return repository.Snapshot[T]{}, false
	}
}

func assertQuiet[T any](t *testing.T, obs repository.Observation[T]) {
	t.Helper()

	select {
	case snap, ok := <-obs.Updates():
		t.Fatalf("unexpected emission (open=%v): %+v", ok, snap)
	case <-time.After(quietPeriod):
	}
}

func TestWatch_InitialThenRelevantChanges(t *testing.T) {
	feed := newTestFeed(t)
	ctx := context.Background()
	var calls atomic.Int64

	obs, err := Watch(ctx, feed, []string{"properties", "shareholders"}, counterQuery(&calls))
	require.NoError(t, err)
	defer obs.Close()

	snap, ok := next(t, obs)
	require.True(t, ok)
	assert.Equal(t, int64(1), snap.Value)

	require.NoError(t, feed.Publish(ctx, "shareholders"))
	snap, ok = next(t, obs)
	require.True(t, ok)
	require.NoError(t, snap.Err)
	assert.Equal(t, int64(2), snap.Value)

	require.NoError(t, feed.Publish(ctx, "electricity_bills"))
	assertQuiet(t, obs)

	require.NoError(t, feed.Publish(ctx, "subscriptions", "properties"))
	snap, ok = next(t, obs)
	require.True(t, ok)
	assert.Equal(t, int64(3), snap.Value)
}

func TestWatch_InitialQueryErrorIsReturned(t *testing.T) {
	feed := newTestFeed(t)
	boom := errors.New("boom")

	_, err := Watch[int](context.Background(), feed, []string{"properties"}, func(context.Context) (int, error) {
		return 0, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestWatch_DecodeErrorEndsObservation(t *testing.T) {
	feed := newTestFeed(t)
	ctx := context.Background()
	var calls atomic.Int64

	obs, err := Watch[int64](ctx, feed, []string{"shareholders"}, func(context.Context) (int64, error) {
		if calls.Add(1) > 1 {
			return 0, domainerrors.NewDecodeError("shareholders", "share_value_type", "fraction", "unknown discriminator")
		}

		return 1, nil
	})
	require.NoError(t, err)
	defer obs.Close()

	_, ok := next(t, obs)
	require.True(t, ok)

	require.NoError(t, feed.Publish(ctx, "shareholders"))
	snap, ok := next(t, obs)
	require.True(t, ok)
	assert.True(t, domainerrors.IsDecodeError(snap.Err))

	_, ok = next(t, obs)
	assert.False(t, ok, "observation should be closed after a decode error")
}

func TestWatch_TransientErrorKeepsWatching(t *testing.T) {
	feed := newTestFeed(t)
	ctx := context.Background()
	var calls atomic.Int64
	transient := errors.New("database is locked")

	obs, err := Watch[int64](ctx, feed, []string{"properties"}, func(context.Context) (int64, error) {
		if calls.Add(1) == 2 {
			return 0, transient
		}

		return calls.Load(), nil
	})
	require.NoError(t, err)
	defer obs.Close()

	_, _ = next(t, obs)

	require.NoError(t, feed.Publish(ctx, "properties"))
	snap, ok := next(t, obs)
	require.True(t, ok)
	assert.ErrorIs(t, snap.Err, transient)

	require.NoError(t, feed.Publish(ctx, "properties"))
	snap, ok = next(t, obs)
	require.True(t, ok)
	require.NoError(t, snap.Err)
	assert.Equal(t, int64(3), snap.Value)
}

func TestWatch_CloseStopsUpdates(t *testing.T) {
	feed := newTestFeed(t)
	ctx := context.Background()
	var calls atomic.Int64

	obs, err := Watch(ctx, feed, []string{"properties"}, counterQuery(&calls))
	require.NoError(t, err)
	_, _ = next(t, obs)

	obs.Close()
	obs.Close()

	_, ok := <-obs.Updates()
	assert.False(t, ok)

	require.NoError(t, feed.Publish(ctx, "properties"))
	time.Sleep(quietPeriod)
	assert.Equal(t, int64(1), calls.Load())
}

func TestWatch_ContextCancelStopsUpdates(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int64

	obs, err := Watch(ctx, feed, []string{"properties"}, counterQuery(&calls))
	require.NoError(t, err)
	_, _ = next(t, obs)

	cancel()

	_, ok := next(t, obs)
	assert.False(t, ok)
}

func TestFeed_CloseEndsWatchersAndRejectsUse(t *testing.T) {
	feed := NewFeed(nil, time.Second, 1)
	ctx := context.Background()
	var calls atomic.Int64

	obs, err := Watch(ctx, feed, []string{"properties"}, counterQuery(&calls))
	require.NoError(t, err)
	_, _ = next(t, obs)

	require.NoError(t, feed.Close(ctx))
	require.NoError(t, feed.Close(ctx))

	_, ok := next(t, obs)
	assert.False(t, ok)

	assert.ErrorIs(t, feed.Publish(ctx, "properties"), ErrClosed)
	_, err = Watch(ctx, feed, []string{"properties"}, counterQuery(&calls))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTouches(t *testing.T) {
	assert.True(t, touches([]string{"a", "b"}, []string{"b"}))
	assert.False(t, touches([]string{"a"}, []string{"b", "c"}))
	assert.False(t, touches(nil, []string{"b"}))
}
