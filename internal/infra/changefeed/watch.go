package changefeed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
)

const subscriptionShutdownTimeout = 5 * time.Second

// QueryFunc loads the current result of a reactive query.
type QueryFunc[T any] func(ctx context.Context) (T, error)

type watcher[T any] struct {
	updates chan repository.Snapshot[T]
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

// Watch runs query once, then again after every published change that touches one of tables.
// A DecodeError ends the observation after being delivered; other query errors are delivered
// and watching continues. The observation also ends when ctx is done or the feed is closed.
func Watch[T any](ctx context.Context, feed *Feed, tables []string, query QueryFunc[T]) (repository.Observation[T], error) {
	sub, err := feed.subscribe()
	if err != nil {
		return nil, err
	}

	initial, err := query(ctx)
	if err != nil {
		shutdownSubscription(sub, feed.logger)
		feed.wg.Done()

		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(feed.ctx, cancel)

	w := &watcher[T]{
		updates: make(chan repository.Snapshot[T], feed.bufferSize),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	w.updates <- repository.Snapshot[T]{Value: initial}

	go func() {
		defer feed.wg.Done()
		defer close(w.done)
		defer close(w.updates)
		defer shutdownSubscription(sub, feed.logger)
		defer stop()

		w.run(watchCtx, feed.logger, sub, tables, query)
	}()

	return w, nil
}

func (w *watcher[T]) run(ctx context.Context, logger *slog.Logger, sub *pubsub.Subscription, tables []string, query QueryFunc[T]) {
	for {
		msg, err := sub.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.emit(ctx, repository.Snapshot[T]{Err: errors.Wrap(err, "receive table change")})

			return
		}
		msg.Ack()

		changed := tablesOf(msg)
		if !touches(changed, tables) {
			continue
		}

		value, err := query(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Reactive query failed",
				slog.Any("tables", tables),
				slog.Any("error", err),
			)
			if !w.emit(ctx, repository.Snapshot[T]{Err: err}) || domainerrors.IsDecodeError(err) {
				return
			}

			continue
		}

		if !w.emit(ctx, repository.Snapshot[T]{Value: value}) {
			return
		}
		logger.Debug("Reactive query emitted", slog.Any("tables", changed))
	}
}

func (w *watcher[T]) emit(ctx context.Context, snap repository.Snapshot[T]) bool {
	select {
	case w.updates <- snap:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *watcher[T]) Updates() <-chan repository.Snapshot[T] {
	return w.updates
}

func (w *watcher[T]) Close() {
	w.once.Do(func() {
		w.cancel()
		<-w.done
	})
}

func shutdownSubscription(sub *pubsub.Subscription, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), subscriptionShutdownTimeout)
	defer cancel()

	if err := sub.Shutdown(ctx); err != nil {
		logger.Warn("Failed to shut down change subscription", slog.Any("error", err))
	}
}
