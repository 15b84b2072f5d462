// Package changefeed broadcasts committed table writes inside the process so that
// reactive queries can re-run when their source tables change.
package changefeed

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"rentledger/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const (
	tablesMetadataKey = "tables"
	tableSeparator    = ","
)

// ErrClosed is returned when publishing to or watching a closed feed.
var ErrClosed = errors.New("change feed is closed")

// Feed fans table change events out to every active watcher.
type Feed struct {
	topic       *pubsub.Topic
	logger      *slog.Logger
	ackDeadline time.Duration
	bufferSize  int

	// ctx is cancelled on Close and stops every watcher.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// FeedParams holds dependencies for Feed, injected by Fx
type FeedParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the process-wide feed and closes it on shutdown.
func New(params FeedParams) *Feed {
	feed := NewFeed(params.Logger, params.Config.ChangeFeed.AckDeadline, params.Config.ChangeFeed.BufferSize)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing change feed")

			return feed.Close(ctx)
		},
	})

	return feed
}

// NewFeed creates a feed backed by an in-memory topic.
func NewFeed(logger *slog.Logger, ackDeadline time.Duration, bufferSize int) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	if ackDeadline <= 0 {
		ackDeadline = 10 * time.Second
	}
	if bufferSize < 1 {
		bufferSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Feed{
		topic:       mempubsub.NewTopic(),
		logger:      logger,
		ackDeadline: ackDeadline,
		bufferSize:  bufferSize,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Publish announces that a committed write touched the given tables.
// Watchers registered before the call receive the event at least once.
func (f *Feed) Publish(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return ErrClosed
	}

	joined := strings.Join(tables, tableSeparator)
	err := f.topic.Send(ctx, &pubsub.Message{
		Body:     []byte(joined),
		Metadata: map[string]string{tablesMetadataKey: joined},
	})
	if err != nil {
		return errors.Wrapf(err, "publish change of %s", joined)
	}

	f.logger.Debug("Published table change", slog.String("tables", joined))

	return nil
}

// Close stops every watcher and shuts the topic down. Further calls are no-ops.
func (f *Feed) Close(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()

		return nil
	}
	f.closed = true
	f.mu.Unlock()

	f.cancel()
	f.wg.Wait()

	return errors.Wrap(f.topic.Shutdown(ctx), "shutdown change topic")
}

// subscribe registers a new subscription. It must happen before the watcher's initial query
// so that no write committed after that query is missed.
func (f *Feed) subscribe() (*pubsub.Subscription, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return nil, ErrClosed
	}

	f.wg.Add(1)

	return mempubsub.NewSubscription(f.topic, f.ackDeadline), nil
}

func tablesOf(msg *pubsub.Message) []string {
	raw := msg.Metadata[tablesMetadataKey]
	if raw == "" {
		raw = string(msg.Body)
	}
	if raw == "" {
		return nil
	}

	return strings.Split(raw, tableSeparator)
}

func touches(changed, watched []string) bool {
	for _, table := range changed {
		if slices.Contains(watched, table) {
			return true
		}
	}

	return false
}
