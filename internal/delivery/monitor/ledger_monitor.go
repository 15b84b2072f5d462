// Package monitor runs a headless front end that follows the property list and logs every change.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"rentledger/internal/delivery"
	"rentledger/internal/domain/entity"
	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/domain/repository"
	"rentledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PropertyWatcher is the part of the property usecase the monitor needs.
type PropertyWatcher interface {
	WatchProperties(ctx context.Context) (repository.Observation[[]*entity.Property], error)
}

type ledgerMonitor struct {
	watcher PropertyWatcher
	logger  *slog.Logger
	now     func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Params holds dependencies for the ledger monitor
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Usecase usecase.PropertyUsecase
	Logger  *slog.Logger
}

// NewLedgerMonitor creates the monitor and stops it with the application.
func NewLedgerMonitor(params Params) (delivery.Delivery, error) {
	m := newLedgerMonitor(params.Usecase, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: m.shutdown,
	})

	return m, nil
}

func newLedgerMonitor(watcher PropertyWatcher, logger *slog.Logger) *ledgerMonitor {
	return &ledgerMonitor{
		watcher: watcher,
		logger:  logger.With(slog.String("component", "ledger_monitor")),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Serve logs one line per emitted snapshot until ctx ends, the monitor is stopped or the
// stream fails with a corrupt record.
func (m *ledgerMonitor) Serve(ctx context.Context) error {
	if !m.started.CompareAndSwap(false, true) {
		return errors.New("ledger monitor already running")
	}
	defer close(m.done)

	obs, err := m.watcher.WatchProperties(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to watch properties")
	}
	defer obs.Close()

	m.logger.Info("Ledger monitor started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.stop:
			return nil
		case snap, ok := <-obs.Updates():
			if !ok {
				m.logger.Info("Property stream ended")

				return nil
			}
			if snap.Err != nil {
				if domainerrors.IsDecodeError(snap.Err) {
					return errors.Wrap(snap.Err, "property stream failed")
				}
				m.logger.Warn("Property snapshot failed", slog.Any("error", snap.Err))

				continue
			}
			m.report(snap.Value)
		}
	}
}

func (m *ledgerMonitor) report(properties []*entity.Property) {
	yearFilter := entity.CurrentYearFilter(m.now())

	billCount := 0
	for _, property := range properties {
		bills := property.Bills()
		billCount += len(bills)

		totals := entity.TotalsByCurrency(yearFilter.Apply(bills))
		attrs := []any{
			slog.String("property_id", property.ID),
			slog.String("name", property.Name),
			slog.Int("subscriptions", len(property.Subscriptions)),
			slog.Int("shareholders", len(property.Shareholders)),
		}
		for _, currency := range entity.Currencies {
			if total, ok := totals[currency]; ok {
				attrs = append(attrs, slog.String("year_total_"+currency.String(), total.String()))
			}
		}
		m.logger.Debug("Property", attrs...)
	}

	m.logger.Info("Ledger snapshot",
		slog.Int("properties", len(properties)),
		slog.Int("bills", billCount),
	)
}

func (m *ledgerMonitor) shutdown(ctx context.Context) error {
	m.stopOnce.Do(func() { close(m.stop) })
	if !m.started.Load() {
		return nil
	}

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "ledger monitor did not stop")
	}
}
