package monitor

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"rentledger/internal/domain/entity"
	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/domain/repository"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObservation struct {
	updates chan repository.Snapshot[[]*entity.Property]
	once    sync.Once
	closed  chan struct{}
}

func newFakeObservation() *fakeObservation {
	return &fakeObservation{
		updates: make(chan repository.Snapshot[[]*entity.Property], 4),
		closed:  make(chan struct{}),
	}
}

func (o *fakeObservation) Updates() <-chan repository.Snapshot[[]*entity.Property] {
	return o.updates
}

func (o *fakeObservation) Close() {
	o.once.Do(func() { close(o.closed) })
}

type fakeWatcher struct {
	obs *fakeObservation
	err error
}

func (w *fakeWatcher) WatchProperties(context.Context) (repository.Observation[[]*entity.Property], error) {
	if w.err != nil {
		return nil, w.err
	}

	return w.obs, nil
}

// syncBuffer guards the log buffer shared by Serve and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newTestMonitor(w PropertyWatcher) (*ledgerMonitor, *syncBuffer) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := newLedgerMonitor(w, logger)
	m.now = func() time.Time { return time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC) }

	return m, out
}

func serveAsync(m *ledgerMonitor) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- m.Serve(context.Background()) }()

	return errCh
}

func TestLedgerMonitor_LogsSnapshotsUntilStopped(t *testing.T) {
	obs := newFakeObservation()
	m, out := newTestMonitor(&fakeWatcher{obs: obs})

	property := entity.NewProperty("Loft", "Badaro", 450, entity.RentDurationMonthly)
	property.Subscriptions = append(property.Subscriptions, &entity.Subscription{
		Name: "main",
		ElectricityBills: []*entity.ElectricityBill{
			{Amount: 30, Currency: entity.CurrencyUSD, PaymentDate: civil.Date{Year: 2024, Month: time.March, Day: 1}},
			{Amount: 12.5, Currency: entity.CurrencyUSD, PaymentDate: civil.Date{Year: 2024, Month: time.April, Day: 1}},
			{Amount: 99, Currency: entity.CurrencyUSD, PaymentDate: civil.Date{Year: 2023, Month: time.April, Day: 1}},
		},
	})

	errCh := serveAsync(m)
	obs.updates <- repository.Snapshot[[]*entity.Property]{Value: []*entity.Property{property}}
	obs.updates <- repository.Snapshot[[]*entity.Property]{Err: errors.New("database is locked")}

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Property snapshot failed")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, m.shutdown(context.Background()))
	require.NoError(t, <-errCh)

	logs := out.String()
	assert.Contains(t, logs, "Ledger snapshot")
	assert.Contains(t, logs, "properties=1")
	assert.Contains(t, logs, "bills=3")
	assert.Contains(t, logs, "year_total_USD=42.5")

	select {
	case <-obs.closed:
	default:
		t.Fatal("observation was not closed")
	}
}

func TestLedgerMonitor_DecodeErrorStopsServe(t *testing.T) {
	obs := newFakeObservation()
	m, _ := newTestMonitor(&fakeWatcher{obs: obs})

	errCh := serveAsync(m)
	obs.updates <- repository.Snapshot[[]*entity.Property]{
		Err: domainerrors.NewDecodeError("electricity_bills", "currency", "EUR", "unknown currency"),
	}

	select {
	case err := <-errCh:
		assert.True(t, domainerrors.IsDecodeError(err))
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestLedgerMonitor_EndsWithStream(t *testing.T) {
	obs := newFakeObservation()
	m, _ := newTestMonitor(&fakeWatcher{obs: obs})

	errCh := serveAsync(m)
	close(obs.updates)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestLedgerMonitor_WatchFailure(t *testing.T) {
	m, _ := newTestMonitor(&fakeWatcher{err: errors.New("no feed")})

	err := m.Serve(context.Background())
	assert.ErrorContains(t, err, "no feed")
}

func TestLedgerMonitor_ShutdownWithoutServe(t *testing.T) {
	m, _ := newTestMonitor(&fakeWatcher{obs: newFakeObservation()})

	assert.NoError(t, m.shutdown(context.Background()))
}
