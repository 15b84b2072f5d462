// Package gormstore is the relational store behind the ledger: four GORM tables linked by
// cascading foreign keys, explicit transactions and change notifications for reactive reads.
package gormstore

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"rentledger/config"
	"rentledger/internal/domain/lifecycle"
	"rentledger/internal/infra/changefeed"
	"rentledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Store is a handle on the ledger database. The root Store publishes a change event after
// every write; a Store handed out by Execute collects them until commit.
type Store struct {
	db      *gorm.DB
	feed    *changefeed.Feed
	logger  *slog.Logger
	changes *changeSet
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Feed   *changefeed.Feed
}

// New opens the configured database, migrates the schema on start and closes it on stop.
func New(params Params) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch params.Config.Store.Driver {
	case config.DriverPostgres:
		db, err = pgLib.New(params.Config.Store.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	default:
		db, err = OpenSQLite(SQLiteDSN(params.Config.Store.SQLite), params.Logger, params.Config)
		if err != nil {
			return nil, err
		}
	}

	// Constraint failures must surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes go through Execute; single statements need no implicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	store := NewStore(db, params.Feed, params.Logger)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return store, nil
}

// NewStore wraps an already opened database.
func NewStore(db *gorm.DB, feed *changefeed.Feed, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{db: db, feed: feed, logger: logger}
}

// OpenSQLite opens a SQLite database. The DSN must enable foreign keys for cascades to work.
func OpenSQLite(dsn string, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// One writer at a time; this also keeps shared in-memory databases alive.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// SQLiteDSN builds a mattn/go-sqlite3 DSN with foreign keys and a busy timeout.
func SQLiteDSN(cfg config.SQLiteConfig) string {
	dsn := cfg.Path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_foreign_keys=1"

	if cfg.BusyTimeout > 0 {
		dsn += "&_busy_timeout=" + strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10)
	}

	return dsn
}

// Migrate creates or updates the four ledger tables, parents first.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&model.PropertyModel{},
		&model.SubscriptionModel{},
		&model.ElectricityBillModel{},
		&model.ShareholderModel{},
	)

	return errors.Wrap(err, "failed to migrate ledger schema")
}

// Feed returns the change feed the store publishes to.
func (s *Store) Feed() *changefeed.Feed {
	return s.feed
}

func (s *Store) Properties() *PropertyTable {
	return &PropertyTable{store: s}
}

func (s *Store) Subscriptions() *SubscriptionTable {
	return &SubscriptionTable{store: s}
}

func (s *Store) Bills() *BillTable {
	return &BillTable{store: s}
}

func (s *Store) Shareholders() *ShareholderTable {
	return &ShareholderTable{store: s}
}

// notify records that tables changed. Outside a transaction the event is published at once.
func (s *Store) notify(ctx context.Context, tables ...string) {
	if s.changes != nil {
		s.changes.add(tables...)

		return
	}
	s.publish(ctx, tables)
}

func (s *Store) publish(ctx context.Context, tables []string) {
	if s.feed == nil || len(tables) == 0 {
		return
	}

	// The write is already committed; a lost event only delays observers.
	if err := s.feed.Publish(ctx, tables...); err != nil {
		s.logger.Warn("Failed to publish table change",
			slog.Any("tables", tables),
			slog.Any("error", err),
		)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
