package gormstore

import (
	"context"
	"slices"

	"github.com/pkg/errors"
)

// changeSet collects the tables written inside one transaction, in first-write order.
type changeSet struct {
	tables []string
}

func (c *changeSet) add(tables ...string) {
	for _, table := range tables {
		if !slices.Contains(c.tables, table) {
			c.tables = append(c.tables, table)
		}
	}
}

// Execute runs fn within a single database transaction. Every table handle obtained from the
// Store passed to fn is bound to that transaction. Change events are published once, after commit;
// a rolled back transaction publishes nothing. Calling Execute on a transactional Store joins it.
func (s *Store) Execute(ctx context.Context, fn func(tx *Store) error) error {
	if s.changes != nil {
		return fn(s)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	txStore := &Store{db: tx, feed: s.feed, logger: s.logger, changes: &changeSet{}}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	s.publish(ctx, txStore.changes.tables)

	return nil
}
