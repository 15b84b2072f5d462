package gormstore

import (
	"context"

	"rentledger/internal/domain/repository"
	"rentledger/internal/infra/changefeed"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoFeed is returned by Observe for a store that was built without a change feed.
var ErrNoFeed = errors.New("store has no change feed")

// insertOrReplace inserts m, or overwrites the row with the same primary key.
// A zero surrogate key always inserts and receives a freshly generated one.
func insertOrReplace[M any](ctx context.Context, s *Store, m *M, table, op string) error {
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
	if err != nil {
		return translateWriteError(err, op)
	}
	s.notify(ctx, table)

	return nil
}

// updateByID writes columns to the row with the given key. A missing row is not an error.
func updateByID[M any](ctx context.Context, s *Store, id any, columns map[string]any, table, op string) error {
	result := s.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return translateWriteError(result.Error, op)
	}
	if result.RowsAffected > 0 {
		s.notify(ctx, table)
	}

	return nil
}

// deleteWhere removes matching rows. affected lists every table the cascade may reach.
func deleteWhere[M any](ctx context.Context, s *Store, op string, affected []string, query string, args ...any) error {
	result := s.db.WithContext(ctx).
		Where(query, args...).
		Delete(new(M))
	if result.Error != nil {
		return translateWriteError(result.Error, op)
	}
	if result.RowsAffected > 0 {
		s.notify(ctx, affected...)
	}

	return nil
}

// getByID returns the row with the given key, or nil if there is none.
func getByID[M any](ctx context.Context, s *Store, id any, op string) (*M, error) {
	m := new(M)
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, op)
	}

	return m, nil
}

// listWhere returns matching rows in the given order. An empty query lists the whole table.
func listWhere[M any](ctx context.Context, s *Store, op, order string, query string, args ...any) ([]*M, error) {
	db := s.db.WithContext(ctx)
	if query != "" {
		db = db.Where(query, args...)
	}

	var rows []*M
	if err := db.Order(order).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, op)
	}

	return rows, nil
}

// Observe runs query in a transaction now and again after every committed change to one of tables.
func Observe[T any](ctx context.Context, s *Store, tables []string, query func(ctx context.Context, tx *Store) (T, error)) (repository.Observation[T], error) {
	if s.feed == nil {
		return nil, ErrNoFeed
	}

	return changefeed.Watch[T](ctx, s.feed, tables, func(ctx context.Context) (T, error) {
		var result T
		err := s.Execute(ctx, func(tx *Store) error {
			var err error
			result, err = query(ctx, tx)

			return err
		})

		return result, err
	})
}
