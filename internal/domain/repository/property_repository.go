// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rentledger/internal/domain/entity"
)

// Snapshot is one emission of a reactive query. Exactly one of Value or Err is meaningful.
type Snapshot[T any] struct {
	Value T
	Err   error
}

// Observation is a live query registration. Updates yields the current result first and
// then a fresh result after every committed write to a table the query depends on.
// The channel is closed after Close, after the registering context ends, or after a
// fatal error has been delivered.
type Observation[T any] interface {
	Updates() <-chan Snapshot[T]

	// Close unregisters the query. It has no effect on stored data and is safe to call twice.
	Close()
}

// PropertyRepository reads and writes whole property aggregates: the property row plus its
// subscriptions, their bills and its shareholders.
type PropertyRepository interface {
	// ListAll observes every property, fully assembled, in insertion order.
	ListAll(ctx context.Context) (Observation[[]*entity.Property], error)

	// GetByID returns the assembled property, or nil if no such property exists.
	GetByID(ctx context.Context, id string) (*entity.Property, error)

	// Insert writes the property and all of its children, parent first.
	// Generated child IDs are written back into the given aggregate.
	Insert(ctx context.Context, property *entity.Property) error

	// Update rewrites the property row, deletes every child and re-inserts the given ones.
	// Child IDs are regenerated.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes the property; its children go with it.
	Delete(ctx context.Context, id string) error

	// AddSubscription appends one subscription, with its bills, to an existing property.
	AddSubscription(ctx context.Context, propertyID string, subscription *entity.Subscription) error

	// WatchSubscriptions observes the property's subscriptions, each with its bills, in insertion order.
	WatchSubscriptions(ctx context.Context, propertyID string) (Observation[[]*entity.Subscription], error)

	// WatchShareholders observes the property's shareholders in insertion order.
	WatchShareholders(ctx context.Context, propertyID string) (Observation[[]*entity.Shareholder], error)

	// WatchBillsByProperty observes the same list BillsByProperty returns.
	WatchBillsByProperty(ctx context.Context, propertyID string) (Observation[[]*entity.ElectricityBill], error)

	// BillsByProperty lists the bills of every subscription of the property, newest payment first.
	BillsByProperty(ctx context.Context, propertyID string) ([]*entity.ElectricityBill, error)

	AddBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error
	UpdateBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error
	DeleteBill(ctx context.Context, billID int64) error

	AddShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error
	UpdateShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error
	DeleteShareholder(ctx context.Context, shareholderID int64) error
}
