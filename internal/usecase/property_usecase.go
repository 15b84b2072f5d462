package usecase

import (
	"context"

	"rentledger/internal/domain/entity"
	"rentledger/internal/domain/repository"
)

// PropertyUsecase defines the ledger operations offered to the presentation layer
type PropertyUsecase interface {
	// WatchProperties streams every property, fully assembled, until ctx ends or the observation is closed
	WatchProperties(ctx context.Context) (repository.Observation[[]*entity.Property], error)

	// GetProperty returns the property or ErrPropertyNotFound
	GetProperty(ctx context.Context, id string) (*entity.Property, error)

	// CreateProperty validates and stores a new property, assigning an ID when it has none
	CreateProperty(ctx context.Context, property *entity.Property) error

	// UpdateProperty replaces an existing property and all of its children
	UpdateProperty(ctx context.Context, property *entity.Property) error

	// DeleteProperty removes a property with everything it owns
	DeleteProperty(ctx context.Context, id string) error

	// AddSubscription appends a subscription to an existing property
	AddSubscription(ctx context.Context, propertyID string, subscription *entity.Subscription) error

	// ListBills returns every bill of the property, newest payment first
	ListBills(ctx context.Context, propertyID string) ([]*entity.ElectricityBill, error)

	// WatchSubscriptions streams the property's subscriptions with their bills
	WatchSubscriptions(ctx context.Context, propertyID string) (repository.Observation[[]*entity.Subscription], error)

	// WatchShareholders streams the property's shareholders
	WatchShareholders(ctx context.Context, propertyID string) (repository.Observation[[]*entity.Shareholder], error)

	// WatchBills streams every bill of the property, newest payment first
	WatchBills(ctx context.Context, propertyID string) (repository.Observation[[]*entity.ElectricityBill], error)

	// SummarizeBills filters the bills of each subscription and totals them per currency.
	// An empty filter falls back to the current calendar year when configured to.
	SummarizeBills(ctx context.Context, propertyID string, filter entity.BillFilter) ([]entity.SubscriptionSummary, error)

	// DeleteMatchingBills removes the bills matching filter and reports how many were removed
	DeleteMatchingBills(ctx context.Context, propertyID string, filter entity.BillFilter) (int, error)

	AddBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error
	UpdateBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error
	DeleteBill(ctx context.Context, billID int64) error

	AddShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error
	UpdateShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error
	DeleteShareholder(ctx context.Context, shareholderID int64) error
}
