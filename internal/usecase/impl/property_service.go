// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"rentledger/config"
	"rentledger/internal/domain/entity"
	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/domain/repository"
	"rentledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo repository.PropertyRepository
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: params.PropertyRepo,
		config:       params.Config,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *propertyService) WatchProperties(ctx context.Context) (repository.Observation[[]*entity.Property], error) {
	obs, err := srv.propertyRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch properties")
	}

	return obs, nil
}

// GetProperty retrieves one property with its subscriptions, bills and shareholders.
func (srv *propertyService) GetProperty(ctx context.Context, id string) (*entity.Property, error) {
	if id == "" {
		return nil, domainerrors.ErrInvalidPropertyID
	}

	property, err := srv.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get property")
	}
	if property == nil {
		return nil, errors.Wrapf(domainerrors.ErrPropertyNotFound, "property %s", id)
	}

	return property, nil
}

// CreateProperty stores a new property. A property without an ID receives a fresh one.
func (srv *propertyService) CreateProperty(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = entity.NewPropertyID()
	}
	if err := validateEntity(property); err != nil {
		return err
	}

	if err := srv.propertyRepo.Insert(ctx, property); err != nil {
		return errors.Wrap(err, "failed to create property")
	}
	srv.logger.Info("Property created",
		slog.String("property_id", property.ID),
		slog.Int("subscriptions", len(property.Subscriptions)),
		slog.Int("shareholders", len(property.Shareholders)),
	)

	return nil
}

// UpdateProperty replaces the stored property. Child IDs are regenerated by the store.
func (srv *propertyService) UpdateProperty(ctx context.Context, property *entity.Property) error {
	if err := validateEntity(property); err != nil {
		return err
	}
	if _, err := srv.GetProperty(ctx, property.ID); err != nil {
		return err
	}

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return errors.Wrap(err, "failed to update property")
	}
	srv.logger.Debug("Property updated", slog.String("property_id", property.ID))

	return nil
}

func (srv *propertyService) DeleteProperty(ctx context.Context, id string) error {
	if id == "" {
		return domainerrors.ErrInvalidPropertyID
	}

	if err := srv.propertyRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete property")
	}
	srv.logger.Info("Property deleted", slog.String("property_id", id))

	return nil
}

func (srv *propertyService) AddSubscription(ctx context.Context, propertyID string, subscription *entity.Subscription) error {
	if err := validateEntity(subscription); err != nil {
		return err
	}
	if _, err := srv.GetProperty(ctx, propertyID); err != nil {
		return err
	}

	if err := srv.propertyRepo.AddSubscription(ctx, propertyID, subscription); err != nil {
		return errors.Wrap(err, "failed to add subscription")
	}

	return nil
}

func (srv *propertyService) ListBills(ctx context.Context, propertyID string) ([]*entity.ElectricityBill, error) {
	if propertyID == "" {
		return nil, domainerrors.ErrInvalidPropertyID
	}

	bills, err := srv.propertyRepo.BillsByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills")
	}

	return bills, nil
}

func (srv *propertyService) WatchSubscriptions(ctx context.Context, propertyID string) (repository.Observation[[]*entity.Subscription], error) {
	if propertyID == "" {
		return nil, domainerrors.ErrInvalidPropertyID
	}

	obs, err := srv.propertyRepo.WatchSubscriptions(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch subscriptions")
	}

	return obs, nil
}

func (srv *propertyService) WatchShareholders(ctx context.Context, propertyID string) (repository.Observation[[]*entity.Shareholder], error) {
	if propertyID == "" {
		return nil, domainerrors.ErrInvalidPropertyID
	}

	obs, err := srv.propertyRepo.WatchShareholders(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch shareholders")
	}

	return obs, nil
}

func (srv *propertyService) WatchBills(ctx context.Context, propertyID string) (repository.Observation[[]*entity.ElectricityBill], error) {
	if propertyID == "" {
		return nil, domainerrors.ErrInvalidPropertyID
	}

	obs, err := srv.propertyRepo.WatchBillsByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch bills")
	}

	return obs, nil
}

// SummarizeBills applies filter per subscription, in subscription order.
func (srv *propertyService) SummarizeBills(ctx context.Context, propertyID string, filter entity.BillFilter) ([]entity.SubscriptionSummary, error) {
	property, err := srv.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return entity.Summarize(property, srv.effectiveFilter(filter)), nil
}

// DeleteMatchingBills drops the matching bills from the aggregate and writes it back in one update.
func (srv *propertyService) DeleteMatchingBills(ctx context.Context, propertyID string, filter entity.BillFilter) (int, error) {
	property, err := srv.GetProperty(ctx, propertyID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, sub := range property.Subscriptions {
		kept := make([]*entity.ElectricityBill, 0, len(sub.ElectricityBills))
		for _, bill := range sub.ElectricityBills {
			if filter.Matches(bill) {
				removed++

				continue
			}
			kept = append(kept, bill)
		}
		sub.ElectricityBills = kept
	}

	if removed == 0 {
		return 0, nil
	}

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return 0, errors.Wrap(err, "failed to delete bills")
	}
	srv.logger.Info("Bills deleted",
		slog.String("property_id", propertyID),
		slog.Int("count", removed),
	)

	return removed, nil
}

func (srv *propertyService) AddBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error {
	if err := validateEntity(bill); err != nil {
		return err
	}

	return errors.Wrap(srv.propertyRepo.AddBill(ctx, subscriptionID, bill), "failed to add bill")
}

func (srv *propertyService) UpdateBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error {
	if err := validateEntity(bill); err != nil {
		return err
	}

	return errors.Wrap(srv.propertyRepo.UpdateBill(ctx, subscriptionID, bill), "failed to update bill")
}

func (srv *propertyService) DeleteBill(ctx context.Context, billID int64) error {
	return errors.Wrap(srv.propertyRepo.DeleteBill(ctx, billID), "failed to delete bill")
}

func (srv *propertyService) AddShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error {
	if err := validateEntity(shareholder); err != nil {
		return err
	}

	return errors.Wrap(srv.propertyRepo.AddShareholder(ctx, propertyID, shareholder), "failed to add shareholder")
}

func (srv *propertyService) UpdateShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error {
	if err := validateEntity(shareholder); err != nil {
		return err
	}

	return errors.Wrap(srv.propertyRepo.UpdateShareholder(ctx, propertyID, shareholder), "failed to update shareholder")
}

func (srv *propertyService) DeleteShareholder(ctx context.Context, shareholderID int64) error {
	return errors.Wrap(srv.propertyRepo.DeleteShareholder(ctx, shareholderID), "failed to delete shareholder")
}

// effectiveFilter widens an empty filter to the current calendar year when configured to.
func (srv *propertyService) effectiveFilter(filter entity.BillFilter) entity.BillFilter {
	if !filter.IsZero() || srv.config == nil || !srv.config.Summary.DefaultToCurrentYear {
		return filter
	}

	year := entity.CurrentYearFilter(srv.now())
	year.Currency = filter.Currency

	return year
}

func validateEntity(v any) error {
	if err := entity.Validate(v); err != nil {
		return domainerrors.ErrValidationFailed.Because(err)
	}

	return nil
}
