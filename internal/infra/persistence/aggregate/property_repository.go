// Package aggregate assembles property aggregates from the four ledger tables and writes them back.
package aggregate

import (
	"context"
	"log/slog"

	"rentledger/internal/domain/entity"
	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/domain/repository"
	"rentledger/internal/infra/persistence/gormstore"
	"rentledger/internal/infra/persistence/mapper"
	"rentledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

var billTables = []string{model.TableSubscriptions, model.TableElectricityBills}

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	store  *gormstore.Store
	logger *slog.Logger
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(store *gormstore.Store, logger *slog.Logger) repository.PropertyRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &propertyRepository{
		store:  store,
		logger: logger.With(slog.String("component", "property_repository")),
	}
}

// ListAll observes every table of the ledger, so any committed write re-emits the whole list.
func (repo *propertyRepository) ListAll(ctx context.Context) (repository.Observation[[]*entity.Property], error) {
	return gormstore.Observe(ctx, repo.store, model.AllTables, repo.listAll)
}

// listAll runs inside one read transaction, which gives a consistent snapshot across the four tables.
func (repo *propertyRepository) listAll(ctx context.Context, tx *gormstore.Store) ([]*entity.Property, error) {
	rows, err := tx.Properties().List(ctx)
	if err != nil {
		return nil, err
	}

	properties := make([]*entity.Property, 0, len(rows))
	for _, row := range rows {
		property, err := assemble(ctx, tx, row)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	repo.logger.Debug("Assembled property list", slog.Int("count", len(properties)))

	return properties, nil
}

// WatchSubscriptions re-emits when a subscription or one of their bills changes.
func (repo *propertyRepository) WatchSubscriptions(ctx context.Context, propertyID string) (repository.Observation[[]*entity.Subscription], error) {
	return gormstore.Observe(ctx, repo.store, billTables, func(ctx context.Context, tx *gormstore.Store) ([]*entity.Subscription, error) {
		return subscriptionsOf(ctx, tx, propertyID)
	})
}

func (repo *propertyRepository) WatchShareholders(ctx context.Context, propertyID string) (repository.Observation[[]*entity.Shareholder], error) {
	return gormstore.Observe(ctx, repo.store, []string{model.TableShareholders}, func(ctx context.Context, tx *gormstore.Store) ([]*entity.Shareholder, error) {
		return shareholdersOf(ctx, tx, propertyID)
	})
}

// WatchBillsByProperty depends on subscriptions too, since a new or removed subscription changes the join.
func (repo *propertyRepository) WatchBillsByProperty(ctx context.Context, propertyID string) (repository.Observation[[]*entity.ElectricityBill], error) {
	return gormstore.Observe(ctx, repo.store, billTables, func(ctx context.Context, tx *gormstore.Store) ([]*entity.ElectricityBill, error) {
		return billsOf(ctx, tx, propertyID)
	})
}

// GetByID returns nil, nil when the property does not exist.
func (repo *propertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	var property *entity.Property

	err := repo.store.Execute(ctx, func(tx *gormstore.Store) error {
		row, err := tx.Properties().GetByID(ctx, id)
		if err != nil || row == nil {
			return err
		}

		property, err = assemble(ctx, tx, row)

		return err
	})
	if err != nil {
		return nil, err
	}

	return property, nil
}

// Insert writes the property row and then every child. Writing over an existing property
// replaces its children. Generated child IDs are copied into the aggregate after commit.
func (repo *propertyRepository) Insert(ctx context.Context, property *entity.Property) error {
	var ids idAssignments

	err := repo.store.Execute(ctx, func(tx *gormstore.Store) error {
		if err := tx.Properties().InsertOrReplace(ctx, mapper.FromPropertyDomain(property)); err != nil {
			return err
		}
		if err := deleteChildren(ctx, tx, property.ID); err != nil {
			return err
		}

		return insertChildren(ctx, tx, property, &ids)
	})
	if err != nil {
		return partialWrite(err, "insert property "+property.ID)
	}

	ids.apply()
	repo.logger.Debug("Inserted property", slog.String("property_id", property.ID))

	return nil
}

// Update rewrites the property row, removes every child and inserts the given children again.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	var ids idAssignments

	err := repo.store.Execute(ctx, func(tx *gormstore.Store) error {
		if err := tx.Properties().Update(ctx, mapper.FromPropertyDomain(property)); err != nil {
			return err
		}
		if err := deleteChildren(ctx, tx, property.ID); err != nil {
			return err
		}

		return insertChildren(ctx, tx, property, &ids)
	})
	if err != nil {
		return partialWrite(err, "update property "+property.ID)
	}

	ids.apply()
	repo.logger.Debug("Updated property", slog.String("property_id", property.ID))

	return nil
}

func (repo *propertyRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.Properties().Delete(ctx, id); err != nil {
		return err
	}
	repo.logger.Debug("Deleted property", slog.String("property_id", id))

	return nil
}

func (repo *propertyRepository) AddSubscription(ctx context.Context, propertyID string, subscription *entity.Subscription) error {
	var ids idAssignments

	err := repo.store.Execute(ctx, func(tx *gormstore.Store) error {
		return insertSubscription(ctx, tx, propertyID, subscription, &ids)
	})
	if err != nil {
		return partialWrite(err, "add subscription to property "+propertyID)
	}

	ids.apply()

	return nil
}

func (repo *propertyRepository) BillsByProperty(ctx context.Context, propertyID string) ([]*entity.ElectricityBill, error) {
	return billsOf(ctx, repo.store, propertyID)
}

// AddBill inserts the bill, or replaces the bill with the same non-zero ID.
func (repo *propertyRepository) AddBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error {
	m := mapper.FromBillDomain(bill, subscriptionID)
	if err := repo.store.Bills().InsertOrReplace(ctx, m); err != nil {
		return missingParent(err, domainerrors.ErrSubscriptionNotFound)
	}
	bill.ID = m.ID

	return nil
}

func (repo *propertyRepository) UpdateBill(ctx context.Context, subscriptionID int64, bill *entity.ElectricityBill) error {
	err := repo.store.Bills().Update(ctx, mapper.FromBillDomain(bill, subscriptionID))

	return missingParent(err, domainerrors.ErrSubscriptionNotFound)
}

func (repo *propertyRepository) DeleteBill(ctx context.Context, billID int64) error {
	return repo.store.Bills().Delete(ctx, billID)
}

// AddShareholder inserts the shareholder, or replaces the shareholder with the same non-zero ID.
func (repo *propertyRepository) AddShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error {
	m, err := mapper.FromShareholderDomain(shareholder, propertyID)
	if err != nil {
		return domainerrors.ErrValidationFailed.Because(err)
	}
	if err := repo.store.Shareholders().InsertOrReplace(ctx, m); err != nil {
		return missingParent(err, domainerrors.ErrPropertyNotFound)
	}
	shareholder.ID = m.ID

	return nil
}

func (repo *propertyRepository) UpdateShareholder(ctx context.Context, propertyID string, shareholder *entity.Shareholder) error {
	m, err := mapper.FromShareholderDomain(shareholder, propertyID)
	if err != nil {
		return domainerrors.ErrValidationFailed.Because(err)
	}

	return missingParent(repo.store.Shareholders().Update(ctx, m), domainerrors.ErrPropertyNotFound)
}

func (repo *propertyRepository) DeleteShareholder(ctx context.Context, shareholderID int64) error {
	return repo.store.Shareholders().Delete(ctx, shareholderID)
}

// assemble loads the children of one property row and decodes the whole aggregate.
func assemble(ctx context.Context, tx *gormstore.Store, row *model.PropertyModel) (*entity.Property, error) {
	subscriptions, err := subscriptionsOf(ctx, tx, row.ID)
	if err != nil {
		return nil, err
	}

	shareholders, err := shareholdersOf(ctx, tx, row.ID)
	if err != nil {
		return nil, err
	}

	return mapper.ToPropertyDomain(row, subscriptions, shareholders)
}

func subscriptionsOf(ctx context.Context, tx *gormstore.Store, propertyID string) ([]*entity.Subscription, error) {
	subRows, err := tx.Subscriptions().ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	subscriptions := make([]*entity.Subscription, 0, len(subRows))
	for _, subRow := range subRows {
		billRows, err := tx.Bills().ListBySubscriptionID(ctx, subRow.ID)
		if err != nil {
			return nil, err
		}
		bills, err := toBills(billRows)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, mapper.ToSubscriptionDomain(subRow, bills))
	}

	return subscriptions, nil
}

func shareholdersOf(ctx context.Context, tx *gormstore.Store, propertyID string) ([]*entity.Shareholder, error) {
	holderRows, err := tx.Shareholders().ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	shareholders := make([]*entity.Shareholder, 0, len(holderRows))
	for _, holderRow := range holderRows {
		shareholder, err := mapper.ToShareholderDomain(holderRow)
		if err != nil {
			return nil, err
		}
		shareholders = append(shareholders, shareholder)
	}

	return shareholders, nil
}

func billsOf(ctx context.Context, tx *gormstore.Store, propertyID string) ([]*entity.ElectricityBill, error) {
	rows, err := tx.Bills().ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return toBills(rows)
}

func toBills(rows []*model.ElectricityBillModel) ([]*entity.ElectricityBill, error) {
	bills := make([]*entity.ElectricityBill, 0, len(rows))
	for _, row := range rows {
		bill, err := mapper.ToBillDomain(row)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}

	return bills, nil
}

func deleteChildren(ctx context.Context, tx *gormstore.Store, propertyID string) error {
	if err := tx.Subscriptions().DeleteByPropertyID(ctx, propertyID); err != nil {
		return err
	}

	return tx.Shareholders().DeleteByPropertyID(ctx, propertyID)
}

// insertChildren always inserts fresh rows; IDs carried by the aggregate are ignored.
func insertChildren(ctx context.Context, tx *gormstore.Store, property *entity.Property, ids *idAssignments) error {
	for _, subscription := range property.Subscriptions {
		if err := insertSubscription(ctx, tx, property.ID, subscription, ids); err != nil {
			return err
		}
	}

	for _, shareholder := range property.Shareholders {
		m, err := mapper.FromShareholderDomain(shareholder, property.ID)
		if err != nil {
			return domainerrors.ErrValidationFailed.Because(err)
		}
		m.ID = 0
		if err := tx.Shareholders().InsertOrReplace(ctx, m); err != nil {
			return err
		}
		ids.add(&shareholder.ID, m.ID)
	}

	return nil
}

func insertSubscription(ctx context.Context, tx *gormstore.Store, propertyID string, subscription *entity.Subscription, ids *idAssignments) error {
	subM := mapper.FromSubscriptionDomain(subscription, propertyID)
	subM.ID = 0
	if err := tx.Subscriptions().InsertOrReplace(ctx, subM); err != nil {
		return err
	}
	ids.add(&subscription.ID, subM.ID)

	for _, bill := range subscription.ElectricityBills {
		billM := mapper.FromBillDomain(bill, subM.ID)
		billM.ID = 0
		if err := tx.Bills().InsertOrReplace(ctx, billM); err != nil {
			return err
		}
		ids.add(&bill.ID, billM.ID)
	}

	return nil
}

// idAssignments defers writing generated IDs into the caller's aggregate until the
// transaction has committed, so a rolled back write leaves the aggregate untouched.
type idAssignments []struct {
	dst *int64
	id  int64
}

func (a *idAssignments) add(dst *int64, id int64) {
	*a = append(*a, struct {
		dst *int64
		id  int64
	}{dst: dst, id: id})
}

func (a idAssignments) apply() {
	for _, assignment := range a {
		*assignment.dst = assignment.id
	}
}

func partialWrite(err error, op string) error {
	return errors.Wrap(domainerrors.ErrPartialAggregateWrite.Because(err), op)
}

// missingParent reports a dangling foreign key as notFound, keeping the constraint error as its cause.
func missingParent(err error, notFound *domainerrors.BaseError) error {
	if gormstore.IsForeignKeyViolation(err) {
		return notFound.Because(err)
	}

	return err
}
