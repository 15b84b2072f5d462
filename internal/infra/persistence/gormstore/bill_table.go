package gormstore

import (
	"context"
	"strconv"

	"rentledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// BillTable accesses the 'electricity_bills' table.
type BillTable struct {
	store *Store
}

// InsertOrReplace writes the row. A zero ID inserts and m.ID receives the generated key.
func (t *BillTable) InsertOrReplace(ctx context.Context, m *model.ElectricityBillModel) error {
	return insertOrReplace(ctx, t.store, m, model.TableElectricityBills,
		"insert bill for subscription "+strconv.FormatInt(m.SubscriptionID, 10))
}

func (t *BillTable) Update(ctx context.Context, m *model.ElectricityBillModel) error {
	return updateByID[model.ElectricityBillModel](ctx, t.store, m.ID, map[string]any{
		"amount":          m.Amount,
		"currency":        m.Currency,
		"payment_date":    m.PaymentDate,
		"subscription_id": m.SubscriptionID,
	}, model.TableElectricityBills, "update bill "+strconv.FormatInt(m.ID, 10))
}

func (t *BillTable) Delete(ctx context.Context, id int64) error {
	return deleteWhere[model.ElectricityBillModel](ctx, t.store, "delete bill "+strconv.FormatInt(id, 10),
		[]string{model.TableElectricityBills}, "id = ?", id)
}

func (t *BillTable) DeleteBySubscriptionID(ctx context.Context, subscriptionID int64) error {
	return deleteWhere[model.ElectricityBillModel](ctx, t.store,
		"delete bills of subscription "+strconv.FormatInt(subscriptionID, 10),
		[]string{model.TableElectricityBills}, "subscription_id = ?", subscriptionID)
}

func (t *BillTable) GetByID(ctx context.Context, id int64) (*model.ElectricityBillModel, error) {
	return getByID[model.ElectricityBillModel](ctx, t.store, id, "failed to find bill by ID")
}

// ListBySubscriptionID returns the subscription's bills in insertion order.
func (t *BillTable) ListBySubscriptionID(ctx context.Context, subscriptionID int64) ([]*model.ElectricityBillModel, error) {
	return listWhere[model.ElectricityBillModel](ctx, t.store, "failed to list bills by subscription", "id ASC",
		"subscription_id = ?", subscriptionID)
}

// ListByPropertyID returns the bills of every subscription of the property, newest payment first.
func (t *BillTable) ListByPropertyID(ctx context.Context, propertyID string) ([]*model.ElectricityBillModel, error) {
	bills := newBillQuery(t.store.db)
	subs := newSubscriptionQuery(t.store.db)

	result, err := bills.WithContext(ctx).
		Select(bills.ALL).
		Join(subs, subs.ID.EqCol(bills.SubscriptionID)).
		Where(subs.PropertyID.Eq(propertyID)).
		Order(bills.PaymentDate.Desc(), bills.ID.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills by property")
	}

	return result.([]*model.ElectricityBillModel), nil
}
