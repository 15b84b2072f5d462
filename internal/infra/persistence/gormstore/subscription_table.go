package gormstore

import (
	"context"
	"strconv"

	"rentledger/internal/infra/persistence/model"
)

var subscriptionCascade = []string{model.TableSubscriptions, model.TableElectricityBills}

// SubscriptionTable accesses the 'subscriptions' table.
type SubscriptionTable struct {
	store *Store
}

// InsertOrReplace writes the row. A zero ID inserts and m.ID receives the generated key.
func (t *SubscriptionTable) InsertOrReplace(ctx context.Context, m *model.SubscriptionModel) error {
	return insertOrReplace(ctx, t.store, m, model.TableSubscriptions, "insert subscription for property "+m.PropertyID)
}

func (t *SubscriptionTable) Update(ctx context.Context, m *model.SubscriptionModel) error {
	return updateByID[model.SubscriptionModel](ctx, t.store, m.ID, map[string]any{
		"name":        m.Name,
		"property_id": m.PropertyID,
	}, model.TableSubscriptions, "update subscription "+strconv.FormatInt(m.ID, 10))
}

// Delete removes the subscription and, through the cascade, its bills.
func (t *SubscriptionTable) Delete(ctx context.Context, id int64) error {
	return deleteWhere[model.SubscriptionModel](ctx, t.store, "delete subscription "+strconv.FormatInt(id, 10),
		subscriptionCascade, "id = ?", id)
}

// DeleteByPropertyID removes every subscription of the property, with their bills.
func (t *SubscriptionTable) DeleteByPropertyID(ctx context.Context, propertyID string) error {
	return deleteWhere[model.SubscriptionModel](ctx, t.store, "delete subscriptions of property "+propertyID,
		subscriptionCascade, "property_id = ?", propertyID)
}

func (t *SubscriptionTable) GetByID(ctx context.Context, id int64) (*model.SubscriptionModel, error) {
	return getByID[model.SubscriptionModel](ctx, t.store, id, "failed to find subscription by ID")
}

// ListByPropertyID returns the property's subscriptions in insertion order.
func (t *SubscriptionTable) ListByPropertyID(ctx context.Context, propertyID string) ([]*model.SubscriptionModel, error) {
	return listWhere[model.SubscriptionModel](ctx, t.store, "failed to list subscriptions by property", "id ASC",
		"property_id = ?", propertyID)
}
