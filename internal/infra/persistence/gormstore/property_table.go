package gormstore

import (
	"context"

	"rentledger/internal/infra/persistence/model"
)

// PropertyTable accesses the 'properties' table.
type PropertyTable struct {
	store *Store
}

// InsertOrReplace writes the row, overwriting an existing property with the same ID.
// Overwriting keeps the property's children and its position in List.
func (t *PropertyTable) InsertOrReplace(ctx context.Context, m *model.PropertyModel) error {
	return insertOrReplace(ctx, t.store, m, model.TableProperties, "insert property "+m.ID)
}

// Update rewrites every column of an existing property. Unknown IDs are ignored.
func (t *PropertyTable) Update(ctx context.Context, m *model.PropertyModel) error {
	return updateByID[model.PropertyModel](ctx, t.store, m.ID, map[string]any{
		"name":                    m.Name,
		"address":                 m.Address,
		"electricity_code_number": m.ElectricityCodeNumber,
		"rent_price":              m.RentPrice,
		"rent_duration":           m.RentDuration,
		"renter_name":             m.RenterName,
	}, model.TableProperties, "update property "+m.ID)
}

// Delete removes the property. The database cascades the delete to its subscriptions,
// their bills and its shareholders.
func (t *PropertyTable) Delete(ctx context.Context, id string) error {
	return deleteWhere[model.PropertyModel](ctx, t.store, "delete property "+id, model.AllTables, "id = ?", id)
}

// GetByID returns the property row, or nil if it does not exist.
func (t *PropertyTable) GetByID(ctx context.Context, id string) (*model.PropertyModel, error) {
	return getByID[model.PropertyModel](ctx, t.store, id, "failed to find property by ID")
}

// List returns every property in insertion order.
func (t *PropertyTable) List(ctx context.Context) ([]*model.PropertyModel, error) {
	return listWhere[model.PropertyModel](ctx, t.store, "failed to list properties", "created_at ASC, id ASC", "")
}
