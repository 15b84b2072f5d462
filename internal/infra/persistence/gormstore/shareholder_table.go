package gormstore

import (
	"context"
	"strconv"

	"rentledger/internal/infra/persistence/model"
)

// ShareholderTable accesses the 'shareholders' table.
type ShareholderTable struct {
	store *Store
}

// InsertOrReplace writes the row. A zero ID inserts and m.ID receives the generated key.
func (t *ShareholderTable) InsertOrReplace(ctx context.Context, m *model.ShareholderModel) error {
	return insertOrReplace(ctx, t.store, m, model.TableShareholders, "insert shareholder for property "+m.PropertyID)
}

// Update rewrites the shareholder, including both share value columns so the
// discriminator and its payload always change together.
func (t *ShareholderTable) Update(ctx context.Context, m *model.ShareholderModel) error {
	return updateByID[model.ShareholderModel](ctx, t.store, m.ID, map[string]any{
		"name":             m.Name,
		"share_value_type": m.ShareValueType,
		"share_value":      m.ShareValue,
		"currency":         m.Currency,
		"property_id":      m.PropertyID,
	}, model.TableShareholders, "update shareholder "+strconv.FormatInt(m.ID, 10))
}

func (t *ShareholderTable) Delete(ctx context.Context, id int64) error {
	return deleteWhere[model.ShareholderModel](ctx, t.store, "delete shareholder "+strconv.FormatInt(id, 10),
		[]string{model.TableShareholders}, "id = ?", id)
}

func (t *ShareholderTable) DeleteByPropertyID(ctx context.Context, propertyID string) error {
	return deleteWhere[model.ShareholderModel](ctx, t.store, "delete shareholders of property "+propertyID,
		[]string{model.TableShareholders}, "property_id = ?", propertyID)
}

func (t *ShareholderTable) GetByID(ctx context.Context, id int64) (*model.ShareholderModel, error) {
	return getByID[model.ShareholderModel](ctx, t.store, id, "failed to find shareholder by ID")
}

// ListByPropertyID returns the property's shareholders in insertion order.
func (t *ShareholderTable) ListByPropertyID(ctx context.Context, propertyID string) ([]*model.ShareholderModel, error) {
	return listWhere[model.ShareholderModel](ctx, t.store, "failed to list shareholders by property", "id ASC",
		"property_id = ?", propertyID)
}
