package gormstore

import (
	"rentledger/internal/infra/persistence/model"

	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// billQuery is a typed gen view of the 'electricity_bills' table.
type billQuery struct {
	gen.DO

	ALL            field.Asterisk
	ID             field.Int64
	Amount         field.Float64
	Currency       field.String
	PaymentDate    field.String
	SubscriptionID field.Int64
}

func newBillQuery(db *gorm.DB) billQuery {
	_billQuery := billQuery{}

	_billQuery.UseDB(db)
	_billQuery.UseModel(&model.ElectricityBillModel{})

	tableName := _billQuery.TableName()
	_billQuery.ALL = field.NewAsterisk(tableName)
	_billQuery.ID = field.NewInt64(tableName, "id")
	_billQuery.Amount = field.NewFloat64(tableName, "amount")
	_billQuery.Currency = field.NewString(tableName, "currency")
	_billQuery.PaymentDate = field.NewString(tableName, "payment_date")
	_billQuery.SubscriptionID = field.NewInt64(tableName, "subscription_id")

	return _billQuery
}

// subscriptionQuery is a typed gen view of the 'subscriptions' table.
type subscriptionQuery struct {
	gen.DO

	ALL        field.Asterisk
	ID         field.Int64
	Name       field.String
	PropertyID field.String
}

func newSubscriptionQuery(db *gorm.DB) subscriptionQuery {
	_subscriptionQuery := subscriptionQuery{}

	_subscriptionQuery.UseDB(db)
	_subscriptionQuery.UseModel(&model.SubscriptionModel{})

	tableName := _subscriptionQuery.TableName()
	_subscriptionQuery.ALL = field.NewAsterisk(tableName)
	_subscriptionQuery.ID = field.NewInt64(tableName, "id")
	_subscriptionQuery.Name = field.NewString(tableName, "name")
	_subscriptionQuery.PropertyID = field.NewString(tableName, "property_id")

	return _subscriptionQuery
}
