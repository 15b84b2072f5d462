package model

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// It never knows its bills; they reference it through SubscriptionID.
type SubscriptionModel struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	Name       string         `gorm:"type:varchar(255);not null"`
	PropertyID string         `gorm:"type:varchar(64);not null;index"`
	Property   *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return TableSubscriptions
}
