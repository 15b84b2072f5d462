package model

// ElectricityBillModel is the GORM-specific struct for the 'electricity_bills' table.
type ElectricityBillModel struct {
	ID             int64              `gorm:"primaryKey;autoIncrement"`
	Amount         float64            `gorm:"not null"`
	Currency       string             `gorm:"type:varchar(8);not null"`
	PaymentDate    string             `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	SubscriptionID int64              `gorm:"not null;index"`
	Subscription   *SubscriptionModel `gorm:"foreignKey:SubscriptionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ElectricityBillModel) TableName() string {
	return TableElectricityBills
}
