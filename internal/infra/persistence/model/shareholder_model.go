package model

// Discriminator values of ShareholderModel.ShareValueType.
const (
	ShareValueTypePercentage = "percentage"
	ShareValueTypeCurrency   = "currency"
)

// ShareholderModel is the GORM-specific struct for the 'shareholders' table.
// ShareValue holds the percentage or the amount depending on ShareValueType;
// Currency is set only for the "currency" type.
type ShareholderModel struct {
	ID             int64          `gorm:"primaryKey;autoIncrement"`
	Name           string         `gorm:"type:varchar(255);not null"`
	ShareValueType string         `gorm:"type:varchar(16);not null"`
	ShareValue     float64        `gorm:"not null"`
	Currency       *string        `gorm:"type:varchar(8)"`
	PropertyID     string         `gorm:"type:varchar(64);not null;index"`
	Property       *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShareholderModel) TableName() string {
	return TableShareholders
}
