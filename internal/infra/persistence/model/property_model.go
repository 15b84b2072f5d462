package model

// Table names, shared with the change feed.
const (
	TableProperties       = "properties"
	TableSubscriptions    = "subscriptions"
	TableElectricityBills = "electricity_bills"
	TableShareholders     = "shareholders"
)

// AllTables lists every ledger table, parents first.
var AllTables = []string{TableProperties, TableSubscriptions, TableElectricityBills, TableShareholders}

// PropertyModel is the GORM-specific struct for the 'properties' table.
// Its primary key is supplied by the caller, never generated.
type PropertyModel struct {
	ID                    string  `gorm:"type:varchar(64);primaryKey"`
	Name                  string  `gorm:"type:varchar(255);not null"`
	Address               string  `gorm:"type:text;not null"`
	ElectricityCodeNumber *string `gorm:"type:varchar(255)"`
	RentPrice             float64 `gorm:"not null"`
	RentDuration          string  `gorm:"type:varchar(16);not null"`
	RenterName            *string `gorm:"type:varchar(255)"`

	// CreatedAt orders properties by first insertion; upserts leave it untouched.
	CreatedAt int64 `gorm:"autoCreateTime:nano;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return TableProperties
}
