package main

import (
	"rentledger/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PropertyModel{},
		model.SubscriptionModel{},
		model.ElectricityBillModel{},
		model.ShareholderModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/gormstore/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
