package entity

import (
	"reflect"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks the validate tags of an entity and the rules that tags cannot express.
// The returned error is a validator.ValidationErrors when a rule fails.
func Validate(v any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// An invalid date is reported as missing.
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			date, ok := field.Interface().(civil.Date)
			if !ok || !date.IsValid() {
				return nil
			}

			return date.String()
		}, civil.Date{})

		validate.RegisterStructValidation(validateShareholder, Shareholder{})
	})

	return validate.Struct(v)
}

func validateShareholder(sl validator.StructLevel) {
	shareholder, ok := sl.Current().Interface().(Shareholder)
	if !ok {
		return
	}

	switch v := shareholder.ShareValue.(type) {
	case nil:
		sl.ReportError("", "ShareValue", "ShareValue", "required", "")
	case Percentage:
		if v.Value < 0 || v.Value > 100 {
			sl.ReportError(v.Value, "ShareValue", "ShareValue", "percentage", "")
		}
	case CurrencyValue:
		if v.Amount < 0 {
			sl.ReportError(v.Amount, "ShareValue", "ShareValue", "gte", "0")
		}
		if !v.Currency.IsValid() {
			sl.ReportError(v.Currency, "ShareValue", "ShareValue", "oneof", "USD LBP")
		}
	}
}
