package entity

import "strconv"

// ShareValue is how much of a property a shareholder owns. It is either a
// Percentage or a CurrencyValue; no other implementations exist.
type ShareValue interface {
	String() string
	shareValue()
}

// Percentage is a share expressed as a percent of the property's income.
type Percentage struct {
	Value float64 `json:"value"`
}

// CurrencyValue is a fixed share expressed as an amount of money.
type CurrencyValue struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

func (Percentage) shareValue()    {}
func (CurrencyValue) shareValue() {}

// String renders the share as "<value>%".
func (p Percentage) String() string {
	return formatNumber(p.Value) + "%"
}

// String renders the share with the currency symbol glued to the amount, e.g. "$150".
func (c CurrencyValue) String() string {
	return c.Currency.Symbol() + formatNumber(c.Amount)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
