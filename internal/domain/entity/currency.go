package entity

import "github.com/pkg/errors"

// Currency is the currency a bill or a fixed share is expressed in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyLBP Currency = "LBP"
)

// Currencies lists every supported currency in display order.
var Currencies = []Currency{CurrencyUSD, CurrencyLBP}

// String returns the string representation of the Currency.
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol placed in front of amounts.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyLBP:
		return "L.L."
	default:
		return string(c)
	}
}

// IsValid checks if the Currency is a supported value.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyLBP:
		return true
	default:
		return false
	}
}

// ParseCurrency decodes a currency from its member name.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.IsValid() {
		return "", errors.Errorf("unknown currency %q", s)
	}

	return c, nil
}

// RentDuration is the period the rent price applies to.
type RentDuration string

const (
	RentDurationMonthly RentDuration = "MONTHLY"
	RentDurationYearly  RentDuration = "YEARLY"
)

func (d RentDuration) String() string {
	return string(d)
}

func (d RentDuration) IsValid() bool {
	return d == RentDurationMonthly || d == RentDurationYearly
}

// ParseRentDuration decodes a rent duration from its member name.
func ParseRentDuration(s string) (RentDuration, error) {
	d := RentDuration(s)
	if !d.IsValid() {
		return "", errors.Errorf("unknown rent duration %q", s)
	}

	return d, nil
}
