package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// BillFilter selects bills by payment date and currency. Nil fields do not constrain.
// Both date bounds are inclusive.
type BillFilter struct {
	From     *civil.Date
	To       *civil.Date
	Currency *Currency
}

// IsZero reports whether the filter has no date bounds.
func (f BillFilter) IsZero() bool {
	return f.From == nil && f.To == nil
}

// Matches reports whether bill falls inside the filter.
func (f BillFilter) Matches(bill *ElectricityBill) bool {
	if bill == nil {
		return false
	}
	if f.From != nil && bill.PaymentDate.Before(*f.From) {
		return false
	}
	if f.To != nil && bill.PaymentDate.After(*f.To) {
		return false
	}
	if f.Currency != nil && bill.Currency != *f.Currency {
		return false
	}

	return true
}

// Apply returns the matching bills, preserving their order.
func (f BillFilter) Apply(bills []*ElectricityBill) []*ElectricityBill {
	matched := make([]*ElectricityBill, 0, len(bills))
	for _, bill := range bills {
		if f.Matches(bill) {
			matched = append(matched, bill)
		}
	}

	return matched
}

// CurrentYearFilter returns a filter covering Jan 1 through Dec 31 of now's year.
func CurrentYearFilter(now time.Time) BillFilter {
	from := civil.Date{Year: now.Year(), Month: time.January, Day: 1}
	to := civil.Date{Year: now.Year(), Month: time.December, Day: 31}

	return BillFilter{From: &from, To: &to}
}

// TotalsByCurrency sums bill amounts per currency. Currencies without bills are absent.
func TotalsByCurrency(bills []*ElectricityBill) map[Currency]decimal.Decimal {
	totals := make(map[Currency]decimal.Decimal)
	for _, bill := range bills {
		if bill == nil {
			continue
		}
		totals[bill.Currency] = totals[bill.Currency].Add(decimal.NewFromFloat(bill.Amount))
	}

	return totals
}

// SubscriptionSummary is the filtered view of one subscription.
type SubscriptionSummary struct {
	Name   string
	Bills  []*ElectricityBill
	Totals map[Currency]decimal.Decimal
}

// Summarize applies filter to each subscription of the property, keeping subscription order.
// Subscriptions left without bills are still listed.
func Summarize(p *Property, filter BillFilter) []SubscriptionSummary {
	summaries := make([]SubscriptionSummary, 0, len(p.Subscriptions))
	for _, sub := range p.Subscriptions {
		bills := filter.Apply(sub.ElectricityBills)
		summaries = append(summaries, SubscriptionSummary{
			Name:   sub.Name,
			Bills:  bills,
			Totals: TotalsByCurrency(bills),
		})
	}

	return summaries
}
