package entity

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value ShareValue
		want  string
	}{
		{name: "whole percentage", value: Percentage{Value: 25}, want: "25%"},
		{name: "fractional percentage", value: Percentage{Value: 12.5}, want: "12.5%"},
		{name: "usd amount", value: CurrencyValue{Amount: 150, Currency: CurrencyUSD}, want: "$150"},
		{name: "lbp amount", value: CurrencyValue{Amount: 2000000, Currency: CurrencyLBP}, want: "L.L.2000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("LBP")
	require.NoError(t, err)
	assert.Equal(t, CurrencyLBP, c)

	_, err = ParseCurrency("usd")
	assert.Error(t, err)
}

func TestParseRentDuration(t *testing.T) {
	d, err := ParseRentDuration("YEARLY")
	require.NoError(t, err)
	assert.Equal(t, RentDurationYearly, d)

	_, err = ParseRentDuration("WEEKLY")
	assert.Error(t, err)
}

func TestNewProperty(t *testing.T) {
	a := NewProperty("Flat 3", "Hamra St", 400, RentDurationMonthly)
	b := NewProperty("Flat 4", "Hamra St", 400, RentDurationMonthly)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Subscriptions)
	assert.Empty(t, a.Shareholders)
}

func TestTotalsByCurrency(t *testing.T) {
	bills := []*ElectricityBill{
		{Amount: 10, Currency: CurrencyUSD},
		{Amount: 5, Currency: CurrencyUSD},
		{Amount: 100, Currency: CurrencyLBP},
	}

	totals := TotalsByCurrency(bills)

	require.Len(t, totals, 2)
	assert.Equal(t, "15", totals[CurrencyUSD].String())
	assert.Equal(t, "100", totals[CurrencyLBP].String())
}

func TestTotalsByCurrency_AvoidsFloatDrift(t *testing.T) {
	bills := []*ElectricityBill{
		{Amount: 0.1, Currency: CurrencyUSD},
		{Amount: 0.2, Currency: CurrencyUSD},
	}

	assert.Equal(t, "0.3", TotalsByCurrency(bills)[CurrencyUSD].String())
}

func TestBillFilter_DateRangeAndCurrency(t *testing.T) {
	var bills []*ElectricityBill
	for month := time.January; month <= time.December; month++ {
		for _, day := range []int{1, 15, 30} {
			if month == time.February && day == 30 {
				continue
			}
			date := civil.Date{Year: 2023, Month: month, Day: day}
			bills = append(bills,
				&ElectricityBill{Amount: 10, Currency: CurrencyUSD, PaymentDate: date},
				&ElectricityBill{Amount: 500000, Currency: CurrencyLBP, PaymentDate: date},
			)
		}
	}

	from := civil.Date{Year: 2023, Month: time.March, Day: 1}
	to := civil.Date{Year: 2023, Month: time.June, Day: 30}
	usd := CurrencyUSD
	filter := BillFilter{From: &from, To: &to, Currency: &usd}

	got := filter.Apply(bills)

	// Mar, Apr, May, Jun with three bill days each.
	require.Len(t, got, 12)
	assert.Equal(t, from, got[0].PaymentDate)
	assert.Equal(t, to, got[len(got)-1].PaymentDate)
	for _, bill := range got {
		assert.Equal(t, CurrencyUSD, bill.Currency)
		assert.False(t, bill.PaymentDate.Before(from))
		assert.False(t, bill.PaymentDate.After(to))
	}
}

func TestBillFilter_NilBoundsAreOpen(t *testing.T) {
	bill := &ElectricityBill{Amount: 1, Currency: CurrencyLBP, PaymentDate: civil.Date{Year: 1999, Month: time.May, Day: 2}}

	assert.True(t, BillFilter{}.Matches(bill))
	assert.True(t, BillFilter{}.IsZero())
	assert.False(t, BillFilter{}.Matches(nil))
}

func TestCurrentYearFilter(t *testing.T) {
	now := time.Date(2024, time.July, 9, 13, 0, 0, 0, time.UTC)

	filter := CurrentYearFilter(now)

	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 1}, *filter.From)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.December, Day: 31}, *filter.To)
	assert.Nil(t, filter.Currency)
}

func TestSummarize_KeepsSubscriptionOrder(t *testing.T) {
	p := &Property{
		Subscriptions: []*Subscription{
			{Name: "main", ElectricityBills: []*ElectricityBill{
				{Amount: 20, Currency: CurrencyUSD, PaymentDate: civil.Date{Year: 2023, Month: time.January, Day: 5}},
				{Amount: 30, Currency: CurrencyUSD, PaymentDate: civil.Date{Year: 2022, Month: time.January, Day: 5}},
			}},
			{Name: "motor"},
		},
	}

	summaries := Summarize(p, CurrentYearFilter(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)))

	require.Len(t, summaries, 2)
	assert.Equal(t, "main", summaries[0].Name)
	require.Len(t, summaries[0].Bills, 1)
	assert.Equal(t, "20", summaries[0].Totals[CurrencyUSD].String())
	assert.Equal(t, "motor", summaries[1].Name)
	assert.Empty(t, summaries[1].Bills)
	assert.Empty(t, summaries[1].Totals)
}

func TestProperty_Bills(t *testing.T) {
	b1 := &ElectricityBill{Amount: 1}
	b2 := &ElectricityBill{Amount: 2}
	b3 := &ElectricityBill{Amount: 3}
	p := &Property{Subscriptions: []*Subscription{
		{Name: "main", ElectricityBills: []*ElectricityBill{b1, b2}},
		{Name: "motor", ElectricityBills: []*ElectricityBill{b3}},
	}}

	assert.Equal(t, []*ElectricityBill{b1, b2, b3}, p.Bills())
	assert.Same(t, p.Subscriptions[1], p.SubscriptionNamed("motor"))
	assert.Nil(t, p.SubscriptionNamed("generator"))
}

func TestValidate(t *testing.T) {
	valid := func() *Property {
		p := NewProperty("Loft", "Mar Mikhael", 500, RentDurationYearly)
		p.Subscriptions = append(p.Subscriptions, &Subscription{
			Name: "main",
			ElectricityBills: []*ElectricityBill{
				{Amount: 0, Currency: CurrencyUSD, PaymentDate: civil.Date{Year: 2024, Month: time.May, Day: 2}},
			},
		})
		p.Shareholders = append(p.Shareholders,
			&Shareholder{Name: "Nadine", ShareValue: Percentage{Value: 0}},
			&Shareholder{Name: "Hadi", ShareValue: CurrencyValue{Amount: 100, Currency: CurrencyLBP}},
		)

		return p
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(p *Property)
	}{
		{name: "empty id", mutate: func(p *Property) { p.ID = "" }},
		{name: "empty address", mutate: func(p *Property) { p.Address = "" }},
		{name: "invalid date", mutate: func(p *Property) {
			p.Subscriptions[0].ElectricityBills[0].PaymentDate = civil.Date{Year: 2024, Month: time.February, Day: 30}
		}},
		{name: "missing share value", mutate: func(p *Property) { p.Shareholders[1].ShareValue = nil }},
		{name: "negative share amount", mutate: func(p *Property) {
			p.Shareholders[1].ShareValue = CurrencyValue{Amount: -1, Currency: CurrencyUSD}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			assert.Error(t, Validate(p))
		})
	}
}
