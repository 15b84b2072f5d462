package mapper

import (
	"testing"
	"time"

	"rentledger/internal/domain/entity"
	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleProperty() *entity.Property {
	return &entity.Property{
		ID:                    "prop-1",
		Name:                  "Sea View",
		Address:               "Corniche, Beirut",
		ElectricityCodeNumber: strPtr("EDL-42"),
		RentPrice:             650.5,
		RentDuration:          entity.RentDurationMonthly,
		RenterName:            nil,
		Subscriptions: []*entity.Subscription{
			{ID: 1, Name: "main", ElectricityBills: []*entity.ElectricityBill{
				{ID: 10, Amount: 40, Currency: entity.CurrencyUSD, PaymentDate: civil.Date{Year: 2023, Month: time.February, Day: 28}},
				{ID: 11, Amount: 1500000, Currency: entity.CurrencyLBP, PaymentDate: civil.Date{Year: 2023, Month: time.January, Day: 3}},
			}},
			{ID: 2, Name: "motor", ElectricityBills: []*entity.ElectricityBill{}},
		},
		Shareholders: []*entity.Shareholder{
			{ID: 5, Name: "Rami", ShareValue: entity.Percentage{Value: 60}},
			{ID: 6, Name: "Lina", ShareValue: entity.CurrencyValue{Amount: 120, Currency: entity.CurrencyUSD}},
		},
	}
}

func TestProperty_RoundTrip(t *testing.T) {
	p := sampleProperty()

	record := FromPropertyDomain(p)

	// Children travel through their own records, exactly as the repository does it.
	subscriptions := make([]*entity.Subscription, 0, len(p.Subscriptions))
	for _, sub := range p.Subscriptions {
		subRecord := FromSubscriptionDomain(sub, record.ID)
		assert.Equal(t, record.ID, subRecord.PropertyID)

		bills := make([]*entity.ElectricityBill, 0, len(sub.ElectricityBills))
		for _, bill := range sub.ElectricityBills {
			decoded, err := ToBillDomain(FromBillDomain(bill, subRecord.ID))
			require.NoError(t, err)
			bills = append(bills, decoded)
		}
		subscriptions = append(subscriptions, ToSubscriptionDomain(subRecord, bills))
	}

	shareholders := make([]*entity.Shareholder, 0, len(p.Shareholders))
	for _, sh := range p.Shareholders {
		shRecord, err := FromShareholderDomain(sh, record.ID)
		require.NoError(t, err)
		decoded, err := ToShareholderDomain(shRecord)
		require.NoError(t, err)
		shareholders = append(shareholders, decoded)
	}

	got, err := ToPropertyDomain(record, subscriptions, shareholders)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPropertyRecord_Encoding(t *testing.T) {
	record := FromPropertyDomain(sampleProperty())

	assert.Equal(t, "MONTHLY", record.RentDuration)
	assert.Equal(t, "EDL-42", *record.ElectricityCodeNumber)
	assert.Nil(t, record.RenterName)
}

func TestBillRecord_Encoding(t *testing.T) {
	bill := &entity.ElectricityBill{Amount: 12.75, Currency: entity.CurrencyLBP, PaymentDate: civil.Date{Year: 2024, Month: time.March, Day: 7}}

	record := FromBillDomain(bill, 9)

	assert.Equal(t, "2024-03-07", record.PaymentDate)
	assert.Equal(t, "LBP", record.Currency)
	assert.Equal(t, int64(9), record.SubscriptionID)
}

func TestShareValue_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value entity.ShareValue
	}{
		{name: "percentage", value: entity.Percentage{Value: 33.3}},
		{name: "usd", value: entity.CurrencyValue{Amount: 250, Currency: entity.CurrencyUSD}},
		{name: "lbp", value: entity.CurrencyValue{Amount: 9000000, Currency: entity.CurrencyLBP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := FromShareholderDomain(&entity.Shareholder{Name: "x", ShareValue: tt.value}, "p")
			require.NoError(t, err)

			decoded, err := ToShareholderDomain(record)
			require.NoError(t, err)
			assert.Equal(t, tt.value, decoded.ShareValue)
		})
	}
}

func TestShareholderRecord_Discriminator(t *testing.T) {
	percent, err := FromShareholderDomain(&entity.Shareholder{Name: "a", ShareValue: entity.Percentage{Value: 50}}, "p")
	require.NoError(t, err)
	assert.Equal(t, model.ShareValueTypePercentage, percent.ShareValueType)
	assert.Nil(t, percent.Currency)

	fixed, err := FromShareholderDomain(&entity.Shareholder{Name: "b", ShareValue: entity.CurrencyValue{Amount: 5, Currency: entity.CurrencyUSD}}, "p")
	require.NoError(t, err)
	assert.Equal(t, model.ShareValueTypeCurrency, fixed.ShareValueType)
	require.NotNil(t, fixed.Currency)
	assert.Equal(t, "USD", *fixed.Currency)
}

func TestFromShareholderDomain_MissingValue(t *testing.T) {
	_, err := FromShareholderDomain(&entity.Shareholder{Name: "nobody"}, "p")

	assert.ErrorIs(t, err, ErrMissingShareValue)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		decode func() error
		column string
	}{
		{
			name: "currency share without currency",
			decode: func() error {
				_, err := ToShareholderDomain(&model.ShareholderModel{ShareValueType: model.ShareValueTypeCurrency, ShareValue: 10})
				return err
			},
			column: "currency",
		},
		{
			name: "unknown discriminator",
			decode: func() error {
				_, err := ToShareholderDomain(&model.ShareholderModel{ShareValueType: "fraction", ShareValue: 0.5})
				return err
			},
			column: "share_value_type",
		},
		{
			name: "unknown share currency",
			decode: func() error {
				_, err := ToShareholderDomain(&model.ShareholderModel{ShareValueType: model.ShareValueTypeCurrency, Currency: strPtr("EUR")})
				return err
			},
			column: "currency",
		},
		{
			name: "bad payment date",
			decode: func() error {
				_, err := ToBillDomain(&model.ElectricityBillModel{Currency: "USD", PaymentDate: "2023-13-01"})
				return err
			},
			column: "payment_date",
		},
		{
			name: "unknown bill currency",
			decode: func() error {
				_, err := ToBillDomain(&model.ElectricityBillModel{Currency: "usd", PaymentDate: "2023-01-01"})
				return err
			},
			column: "currency",
		},
		{
			name: "unknown rent duration",
			decode: func() error {
				_, err := ToPropertyDomain(&model.PropertyModel{RentDuration: "DAILY"}, nil, nil)
				return err
			},
			column: "rent_duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()

			var decodeErr *domainerrors.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.column, decodeErr.Column)
		})
	}
}
