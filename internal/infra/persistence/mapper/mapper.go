// Package mapper converts between domain entities and their storage records.
// Every function is pure: no I/O, no shared state.
package mapper

import (
	"strconv"

	"rentledger/internal/domain/entity"
	domainerrors "rentledger/internal/domain/errors"
	"rentledger/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// ErrMissingShareValue is returned when encoding a shareholder without a share value.
var ErrMissingShareValue = errors.New("shareholder has no share value")

// --- Property ---

func FromPropertyDomain(p *entity.Property) *model.PropertyModel {
	return &model.PropertyModel{
		ID:                    p.ID,
		Name:                  p.Name,
		Address:               p.Address,
		ElectricityCodeNumber: p.ElectricityCodeNumber,
		RentPrice:             p.RentPrice,
		RentDuration:          p.RentDuration.String(),
		RenterName:            p.RenterName,
	}
}

// ToPropertyDomain rebuilds a property from its row and its already assembled children.
func ToPropertyDomain(m *model.PropertyModel, subscriptions []*entity.Subscription, shareholders []*entity.Shareholder) (*entity.Property, error) {
	duration, err := entity.ParseRentDuration(m.RentDuration)
	if err != nil {
		return nil, domainerrors.NewDecodeError(model.TableProperties, "rent_duration", m.RentDuration, err.Error())
	}

	return &entity.Property{
		ID:                    m.ID,
		Name:                  m.Name,
		Address:               m.Address,
		ElectricityCodeNumber: m.ElectricityCodeNumber,
		RentPrice:             m.RentPrice,
		RentDuration:          duration,
		RenterName:            m.RenterName,
		Subscriptions:         subscriptions,
		Shareholders:          shareholders,
	}, nil
}

// --- Subscription ---

func FromSubscriptionDomain(s *entity.Subscription, propertyID string) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:         s.ID,
		Name:       s.Name,
		PropertyID: propertyID,
	}
}

func ToSubscriptionDomain(m *model.SubscriptionModel, bills []*entity.ElectricityBill) *entity.Subscription {
	return &entity.Subscription{
		ID:               m.ID,
		Name:             m.Name,
		ElectricityBills: bills,
	}
}

// --- ElectricityBill ---

func FromBillDomain(b *entity.ElectricityBill, subscriptionID int64) *model.ElectricityBillModel {
	return &model.ElectricityBillModel{
		ID:             b.ID,
		Amount:         b.Amount,
		Currency:       b.Currency.String(),
		PaymentDate:    b.PaymentDate.String(),
		SubscriptionID: subscriptionID,
	}
}

func ToBillDomain(m *model.ElectricityBillModel) (*entity.ElectricityBill, error) {
	currency, err := entity.ParseCurrency(m.Currency)
	if err != nil {
		return nil, domainerrors.NewDecodeError(model.TableElectricityBills, "currency", m.Currency, err.Error())
	}

	date, err := civil.ParseDate(m.PaymentDate)
	if err != nil {
		return nil, domainerrors.NewDecodeError(model.TableElectricityBills, "payment_date", m.PaymentDate, err.Error())
	}

	return &entity.ElectricityBill{
		ID:          m.ID,
		Amount:      m.Amount,
		Currency:    currency,
		PaymentDate: date,
	}, nil
}

// --- Shareholder ---

// FromShareholderDomain flattens the share value into a discriminator plus payload columns.
func FromShareholderDomain(sh *entity.Shareholder, propertyID string) (*model.ShareholderModel, error) {
	m := &model.ShareholderModel{
		ID:         sh.ID,
		Name:       sh.Name,
		PropertyID: propertyID,
	}

	switch v := sh.ShareValue.(type) {
	case entity.Percentage:
		m.ShareValueType = model.ShareValueTypePercentage
		m.ShareValue = v.Value
	case entity.CurrencyValue:
		currency := v.Currency.String()
		m.ShareValueType = model.ShareValueTypeCurrency
		m.ShareValue = v.Amount
		m.Currency = &currency
	default:
		return nil, errors.Wrapf(ErrMissingShareValue, "shareholder %q", sh.Name)
	}

	return m, nil
}

func ToShareholderDomain(m *model.ShareholderModel) (*entity.Shareholder, error) {
	var value entity.ShareValue

	switch m.ShareValueType {
	case model.ShareValueTypePercentage:
		value = entity.Percentage{Value: m.ShareValue}
	case model.ShareValueTypeCurrency:
		if m.Currency == nil {
			return nil, domainerrors.NewDecodeError(model.TableShareholders, "currency", "NULL",
				"currency share of shareholder "+strconv.FormatInt(m.ID, 10)+" has no currency")
		}
		currency, err := entity.ParseCurrency(*m.Currency)
		if err != nil {
			return nil, domainerrors.NewDecodeError(model.TableShareholders, "currency", *m.Currency, err.Error())
		}
		value = entity.CurrencyValue{Amount: m.ShareValue, Currency: currency}
	default:
		return nil, domainerrors.NewDecodeError(model.TableShareholders, "share_value_type", m.ShareValueType, "unknown discriminator")
	}

	return &entity.Shareholder{
		ID:         m.ID,
		Name:       m.Name,
		ShareValue: value,
	}, nil
}
