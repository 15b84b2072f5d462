// Package entity contains the core business objects of the ledger,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Property is the aggregate root: a rented unit together with everything it owns.
// Subscriptions and Shareholders are owned exclusively and share its lifecycle.
type Property struct {
	ID                    string          `json:"id" validate:"required,max=64"`                       // Caller-assigned, globally unique identifier.
	Name                  string          `json:"name" validate:"required"`                            // Display name of the property.
	Address               string          `json:"address" validate:"required"`                         // Postal address.
	ElectricityCodeNumber *string         `json:"electricity_code_number,omitempty"`                   // Optional meter/contract code issued by the utility.
	RentPrice             float64         `json:"rent_price" validate:"gte=0"`                         // Rent charged per RentDuration.
	RentDuration          RentDuration    `json:"rent_duration" validate:"required,oneof=MONTHLY YEARLY"` // Billing period of the rent.
	RenterName            *string         `json:"renter_name,omitempty"`                               // Current tenant, nil when vacant.
	Subscriptions         []*Subscription `json:"subscriptions" validate:"dive"`                       // Electricity subscriptions in insertion order.
	Shareholders          []*Shareholder  `json:"shareholders" validate:"dive"`                        // Ownership split.
}

// Subscription is an electricity subscription of a property, e.g. "main" or "motor".
type Subscription struct {
	ID               int64              `json:"id"` // Store-generated; zero before the first save and regenerated on every aggregate update.
	Name             string             `json:"name" validate:"required"`
	ElectricityBills []*ElectricityBill `json:"electricity_bills" validate:"dive"`
}

// ElectricityBill is a single payment made against a subscription.
type ElectricityBill struct {
	ID          int64      `json:"id"`
	Amount      float64    `json:"amount" validate:"gte=0"`
	Currency    Currency   `json:"currency" validate:"required,oneof=USD LBP"`
	PaymentDate civil.Date `json:"payment_date" validate:"required"`
}

// Shareholder owns a share of the property's income.
type Shareholder struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name" validate:"required"`
	ShareValue ShareValue `json:"share_value"` // Never nil once validated.
}

// NewPropertyID returns a fresh identifier for a property that has not been saved yet.
func NewPropertyID() string {
	return uuid.NewString()
}

// NewProperty creates an empty property with a freshly assigned ID.
func NewProperty(name, address string, rentPrice float64, rentDuration RentDuration) *Property {
	return &Property{
		ID:            NewPropertyID(),
		Name:          name,
		Address:       address,
		RentPrice:     rentPrice,
		RentDuration:  rentDuration,
		Subscriptions: []*Subscription{},
		Shareholders:  []*Shareholder{},
	}
}

// Bills returns every bill of the property, subscription by subscription.
func (p *Property) Bills() []*ElectricityBill {
	var bills []*ElectricityBill
	for _, sub := range p.Subscriptions {
		bills = append(bills, sub.ElectricityBills...)
	}

	return bills
}

// SubscriptionNamed returns the first subscription with the given name, or nil.
func (p *Property) SubscriptionNamed(name string) *Subscription {
	for _, sub := range p.Subscriptions {
		if sub.Name == name {
			return sub
		}
	}

	return nil
}
