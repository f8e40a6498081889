package models

import "github.com/shopspring/decimal"

// EntityType tags the two kinds of balance-holding entities.
type EntityType string

const (
	EntityTypeAccount EntityType = "account"
	EntityTypeCard    EntityType = "card"
)

// Account represents a bank-style account. Its balance carries a sign and is
// only ever changed by debit transactions against its ID.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    EntityType      `json:"type"`
}

// EntityID implements Entity.
func (a *Account) EntityID() string { return a.ID }

// DisplayName implements Entity.
func (a *Account) DisplayName() string { return a.Name }
