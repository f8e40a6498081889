package models

import "github.com/shopspring/decimal"

// CreditCard represents a credit card with a spending limit. Used is the
// amount currently owed; credit transactions move it, clamped at a zero
// floor. Creation takes Used as given — the clamp applies only when a
// transaction updates it.
type CreditCard struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Limit decimal.Decimal `json:"limit"`
	Used  decimal.Decimal `json:"used"`
	Type  EntityType      `json:"type"`
}

// EntityID implements Entity.
func (c *CreditCard) EntityID() string { return c.ID }

// DisplayName implements Entity.
func (c *CreditCard) DisplayName() string { return c.Name }
