package models

import "github.com/shopspring/decimal"

// Theme represents the display theme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultCurrency is used whenever the currency symbol is left empty.
const DefaultCurrency = "₹"

// Settings holds user preferences. MonthlyBudget of zero means no budget set.
type Settings struct {
	Currency      string          `json:"currency"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	Theme         Theme           `json:"theme"`
}

// DefaultSettings returns the settings a fresh snapshot starts with.
func DefaultSettings() Settings {
	return Settings{
		Currency:      DefaultCurrency,
		MonthlyBudget: decimal.Zero,
		Theme:         ThemeDark,
	}
}
