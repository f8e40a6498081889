package services

import (
	"expenseflow/internal/models"

	"github.com/shopspring/decimal"
)

// RecordTransactionParams carries user-submitted transaction fields.
type RecordTransactionParams struct {
	Kind     models.TransactionKind
	Amount   decimal.Decimal
	Category string
	EntityID string
	Payment  models.PaymentMethod
	Note     string
	Date     string
}

// RecordResult reports what a recorded transaction actually did.
// BalanceApplied is false when the payment method did not match the entity's
// type: the transaction is appended to the log but no balance field moves.
type RecordResult struct {
	Transaction    *models.Transaction
	BalanceApplied bool
}

// LedgerServicer owns the live ledger snapshot. Every mutation persists the
// snapshot write-through before returning.
type LedgerServicer interface {
	CreateAccount(name string, initialBalance decimal.Decimal) (*models.Account, error)
	CreateCard(name string, limit, initialUsed decimal.Decimal) (*models.CreditCard, error)
	RecordTransaction(params RecordTransactionParams) (*RecordResult, error)
	UpdateSettings(currency string, monthlyBudget decimal.Decimal) (*models.Settings, error)
	UpdateTheme(theme models.Theme) (*models.Settings, error)
	Snapshot() *models.Snapshot
	Export() (data []byte, filename string, err error)
}
