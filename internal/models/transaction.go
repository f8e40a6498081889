package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a transaction
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// PaymentMethod represents how a transaction was paid
type PaymentMethod string

const (
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
)

// DateLayout is the calendar-day format transactions carry. The first seven
// characters of a date form its year-month bucket key.
const DateLayout = "2006-01-02"

// Transaction is one immutable ledger entry. The log is append-only with the
// newest entry at the head, regardless of the Date field's ordering.
type Transaction struct {
	ID        string          `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	AccountID string          `json:"accountId"`
	Payment   PaymentMethod   `json:"payment"`
	Note      string          `json:"note,omitempty"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// YearMonth returns the transaction's year-month bucket key.
func (t *Transaction) YearMonth() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}
