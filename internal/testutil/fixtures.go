package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"expenseflow/internal/models"

	"github.com/shopspring/decimal"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, panicking on bad input. Test-only shorthand.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewAccount builds an account with a unique ID.
func NewAccount(name string, balance string) models.Account {
	return models.Account{
		ID:      fmt.Sprintf("acc-%d", nextID()),
		Name:    name,
		Balance: Dec(balance),
		Type:    models.EntityTypeAccount,
	}
}

// NewCard builds a credit card with a unique ID.
func NewCard(name string, limit, used string) models.CreditCard {
	return models.CreditCard{
		ID:    fmt.Sprintf("card-%d", nextID()),
		Name:  name,
		Limit: Dec(limit),
		Used:  Dec(used),
		Type:  models.EntityTypeCard,
	}
}

// NewExpense builds an expense transaction dated on the given ISO day.
func NewExpense(accountID, category, amount, date string) models.Transaction {
	return newTransaction(models.TransactionKindExpense, accountID, category, amount, date)
}

// NewIncome builds an income transaction dated on the given ISO day.
func NewIncome(accountID, category, amount, date string) models.Transaction {
	return newTransaction(models.TransactionKindIncome, accountID, category, amount, date)
}

func newTransaction(kind models.TransactionKind, accountID, category, amount, date string) models.Transaction {
	return models.Transaction{
		ID:        fmt.Sprintf("tx-%d", nextID()),
		Kind:      kind,
		Amount:    Dec(amount),
		Category:  category,
		AccountID: accountID,
		Payment:   models.PaymentMethodDebit,
		Date:      date,
		CreatedAt: time.Now(),
	}
}
