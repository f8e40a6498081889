// Package reports derives every display value from a ledger snapshot.
// All functions are pure: they read the snapshot and never mutate it.
package reports

import (
	"sort"
	"strings"

	"expenseflow/internal/models"

	"github.com/shopspring/decimal"
)

// UnknownEntityName is rendered when a transaction references an ID that no
// longer resolves. Orphaned references are tolerated, not repaired.
const UnknownEntityName = "Unknown"

// DefaultTrendWindow is the number of trailing months shown in the trend.
const DefaultTrendWindow = 8

// NetBalance sums all account balances. Cards are excluded.
func NetBalance(s *models.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for i := range s.Accounts {
		total = total.Add(s.Accounts[i].Balance)
	}
	return total
}

// CreditUsed sums the used amount across all credit cards.
func CreditUsed(s *models.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for i := range s.CreditCards {
		total = total.Add(s.CreditCards[i].Used)
	}
	return total
}

// MonthlySpend sums expense amounts for transactions whose date falls in the
// given year-month (prefix match on the ISO date, e.g. "2024-06").
func MonthlySpend(s *models.Snapshot, yearMonth string) decimal.Decimal {
	total := decimal.Zero
	for i := range s.Transactions {
		t := &s.Transactions[i]
		if t.Kind == models.TransactionKindExpense && strings.HasPrefix(t.Date, yearMonth) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// BudgetUtilisation returns spend as a percentage of the monthly budget.
// ok is false when no budget is set (budget <= 0).
func BudgetUtilisation(spend, budget decimal.Decimal) (pct float64, ok bool) {
	if !budget.IsPositive() {
		return 0, false
	}
	return spend.Div(budget).InexactFloat64() * 100, true
}

// RecentTransactions returns the first n log entries in stored order
// (newest first by insertion).
func RecentTransactions(s *models.Snapshot, n int) []models.Transaction {
	if n < 0 {
		n = 0
	}
	if n > len(s.Transactions) {
		n = len(s.Transactions)
	}
	out := make([]models.Transaction, n)
	copy(out, s.Transactions[:n])
	return out
}

// CategoryTotal is one category's share of total expenses.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  float64         `json:"percent"`
}

// CategoryBreakdown groups expense transactions by category, sorted by total
// descending. Percent is each group's share of total expenses, zero when
// there are no expenses.
func CategoryBreakdown(s *models.Snapshot) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for i := range s.Transactions {
		t := &s.Transactions[i]
		if t.Kind != models.TransactionKindExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		grand = grand.Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		pct := 0.0
		if grand.IsPositive() {
			pct = total.Div(grand).InexactFloat64() * 100
		}
		out = append(out, CategoryTotal{Category: cat, Total: total, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CardUtilisation returns used as a percentage of the card's limit, zero when
// no limit is set. The number is not clamped at 100; display code may cap the
// bar it draws, but the figure itself reports true over-utilisation.
func CardUtilisation(card *models.CreditCard) float64 {
	if !card.Limit.IsPositive() {
		return 0
	}
	return card.Used.Div(card.Limit).InexactFloat64() * 100
}

// MonthBucket is one month's income/expense totals in the trend.
type MonthBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	// Net is income minus expense, floored at zero.
	Net decimal.Decimal `json:"net"`
	// Ratio scales Net linearly against the window's largest net (floor 1),
	// giving a 0..1 value ready for bar rendering.
	Ratio float64 `json:"ratio"`
}

// MonthlyTrend buckets all transactions by year-month and returns the last
// window buckets in ascending month order.
func MonthlyTrend(s *models.Snapshot, window int) []MonthBucket {
	if window <= 0 {
		window = DefaultTrendWindow
	}

	byMonth := make(map[string]*MonthBucket)
	for i := range s.Transactions {
		t := &s.Transactions[i]
		key := t.YearMonth()
		b, exists := byMonth[key]
		if !exists {
			b = &MonthBucket{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = b
		}
		switch t.Kind {
		case models.TransactionKindIncome:
			b.Income = b.Income.Add(t.Amount)
		case models.TransactionKindExpense:
			b.Expense = b.Expense.Add(t.Amount)
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > window {
		months = months[len(months)-window:]
	}

	out := make([]MonthBucket, 0, len(months))
	maxNet := decimal.NewFromInt(1)
	for _, m := range months {
		b := byMonth[m]
		b.Net = decimal.Max(decimal.Zero, b.Income.Sub(b.Expense))
		if b.Net.GreaterThan(maxNet) {
			maxNet = b.Net
		}
		out = append(out, *b)
	}
	for i := range out {
		out[i].Ratio = out[i].Net.Div(maxNet).InexactFloat64()
	}
	return out
}

// FilterTransactions returns log entries matching the kind filter ("all" or
// empty matches both kinds) whose category contains the given substring,
// case-insensitively. An empty substring matches everything. Stored order is
// preserved.
func FilterTransactions(s *models.Snapshot, kind, categorySubstring string) []models.Transaction {
	term := strings.ToLower(strings.TrimSpace(categorySubstring))
	out := []models.Transaction{}
	for i := range s.Transactions {
		t := &s.Transactions[i]
		if kind != "" && kind != "all" && string(t.Kind) != kind {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(t.Category), term) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// ResolveEntityName returns the display name for an account or card ID, or
// UnknownEntityName when the ID no longer resolves.
func ResolveEntityName(s *models.Snapshot, id string) string {
	if e, ok := s.FindEntity(id); ok {
		return e.DisplayName()
	}
	return UnknownEntityName
}
