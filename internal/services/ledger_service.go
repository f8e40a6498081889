package services

import (
	"encoding/json"
	"sync"
	"time"

	apperrors "expenseflow/internal/errors"
	"expenseflow/internal/logger"
	"expenseflow/internal/models"
	"expenseflow/internal/store"
	"expenseflow/internal/uuid"

	"github.com/shopspring/decimal"
)

// ledgerService is the exclusive owner of the ledger snapshot. All access is
// synchronous read-modify-write; the mutex serializes HTTP handlers so each
// operation runs to completion before the next.
type ledgerService struct {
	mu    sync.RWMutex
	snap  *models.Snapshot
	store *store.Store
}

// NewLedgerService creates a LedgerServicer around a loaded snapshot.
func NewLedgerService(snap *models.Snapshot, st *store.Store) LedgerServicer {
	return &ledgerService{snap: snap, store: st}
}

// CreateAccount appends a new account. The initial balance may carry any sign.
func (s *ledgerService) CreateAccount(name string, initialBalance decimal.Decimal) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := models.Account{
		ID:      uuid.New(),
		Name:    name,
		Balance: initialBalance,
		Type:    models.EntityTypeAccount,
	}
	s.snap.Accounts = append(s.snap.Accounts, account)

	if err := s.store.Save(s.snap); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateCard appends a new credit card. initialUsed is taken as given — the
// zero-floor clamp applies only when transactions update it.
func (s *ledgerService) CreateCard(name string, limit, initialUsed decimal.Decimal) (*models.CreditCard, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card name is required")
	}
	if limit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card limit cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := models.CreditCard{
		ID:    uuid.New(),
		Name:  name,
		Limit: limit,
		Used:  initialUsed,
		Type:  models.EntityTypeCard,
	}
	s.snap.CreditCards = append(s.snap.CreditCards, card)

	if err := s.store.Save(s.snap); err != nil {
		return nil, err
	}
	return &card, nil
}

// RecordTransaction validates, applies the balance effect, and prepends the
// transaction to the log. A non-positive amount or an unknown entity leaves
// the ledger untouched. When the payment method does not match the entity's
// type the transaction is still recorded with no balance effect, reported via
// RecordResult.BalanceApplied.
func (s *ledgerService) RecordTransaction(params RecordTransactionParams) (*RecordResult, error) {
	if !params.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransaction, "amount must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.snap.FindEntity(params.EntityID)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransaction, "no account or card with the given ID")
	}

	date := params.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	applied := false
	switch e := entity.(type) {
	case *models.Account:
		if params.Payment == models.PaymentMethodDebit {
			if params.Kind == models.TransactionKindIncome {
				e.Balance = e.Balance.Add(params.Amount)
			} else {
				e.Balance = e.Balance.Sub(params.Amount)
			}
			applied = true
		}
	case *models.CreditCard:
		if params.Payment == models.PaymentMethodCredit {
			if params.Kind == models.TransactionKindExpense {
				e.Used = decimal.Max(decimal.Zero, e.Used.Add(params.Amount))
			} else {
				e.Used = decimal.Max(decimal.Zero, e.Used.Sub(params.Amount))
			}
			applied = true
		}
	}

	if !applied {
		logger.Get().Warnw("payment method does not match entity type; recording without balance effect",
			"entity_id", params.EntityID,
			"payment", params.Payment,
		)
	}

	tx := models.Transaction{
		ID:        uuid.New(),
		Kind:      params.Kind,
		Amount:    params.Amount,
		Category:  params.Category,
		AccountID: params.EntityID,
		Payment:   params.Payment,
		Note:      params.Note,
		Date:      date,
		CreatedAt: time.Now(),
	}
	// Newest first, independent of the Date field.
	s.snap.Transactions = append([]models.Transaction{tx}, s.snap.Transactions...)

	if err := s.store.Save(s.snap); err != nil {
		return nil, err
	}
	return &RecordResult{Transaction: &tx, BalanceApplied: applied}, nil
}

// UpdateSettings replaces currency and monthly budget. An empty currency
// falls back to the default symbol; a negative budget is stored as given.
func (s *ledgerService) UpdateSettings(currency string, monthlyBudget decimal.Decimal) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if currency == "" {
		currency = models.DefaultCurrency
	}
	s.snap.Settings.Currency = currency
	s.snap.Settings.MonthlyBudget = monthlyBudget

	if err := s.store.Save(s.snap); err != nil {
		return nil, err
	}
	settings := s.snap.Settings
	return &settings, nil
}

// UpdateTheme persists the display theme preference.
func (s *ledgerService) UpdateTheme(theme models.Theme) (*models.Settings, error) {
	if theme != models.ThemeDark && theme != models.ThemeLight {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "theme must be dark or light")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Settings.Theme = theme

	if err := s.store.Save(s.snap); err != nil {
		return nil, err
	}
	settings := s.snap.Settings
	return &settings, nil
}

// Snapshot returns a deep copy of the current ledger state for aggregation.
func (s *ledgerService) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Export serializes the whole snapshot, pretty-printed, with the backup
// filename for today.
func (s *ledgerService) Export() ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	filename := "expenseflow-backup-" + time.Now().Format(models.DateLayout) + ".json"
	return data, filename, nil
}
