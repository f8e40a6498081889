package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"expenseflow/internal/models"
	"expenseflow/internal/services"
	"expenseflow/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Exit(m.Run())
}

// doRequest performs an HTTP request against the router and records the response.
func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// parseJSON decodes a recorded JSON response body.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body %q: %v", rec.Body.String(), err)
	}
	return result
}

// --- mock ledger service ---

type mockLedgerService struct {
	createAccountFn     func(name string, initialBalance decimal.Decimal) (*models.Account, error)
	createCardFn        func(name string, limit, initialUsed decimal.Decimal) (*models.CreditCard, error)
	recordTransactionFn func(params services.RecordTransactionParams) (*services.RecordResult, error)
	updateSettingsFn    func(currency string, monthlyBudget decimal.Decimal) (*models.Settings, error)
	updateThemeFn       func(theme models.Theme) (*models.Settings, error)
	snapshotFn          func() *models.Snapshot
	exportFn            func() ([]byte, string, error)
}

func (m *mockLedgerService) CreateAccount(name string, initialBalance decimal.Decimal) (*models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(name, initialBalance)
	}
	return &models.Account{ID: "acc-1", Name: name, Balance: initialBalance, Type: models.EntityTypeAccount}, nil
}

func (m *mockLedgerService) CreateCard(name string, limit, initialUsed decimal.Decimal) (*models.CreditCard, error) {
	if m.createCardFn != nil {
		return m.createCardFn(name, limit, initialUsed)
	}
	return &models.CreditCard{ID: "card-1", Name: name, Limit: limit, Used: initialUsed, Type: models.EntityTypeCard}, nil
}

func (m *mockLedgerService) RecordTransaction(params services.RecordTransactionParams) (*services.RecordResult, error) {
	if m.recordTransactionFn != nil {
		return m.recordTransactionFn(params)
	}
	return &services.RecordResult{
		Transaction: &models.Transaction{
			ID:        "tx-1",
			Kind:      params.Kind,
			Amount:    params.Amount,
			Category:  params.Category,
			AccountID: params.EntityID,
			Payment:   params.Payment,
			Date:      params.Date,
		},
		BalanceApplied: true,
	}, nil
}

func (m *mockLedgerService) UpdateSettings(currency string, monthlyBudget decimal.Decimal) (*models.Settings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(currency, monthlyBudget)
	}
	return &models.Settings{Currency: currency, MonthlyBudget: monthlyBudget, Theme: models.ThemeDark}, nil
}

func (m *mockLedgerService) UpdateTheme(theme models.Theme) (*models.Settings, error) {
	if m.updateThemeFn != nil {
		return m.updateThemeFn(theme)
	}
	return &models.Settings{Currency: models.DefaultCurrency, Theme: theme}, nil
}

func (m *mockLedgerService) Snapshot() *models.Snapshot {
	if m.snapshotFn != nil {
		return m.snapshotFn()
	}
	return models.DefaultSnapshot()
}

func (m *mockLedgerService) Export() ([]byte, string, error) {
	if m.exportFn != nil {
		return m.exportFn()
	}
	return []byte("{}"), "expenseflow-backup-2024-06-01.json", nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)
