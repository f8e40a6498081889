package handlers

import (
	"net/http"
	"testing"

	"expenseflow/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	r.POST("/accounts", handler.CreateAccount)
	r.GET("/accounts", handler.GetAccounts)
	r.POST("/cards", handler.CreateCard)
	r.GET("/cards", handler.GetCards)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Main","balance":"5000"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		account := result["account"].(map[string]interface{})
		if account["name"] != "Main" {
			t.Errorf("expected Main, got %v", account["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/accounts", `{"balance":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetAccounts(t *testing.T) {
	svc := &mockLedgerService{
		snapshotFn: func() *models.Snapshot {
			snap := models.DefaultSnapshot()
			snap.Accounts = append(snap.Accounts,
				models.Account{ID: "a1", Name: "One", Balance: decimal.NewFromInt(100), Type: models.EntityTypeAccount},
				models.Account{ID: "a2", Name: "Two", Balance: decimal.NewFromInt(250), Type: models.EntityTypeAccount},
			)
			return snap
		},
	}
	r := setupAccountRouter(NewAccountHandler(svc))

	rec := doRequest(r, "GET", "/accounts", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["net_balance"] != "350" {
		t.Errorf("expected net balance 350, got %v", result["net_balance"])
	}
	accounts := result["accounts"].([]interface{})
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(accounts))
	}
}

func TestAccountHandler_CreateCard(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/cards", `{"name":"Visa","limit":"10000"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		card := result["card"].(map[string]interface{})
		if card["name"] != "Visa" {
			t.Errorf("expected Visa, got %v", card["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/cards", `{"limit":"100"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetCards(t *testing.T) {
	svc := &mockLedgerService{
		snapshotFn: func() *models.Snapshot {
			snap := models.DefaultSnapshot()
			snap.CreditCards = append(snap.CreditCards, models.CreditCard{
				ID: "c1", Name: "Visa",
				Limit: decimal.NewFromInt(10000),
				Used:  decimal.NewFromInt(3000),
				Type:  models.EntityTypeCard,
			})
			return snap
		},
	}
	r := setupAccountRouter(NewAccountHandler(svc))

	rec := doRequest(r, "GET", "/cards", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	cards := result["cards"].([]interface{})
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	card := cards[0].(map[string]interface{})
	if card["utilisation"] != 30.0 {
		t.Errorf("expected 30%% utilisation, got %v", card["utilisation"])
	}
	if result["credit_used"] != "3000" {
		t.Errorf("expected credit used 3000, got %v", result["credit_used"])
	}
}
