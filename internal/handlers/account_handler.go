package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expenseflow/internal/errors"
	"expenseflow/internal/models"
	"expenseflow/internal/reports"
	"expenseflow/internal/services"
)

// AccountHandler handles account and credit card requests.
type AccountHandler struct {
	ledger services.LedgerServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger services.LedgerServicer) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name    string          `json:"name" binding:"required,max=100"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccount handles the creation of a new account
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.ledger.CreateAccount(req.Name, req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts returns all accounts with the net balance across them.
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	snap := h.ledger.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"accounts":    snap.Accounts,
		"net_balance": reports.NetBalance(snap),
		"currency":    snap.Settings.Currency,
	})
}

// CreateCardRequest represents the request payload for creating a credit card
type CreateCardRequest struct {
	Name  string          `json:"name" binding:"required,max=100"`
	Limit decimal.Decimal `json:"limit"`
	Used  decimal.Decimal `json:"used"`
}

// CreateCard handles the creation of a new credit card
func (h *AccountHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.ledger.CreateCard(req.Name, req.Limit, req.Used)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// CardView is a credit card with its derived utilisation percentage.
type CardView struct {
	models.CreditCard
	Utilisation float64 `json:"utilisation"`
}

// GetCards returns all credit cards with utilisation and the total used.
func (h *AccountHandler) GetCards(c *gin.Context) {
	snap := h.ledger.Snapshot()

	cards := make([]CardView, 0, len(snap.CreditCards))
	for i := range snap.CreditCards {
		cards = append(cards, CardView{
			CreditCard:  snap.CreditCards[i],
			Utilisation: reports.CardUtilisation(&snap.CreditCards[i]),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"cards":       cards,
		"credit_used": reports.CreditUsed(snap),
		"currency":    snap.Settings.Currency,
	})
}
