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

// defaultRecentLimit matches the entry page's recent-transactions list size.
const defaultRecentLimit = 8

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	ledger services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Kind     models.TransactionKind `json:"kind" binding:"required,transaction_kind"`
	Amount   decimal.Decimal        `json:"amount"`
	Category string                 `json:"category" binding:"required,max=100"`
	EntityID string                 `json:"account_id" binding:"required"`
	Payment  models.PaymentMethod   `json:"payment" binding:"required,payment_method"`
	Note     string                 `json:"note" binding:"max=500"`
	Date     string                 `json:"date"`
}

// CreateTransaction records a new transaction against an account or card.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledger.RecordTransaction(services.RecordTransactionParams{
		Kind:     req.Kind,
		Amount:   req.Amount,
		Category: req.Category,
		EntityID: req.EntityID,
		Payment:  req.Payment,
		Note:     req.Note,
		Date:     date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction":     result.Transaction,
		"balance_applied": result.BalanceApplied,
	})
}

// TransactionView is a transaction with its entity name resolved for display.
type TransactionView struct {
	models.Transaction
	EntityName string `json:"entity_name"`
}

// GetTransactions returns the transaction history, optionally filtered by
// kind and a case-insensitive category substring.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	kind := c.DefaultQuery("kind", "all")
	switch kind {
	case "all", "income", "expense":
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid kind, must be all, income, or expense"))
		return
	}

	snap := h.ledger.Snapshot()
	matches := reports.FilterTransactions(snap, kind, c.Query("category"))

	c.JSON(http.StatusOK, gin.H{
		"transactions": toViews(snap, matches),
		"currency":     snap.Settings.Currency,
	})
}

// GetRecentTransactions returns the newest entries of the log.
func (h *TransactionHandler) GetRecentTransactions(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit", defaultRecentLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap := h.ledger.Snapshot()
	recent := reports.RecentTransactions(snap, limit)

	c.JSON(http.StatusOK, gin.H{
		"transactions": toViews(snap, recent),
		"currency":     snap.Settings.Currency,
	})
}

func toViews(snap *models.Snapshot, txs []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(txs))
	for _, t := range txs {
		views = append(views, TransactionView{
			Transaction: t,
			EntityName:  reports.ResolveEntityName(snap, t.AccountID),
		})
	}
	return views
}
