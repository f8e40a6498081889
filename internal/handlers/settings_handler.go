package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expenseflow/internal/errors"
	"expenseflow/internal/models"
	"expenseflow/internal/services"
)

// SettingsHandler handles user preference requests.
type SettingsHandler struct {
	ledger services.LedgerServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(ledger services.LedgerServicer) *SettingsHandler {
	return &SettingsHandler{ledger: ledger}
}

// GetSettings returns the current preferences.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	snap := h.ledger.Snapshot()
	c.JSON(http.StatusOK, gin.H{"settings": snap.Settings})
}

// UpdateSettingsRequest represents the request payload for updating preferences
type UpdateSettingsRequest struct {
	Currency      string          `json:"currency" binding:"max=8"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// UpdateSettings replaces the currency symbol and monthly budget.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.ledger.UpdateSettings(req.Currency, req.MonthlyBudget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateThemeRequest represents the request payload for switching themes
type UpdateThemeRequest struct {
	Theme models.Theme `json:"theme" binding:"required,theme"`
}

// UpdateTheme persists the display theme preference.
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.ledger.UpdateTheme(req.Theme)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
