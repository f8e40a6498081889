package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expenseflow/internal/reports"
	"expenseflow/internal/services"
)

// InsightsHandler serves the derived aggregate views.
type InsightsHandler struct {
	ledger services.LedgerServicer
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(ledger services.LedgerServicer) *InsightsHandler {
	return &InsightsHandler{ledger: ledger}
}

// GetSummary returns the headline figures: net balance, credit used, spend
// for the requested month (default: current), and budget utilisation.
func (h *InsightsHandler) GetSummary(c *gin.Context) {
	month, err := parseYearMonth(c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap := h.ledger.Snapshot()
	spend := reports.MonthlySpend(snap, month)

	resp := gin.H{
		"month":         month,
		"net_balance":   reports.NetBalance(snap),
		"credit_used":   reports.CreditUsed(snap),
		"monthly_spend": spend,
		"currency":      snap.Settings.Currency,
	}

	if pct, ok := reports.BudgetUtilisation(spend, snap.Settings.MonthlyBudget); ok {
		resp["budget_utilisation"] = pct
		resp["monthly_budget"] = snap.Settings.MonthlyBudget
	}

	c.JSON(http.StatusOK, resp)
}

// GetCategoryBreakdown returns expense totals grouped by category.
func (h *InsightsHandler) GetCategoryBreakdown(c *gin.Context) {
	snap := h.ledger.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"categories": reports.CategoryBreakdown(snap),
		"currency":   snap.Settings.Currency,
	})
}

// GetMonthlyTrend returns per-month income/expense buckets for the trailing
// window.
func (h *InsightsHandler) GetMonthlyTrend(c *gin.Context) {
	window, err := parseIntQuery(c, "window", reports.DefaultTrendWindow)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap := h.ledger.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"trend":    reports.MonthlyTrend(snap, window),
		"currency": snap.Settings.Currency,
	})
}
