package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expenseflow/internal/services"
)

// ExportHandler serves snapshot backups.
type ExportHandler struct {
	ledger services.LedgerServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(ledger services.LedgerServicer) *ExportHandler {
	return &ExportHandler{ledger: ledger}
}

// Export emits the entire current snapshot as a downloadable JSON file.
func (h *ExportHandler) Export(c *gin.Context) {
	data, filename, err := h.ledger.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}
