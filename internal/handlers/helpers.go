package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expenseflow/internal/errors"
	"expenseflow/internal/logger"
	"expenseflow/internal/models"
)

// yearMonthLayout is the month-bucket key format ("2024-06").
const yearMonthLayout = "2006-01"

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// parseDate validates an optional ISO calendar day. Empty is allowed; the
// service fills in today.
func parseDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date, use YYYY-MM-DD")
	}
	return value, nil
}

// parseYearMonth validates an optional year-month query value, defaulting to
// the current month.
func parseYearMonth(value string) (string, error) {
	if value == "" {
		return time.Now().Format(yearMonthLayout), nil
	}
	if _, err := time.Parse(yearMonthLayout, value); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM")
	}
	return value, nil
}

// parseIntQuery parses an optional positive integer query parameter.
func parseIntQuery(c *gin.Context, name string, fallback int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+name)
	}
	return n, nil
}
