package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to its HTTP status. Unknown errors
// are logged and reported with the generic failMessage.
func respondWithError(c *gin.Context, err error, failMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(failMessage, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMessage})
	}
}

// requireUser returns the authenticated user or writes a 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// deactivateRecord runs a soft delete and answers 204. A record that is
// already inactive is reported as a conflict.
func deactivateRecord(c *gin.Context, kind string, deactivate func() error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := deactivate(); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Record already inactive", slog.String("kind", kind), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondWithError(c, err, "Failed to deactivate "+kind)
		return
	}
	logger.Info("Record deactivated", slog.String("kind", kind))
	c.Status(http.StatusNoContent)
}
