package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receivableHandler handles HTTP requests related to receivables.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
}

func newReceivableHandler(rs portssvc.ReceivableSvcFacade) *receivableHandler {
	return &receivableHandler{receivableService: rs}
}

// RegisterReceivableRoutes registers routes related to receivables.
func RegisterReceivableRoutes(rg *gin.RouterGroup, receivableService portssvc.ReceivableSvcFacade) {
	h := newReceivableHandler(receivableService)

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.createReceivable)
		receivables.GET("", h.listReceivables)
		receivables.GET("/:receivable_id", h.getReceivable)
		receivables.PUT("/:receivable_id", h.updateReceivable)
		receivables.DELETE("/:receivable_id", h.deactivateReceivable)
		receivables.POST("/:receivable_id/receive", h.receiveReceivable)
	}
}

// createReceivable godoc
// @Summary Create a receivable
// @Description Registers an amount owed by a client
// @Tags receivables
// @Accept json
// @Produce json
// @Param receivable body dto.CreateReceivableRequest true "Receivable details"
// @Success 201 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create receivable"
// @Security BearerAuth
// @Router /receivables [post]
func (h *receivableHandler) createReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	receivable, err := h.receivableService.CreateReceivable(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create receivable")
		return
	}

	logger.Info("Receivable created successfully", slog.String("receivable_id", receivable.ReceivableID))
	c.JSON(http.StatusCreated, dto.ToReceivableResponse(receivable))
}

// listReceivables godoc
// @Summary List receivables
// @Description Lists the receivables of a company ordered by due date
// @Tags receivables
// @Produce json
// @Param companyId query string true "Company ID"
// @Param startDate query string false "First due date (YYYY-MM-DD)"
// @Param endDate query string false "Last due date (YYYY-MM-DD)"
// @Param includeInactive query bool false "Include deactivated receivables"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListReceivablesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list receivables"
// @Security BearerAuth
// @Router /receivables [get]
func (h *receivableHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListReceivables", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.receivableService.ListReceivables(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list receivables")
		return
	}

	logger.Info("Receivables listed successfully", slog.Int("count", len(resp.Receivables)))
	c.JSON(http.StatusOK, resp)
}

// getReceivable godoc
// @Summary Get a receivable
// @Tags receivables
// @Produce json
// @Param receivable_id path string true "Receivable ID"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Failure 500 {object} map[string]string "Failed to retrieve receivable"
// @Security BearerAuth
// @Router /receivables/{receivable_id} [get]
func (h *receivableHandler) getReceivable(c *gin.Context) {
	receivable, err := h.receivableService.GetReceivableByID(c.Request.Context(), c.Param("receivable_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve receivable")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

// updateReceivable godoc
// @Summary Update a receivable
// @Tags receivables
// @Accept json
// @Produce json
// @Param receivable_id path string true "Receivable ID"
// @Param receivable body dto.UpdateReceivableRequest true "Fields to update"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Failure 500 {object} map[string]string "Failed to update receivable"
// @Security BearerAuth
// @Router /receivables/{receivable_id} [put]
func (h *receivableHandler) updateReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("receivable_id")
	var req dto.UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	receivable, err := h.receivableService.UpdateReceivable(c.Request.Context(), receivableID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update receivable")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

// receiveReceivable godoc
// @Summary Settle a receivable
// @Description Marks a receivable as received on the given date
// @Tags receivables
// @Accept json
// @Produce json
// @Param receivable_id path string true "Receivable ID"
// @Param receipt body dto.ReceiveReceivableRequest true "Receipt details"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Invalid input or receivable already received"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Failure 500 {object} map[string]string "Failed to receive receivable"
// @Security BearerAuth
// @Router /receivables/{receivable_id}/receive [post]
func (h *receivableHandler) receiveReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("receivable_id")
	var req dto.ReceiveReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReceiveReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	receivable, err := h.receivableService.ReceiveReceivable(c.Request.Context(), receivableID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to receive receivable")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

// deactivateReceivable godoc
// @Summary Deactivate a receivable
// @Tags receivables
// @Param receivable_id path string true "Receivable ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Failure 409 {object} map[string]string "Receivable already inactive"
// @Failure 500 {object} map[string]string "Failed to deactivate receivable"
// @Security BearerAuth
// @Router /receivables/{receivable_id} [delete]
func (h *receivableHandler) deactivateReceivable(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	deactivateRecord(c, "receivable", func() error {
		return h.receivableService.DeactivateReceivable(c.Request.Context(), c.Param("receivable_id"), userID)
	})
}
