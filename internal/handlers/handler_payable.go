package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payableHandler handles HTTP requests related to payables.
type payableHandler struct {
	payableService    portssvc.PayableSvcFacade
	recurrenceService portssvc.RecurrenceSvc
}

func newPayableHandler(ps portssvc.PayableSvcFacade, rs portssvc.RecurrenceSvc) *payableHandler {
	return &payableHandler{
		payableService:    ps,
		recurrenceService: rs,
	}
}

// RegisterPayableRoutes registers routes related to payables.
func RegisterPayableRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvcFacade, recurrenceService portssvc.RecurrenceSvc) {
	h := newPayableHandler(payableService, recurrenceService)

	payables := rg.Group("/payables")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.GET("/:payable_id", h.getPayable)
		payables.PUT("/:payable_id", h.updatePayable)
		payables.DELETE("/:payable_id", h.deactivatePayable)
		payables.POST("/:payable_id/pay", h.payPayable)
		payables.POST("/:payable_id/expand", h.expandRecurrence)
	}
}

// createPayable godoc
// @Summary Create a payable
// @Description Registers an amount owed to a supplier. Recurring payables with an end date are expanded into their future instances.
// @Tags payables
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {object} dto.PayableResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create payable"
// @Security BearerAuth
// @Router /payables [post]
func (h *payableHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create payable")
		return
	}

	logger.Info("Payable created successfully", slog.String("payable_id", payable.PayableID))
	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

// listPayables godoc
// @Summary List payables
// @Description Lists the payables of a company ordered by due date
// @Tags payables
// @Produce json
// @Param companyId query string true "Company ID"
// @Param startDate query string false "First due date (YYYY-MM-DD)"
// @Param endDate query string false "Last due date (YYYY-MM-DD)"
// @Param includeInactive query bool false "Include deactivated payables"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPayablesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list payables"
// @Security BearerAuth
// @Router /payables [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPayables", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.payableService.ListPayables(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list payables")
		return
	}

	logger.Info("Payables listed successfully", slog.Int("count", len(resp.Payables)))
	c.JSON(http.StatusOK, resp)
}

// getPayable godoc
// @Summary Get a payable
// @Tags payables
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payable not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payable"
// @Security BearerAuth
// @Router /payables/{payable_id} [get]
func (h *payableHandler) getPayable(c *gin.Context) {
	payable, err := h.payableService.GetPayableByID(c.Request.Context(), c.Param("payable_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve payable")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// updatePayable godoc
// @Summary Update a payable
// @Description Changes the editable fields of an active payable
// @Tags payables
// @Accept json
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Param payable body dto.UpdatePayableRequest true "Fields to update"
// @Success 200 {object} dto.PayableResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payable not found"
// @Failure 500 {object} map[string]string "Failed to update payable"
// @Security BearerAuth
// @Router /payables/{payable_id} [put]
func (h *payableHandler) updatePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payable_id")
	var req dto.UpdatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	payable, err := h.payableService.UpdatePayable(c.Request.Context(), payableID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update payable")
		return
	}

	logger.Info("Payable updated successfully", slog.String("payable_id", payableID))
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// payPayable godoc
// @Summary Settle a payable
// @Description Marks a payable as paid on the given date
// @Tags payables
// @Accept json
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Param payment body dto.PayPayableRequest true "Payment details"
// @Success 200 {object} dto.PayableResponse
// @Failure 400 {object} map[string]string "Invalid input or payable already paid"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payable not found"
// @Failure 500 {object} map[string]string "Failed to pay payable"
// @Security BearerAuth
// @Router /payables/{payable_id}/pay [post]
func (h *payableHandler) payPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payable_id")
	var req dto.PayPayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayPayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	payable, err := h.payableService.PayPayable(c.Request.Context(), payableID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to pay payable")
		return
	}

	logger.Info("Payable paid", slog.String("payable_id", payableID), slog.String("payment_date", req.PaymentDate))
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// deactivatePayable godoc
// @Summary Deactivate a payable
// @Description Soft-deletes a payable
// @Tags payables
// @Param payable_id path string true "Payable ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payable not found"
// @Failure 409 {object} map[string]string "Payable already inactive"
// @Failure 500 {object} map[string]string "Failed to deactivate payable"
// @Security BearerAuth
// @Router /payables/{payable_id} [delete]
func (h *payableHandler) deactivatePayable(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	deactivateRecord(c, "payable", func() error {
		return h.payableService.DeactivatePayable(c.Request.Context(), c.Param("payable_id"), userID)
	})
}

// expandRecurrence godoc
// @Summary Expand a recurring payable
// @Description Creates the missing future instances of a recurring payable. Repeating the call creates nothing new.
// @Tags payables
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Success 200 {object} dto.ExpandRecurrenceResponse
// @Failure 400 {object} map[string]string "Payable is not recurring"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payable not found"
// @Failure 500 {object} map[string]string "Failed to expand recurrence"
// @Security BearerAuth
// @Router /payables/{payable_id}/expand [post]
func (h *payableHandler) expandRecurrence(c *gin.Context) {
	payableID := c.Param("payable_id")
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	created, err := h.recurrenceService.ExpandPayable(c.Request.Context(), payableID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to expand recurrence")
		return
	}
	c.JSON(http.StatusOK, dto.ExpandRecurrenceResponse{PayableID: payableID, Created: created})
}
