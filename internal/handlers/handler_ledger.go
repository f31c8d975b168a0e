package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves manual entries, balance adjustments and categories.
type ledgerHandler struct {
	manualEntryService       portssvc.ManualEntrySvc
	balanceAdjustmentService portssvc.BalanceAdjustmentSvc
	categoryService          portssvc.CategorySvc
}

// RegisterLedgerRoutes registers the manual entry, balance adjustment and category routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, me portssvc.ManualEntrySvc, ba portssvc.BalanceAdjustmentSvc, cs portssvc.CategorySvc) {
	h := &ledgerHandler{
		manualEntryService:       me,
		balanceAdjustmentService: ba,
		categoryService:          cs,
	}

	entries := rg.Group("/manual-entries")
	{
		entries.POST("", h.createManualEntry)
		entries.GET("", h.listManualEntries)
	}

	adjustments := rg.Group("/balance-adjustments")
	{
		adjustments.POST("", h.createBalanceAdjustment)
		adjustments.GET("", h.listBalanceAdjustments)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}
}

// createManualEntry godoc
// @Summary Record a manual entry
// @Description Records a cash movement that is not tied to a payable or receivable. Entries cannot be edited.
// @Tags manual-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateManualEntryRequest true "Entry details"
// @Success 201 {object} domain.ManualEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create manual entry"
// @Security BearerAuth
// @Router /manual-entries [post]
func (h *ledgerHandler) createManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateManualEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	entry, err := h.manualEntryService.CreateManualEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create manual entry")
		return
	}

	logger.Info("Manual entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, entry)
}

// listManualEntries godoc
// @Summary List manual entries
// @Tags manual-entries
// @Produce json
// @Param companyId query string true "Company ID"
// @Param startDate query string false "First entry date (YYYY-MM-DD)"
// @Param endDate query string false "Last entry date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListManualEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list manual entries"
// @Security BearerAuth
// @Router /manual-entries [get]
func (h *ledgerHandler) listManualEntries(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query params for ListManualEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.manualEntryService.ListManualEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list manual entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createBalanceAdjustment godoc
// @Summary Record a balance adjustment
// @Description Records an opening (initial) or closing (final) balance figure
// @Tags balance-adjustments
// @Accept json
// @Produce json
// @Param adjustment body dto.CreateBalanceAdjustmentRequest true "Adjustment details"
// @Success 201 {object} domain.BalanceAdjustment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create balance adjustment"
// @Security BearerAuth
// @Router /balance-adjustments [post]
func (h *ledgerHandler) createBalanceAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBalanceAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBalanceAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	adjustment, err := h.balanceAdjustmentService.CreateBalanceAdjustment(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create balance adjustment")
		return
	}

	logger.Info("Balance adjustment created", slog.String("adjustment_id", adjustment.AdjustmentID), slog.String("type", string(adjustment.Type)))
	c.JSON(http.StatusCreated, adjustment)
}

// listBalanceAdjustments godoc
// @Summary List balance adjustments
// @Tags balance-adjustments
// @Produce json
// @Param companyId query string true "Company ID"
// @Param startDate query string false "First date (YYYY-MM-DD)"
// @Param endDate query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} domain.BalanceAdjustment
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list balance adjustments"
// @Security BearerAuth
// @Router /balance-adjustments [get]
func (h *ledgerHandler) listBalanceAdjustments(c *gin.Context) {
	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	adjustments, err := h.balanceAdjustmentService.ListBalanceAdjustments(c.Request.Context(), params.CompanyID, params.StartDate, params.EndDate)
	if err != nil {
		respondWithError(c, err, "Failed to list balance adjustments")
		return
	}
	c.JSON(http.StatusOK, adjustments)
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category, optionally tagged with the income statement line it feeds
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Category name already used"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Security BearerAuth
// @Router /categories [post]
func (h *ledgerHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param companyId query string false "Company ID"
// @Success 200 {array} domain.Category
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *ledgerHandler) listCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), c.Query("companyId"))
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
