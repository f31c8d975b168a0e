package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashFlowHandler serves the derived cash flow views.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvc
	alertService    portssvc.AlertSvc
	dreService      portssvc.DRESvc
}

// RegisterCashFlowRoutes registers the running balance, alert and DRE routes.
func RegisterCashFlowRoutes(rg *gin.RouterGroup, cf portssvc.CashFlowSvc, as portssvc.AlertSvc, ds portssvc.DRESvc) {
	h := &cashFlowHandler{
		cashFlowService: cf,
		alertService:    as,
		dreService:      ds,
	}

	cashflow := rg.Group("/cashflow")
	{
		cashflow.GET("", h.getCashFlow)
		cashflow.GET("/summary", h.getSummary)
		cashflow.GET("/kpis", h.getKPIs)
		cashflow.GET("/movements", h.getMovements)
	}
	rg.GET("/alerts", h.getAlerts)
	rg.GET("/dre", h.getDRE)
}

func bindCashFlowParams(c *gin.Context) (dto.CashFlowParams, bool) {
	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind cash flow query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// getCashFlow godoc
// @Summary Get the running balance
// @Description Returns one data point per day. With a period the window spans the lookback before today and the same span after it; days after today are flagged as projected.
// @Tags cashflow
// @Produce json
// @Param companyId query string false "Company ID"
// @Param period query string false "daily, weekly or monthly" Enums(daily, weekly, monthly)
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} domain.CashFlowSeries
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute cash flow"
// @Security BearerAuth
// @Router /cashflow [get]
func (h *cashFlowHandler) getCashFlow(c *gin.Context) {
	params, ok := bindCashFlowParams(c)
	if !ok {
		return
	}

	series, err := h.cashFlowService.GetCashFlow(c.Request.Context(), params.ToQuery())
	if err != nil {
		respondWithError(c, err, "Failed to compute cash flow")
		return
	}
	c.JSON(http.StatusOK, series)
}

// getSummary godoc
// @Summary Get the cash flow summary
// @Description Returns the confirmed and pending totals and the balances of the window
// @Tags cashflow
// @Produce json
// @Param companyId query string false "Company ID"
// @Param period query string false "daily, weekly or monthly" Enums(daily, weekly, monthly)
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} domain.CashFlowSummary
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /cashflow/summary [get]
func (h *cashFlowHandler) getSummary(c *gin.Context) {
	params, ok := bindCashFlowParams(c)
	if !ok {
		return
	}

	summary, err := h.cashFlowService.GetSummary(c.Request.Context(), params.ToQuery())
	if err != nil {
		respondWithError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getKPIs godoc
// @Summary Get the cash flow indicators
// @Tags cashflow
// @Produce json
// @Param companyId query string false "Company ID"
// @Param period query string false "daily, weekly or monthly" Enums(daily, weekly, monthly)
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} domain.CashFlowKPIs
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute indicators"
// @Security BearerAuth
// @Router /cashflow/kpis [get]
func (h *cashFlowHandler) getKPIs(c *gin.Context) {
	params, ok := bindCashFlowParams(c)
	if !ok {
		return
	}

	kpis, err := h.cashFlowService.GetKPIs(c.Request.Context(), params.ToQuery())
	if err != nil {
		respondWithError(c, err, "Failed to compute indicators")
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// getMovements godoc
// @Summary List the merged ledger
// @Description Returns payables, receivables and manual entries of the window as one ledger ordered by date
// @Tags cashflow
// @Produce json
// @Param companyId query string false "Company ID"
// @Param period query string false "daily, weekly or monthly" Enums(daily, weekly, monthly)
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.MovementsResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /cashflow/movements [get]
func (h *cashFlowHandler) getMovements(c *gin.Context) {
	params, ok := bindCashFlowParams(c)
	if !ok {
		return
	}

	movements, err := h.cashFlowService.GetMovements(c.Request.Context(), params.ToQuery())
	if err != nil {
		respondWithError(c, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, dto.MovementsResponse{Movements: movements})
}

// getAlerts godoc
// @Summary List financial alerts
// @Description Scans active records for negative balance, overdue and upcoming obligations
// @Tags alerts
// @Produce json
// @Param companyId query string false "Company ID"
// @Success 200 {object} dto.AlertsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate alerts"
// @Security BearerAuth
// @Router /alerts [get]
func (h *cashFlowHandler) getAlerts(c *gin.Context) {
	var params dto.CompanyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	alerts, err := h.alertService.GetAlerts(c.Request.Context(), params.CompanyID)
	if err != nil {
		respondWithError(c, err, "Failed to generate alerts")
		return
	}
	c.JSON(http.StatusOK, dto.AlertsResponse{Alerts: alerts, Count: len(alerts)})
}

// getDRE godoc
// @Summary Get the monthly income statement
// @Tags dre
// @Produce json
// @Param companyId query string false "Company ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} domain.DREReport
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build income statement"
// @Security BearerAuth
// @Router /dre [get]
func (h *cashFlowHandler) getDRE(c *gin.Context) {
	var params dto.DREParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind DRE query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.dreService.GetDRE(c.Request.Context(), params.CompanyID, params.Year, time.Month(params.Month))
	if err != nil {
		respondWithError(c, err, "Failed to build income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}
