package domain

import (
	"github.com/shopspring/decimal"
)

// MovementSource identifies which record kind a DailyMovement was projected from.
type MovementSource string

const (
	SourceBalanceAdjustment MovementSource = "balance_adjustment"
	SourceReceivable        MovementSource = "receivable"
	SourcePayable           MovementSource = "payable"
	SourceManualEntry       MovementSource = "manual_entry"
)

// DailyMovement is one row of the unified ledger. Amount is always positive;
// Type carries the direction.
type DailyMovement struct {
	MovementID     string           `json:"movementID"`
	Source         MovementSource   `json:"source"`
	SourceID       string           `json:"sourceID"`
	CompanyID      string           `json:"companyID"`
	Date           string           `json:"date"`
	CompetenceDate *string          `json:"competenceDate,omitempty"`
	Type           MovementType     `json:"type"`
	Kind           MovementKind     `json:"kind"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Subcategory    *string          `json:"subcategory,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	GrossAmount    *decimal.Decimal `json:"grossAmount,omitempty"`
	Fees           *decimal.Decimal `json:"fees,omitempty"`
	PaymentMethod  string           `json:"paymentMethod"`
	Account        string           `json:"account"`
	Status         MovementStatus   `json:"status"`
	DocumentRef    *string          `json:"documentRef,omitempty"`
	CostCenter     *string          `json:"costCenter,omitempty"`
	Recurrence     *string          `json:"recurrence,omitempty"`
	DueDate        *string          `json:"dueDate,omitempty"`
	ActualDate     *string          `json:"actualDate,omitempty"`
}

// Signed returns the amount with income positive and expense negative.
func (m DailyMovement) Signed() decimal.Decimal {
	if m.Type == MovementExpense {
		return m.Amount.Neg()
	}
	return m.Amount
}

// CashFlowDataPoint aggregates one calendar day of the running balance.
type CashFlowDataPoint struct {
	Date           string          `json:"date"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Balance        decimal.Decimal `json:"balance"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
	Projected      bool            `json:"projected"`
}

// CashFlowSeries is the running balance over a window.
type CashFlowSeries struct {
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Points    []CashFlowDataPoint `json:"points"`
}

// CashFlowPeriod is a named lookback window ending today.
type CashFlowPeriod string

const (
	PeriodDaily   CashFlowPeriod = "daily"
	PeriodWeekly  CashFlowPeriod = "weekly"
	PeriodMonthly CashFlowPeriod = "monthly"
)

// LookbackDays returns the window length in days before today.
func (p CashFlowPeriod) LookbackDays() (int, bool) {
	switch p {
	case PeriodDaily:
		return 0, true
	case PeriodWeekly:
		return 28, true
	case PeriodMonthly:
		return 90, true
	}
	return 0, false
}

// CashFlowQuery selects the window of a cash flow computation. An explicit
// StartDate/EndDate range takes precedence over Period.
type CashFlowQuery struct {
	CompanyID string
	StartDate string
	EndDate   string
	Period    CashFlowPeriod
}

// IsExplicitRange reports whether the caller chose the dates.
func (q CashFlowQuery) IsExplicitRange() bool {
	return q.StartDate != "" || q.EndDate != ""
}

// CashFlowSummary holds the period totals.
type CashFlowSummary struct {
	StartDate             string          `json:"startDate"`
	EndDate               string          `json:"endDate"`
	TotalIncomeConfirmed  decimal.Decimal `json:"totalIncomeConfirmed"`
	TotalExpenseConfirmed decimal.Decimal `json:"totalExpenseConfirmed"`
	TotalIncomePending    decimal.Decimal `json:"totalIncomePending"`
	TotalExpensePending   decimal.Decimal `json:"totalExpensePending"`
	InitialBalance        decimal.Decimal `json:"initialBalance"`
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalExpense          decimal.Decimal `json:"totalExpense"`
	NetFlow               decimal.Decimal `json:"netFlow"`
	ProjectedBalance      decimal.Decimal `json:"projectedBalance"`
	FinalBalance          decimal.Decimal `json:"finalBalance"`
	CurrentBalance        decimal.Decimal `json:"currentBalance"`
}

// CashFlowKPIs holds the ratio indicators derived from a series.
type CashFlowKPIs struct {
	AverageBalance     decimal.Decimal `json:"averageBalance"`
	IncomeVsExpense    decimal.Decimal `json:"incomeVsExpense"`
	DelinquencyRate    decimal.Decimal `json:"delinquencyRate"`
	ImmediateLiquidity decimal.Decimal `json:"immediateLiquidity"`
	BurnRate           decimal.Decimal `json:"burnRate"`
}

// AlertSeverity ranks alerts.
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// AlertType tags what triggered an alert.
type AlertType string

const (
	AlertNegativeBalance AlertType = "negative_balance"
	AlertOverdueAccount  AlertType = "overdue_account"
	AlertLateReceipt     AlertType = "late_receipt"
)

// Alert is a single risk notice.
type Alert struct {
	AlertID   string           `json:"alertID"`
	Type      AlertType        `json:"type"`
	Severity  AlertSeverity    `json:"severity"`
	Message   string           `json:"message"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	RelatedID *string          `json:"relatedID,omitempty"`
}

// DRELine is one category's contribution to an income statement bucket.
type DRELine struct {
	Bucket       DRECategory     `json:"bucket"`
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// DREStatement is a simplified income statement for one month.
type DREStatement struct {
	Year                     int             `json:"year"`
	Month                    int             `json:"month"`
	GrossRevenue             decimal.Decimal `json:"grossRevenue"`
	Deductions               decimal.Decimal `json:"deductions"`
	NetRevenue               decimal.Decimal `json:"netRevenue"`
	Costs                    decimal.Decimal `json:"costs"`
	GrossProfit              decimal.Decimal `json:"grossProfit"`
	OperationalExpenses      decimal.Decimal `json:"operationalExpenses"`
	OperationalProfit        decimal.Decimal `json:"operationalProfit"`
	Taxes                    decimal.Decimal `json:"taxes"`
	DepreciationAmortization decimal.Decimal `json:"depreciationAmortization"`
	NetProfit                decimal.Decimal `json:"netProfit"`
	Lines                    []DRELine       `json:"lines"`
}

// DREReport compares a month with the one before it.
type DREReport struct {
	Current               DREStatement    `json:"current"`
	Previous              DREStatement    `json:"previous"`
	GrossRevenueChangePct decimal.Decimal `json:"grossRevenueChangePct"`
	NetProfitChangePct    decimal.Decimal `json:"netProfitChangePct"`
}
