package domain

// DRECategory tags a category with the income statement line it feeds.
type DRECategory string

const (
	DREGrossRevenue        DRECategory = "gross_revenue"
	DREDeductions          DRECategory = "deductions"
	DRECosts               DRECategory = "costs"
	DREOperationalExpenses DRECategory = "operational_expenses"
	DREUntagged            DRECategory = ""
)

// NormalizeDRECategory maps accepted aliases onto the canonical tags.
func NormalizeDRECategory(tag string) DRECategory {
	switch tag {
	case "revenue", "gross_revenue":
		return DREGrossRevenue
	case "deductions":
		return DREDeductions
	case "costs":
		return DRECosts
	case "expenses", "operational_expenses":
		return DREOperationalExpenses
	}
	return DREUntagged
}

// NoCategoryLabel is shown when a record references a missing category.
const NoCategoryLabel = "no category"

// Category classifies payables and receivables.
type Category struct {
	CategoryID  string       `json:"categoryID"`
	CompanyID   string       `json:"companyID"`
	Name        string       `json:"name"`
	Kind        MovementType `json:"kind"`
	DRECategory DRECategory  `json:"dreCategory"`
	AuditFields
}
