package repositories

// ListFilter narrows a record listing. Zero values mean "no restriction":
// an empty CompanyID lists every company, empty From/To leave the date range
// open and a Limit of 0 returns every matching row in one page.
type ListFilter struct {
	CompanyID string
	// From and To bound the record's primary date (due date for payables and
	// receivables, entry date for manual entries), inclusive.
	From       string
	To         string
	ActiveOnly bool
	Limit      int
	NextToken  *string
}
