package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and the CLI.
type ServiceContainer struct {
	Payable           PayableSvcFacade
	Receivable        ReceivableSvcFacade
	ManualEntry       ManualEntrySvc
	BalanceAdjustment BalanceAdjustmentSvc
	Category          CategorySvc
	Recurrence        RecurrenceSvc
	CashFlow          CashFlowSvc
	Alert             AlertSvc
	DRE               DRESvc
}
