package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PayableRepo           PayableRepositoryFacade
	ReceivableRepo        ReceivableRepositoryFacade
	ManualEntryRepo       ManualEntryRepository
	BalanceAdjustmentRepo BalanceAdjustmentRepository
	CategoryRepo          CategoryRepository
}
