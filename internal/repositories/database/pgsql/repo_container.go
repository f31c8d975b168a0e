package pgsql

import (
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	payableRepo := newPgxPayableRepository(dbPool)
	receivableRepo := newPgxReceivableRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PayableRepo:           payableRepo,
		ReceivableRepo:        receivableRepo,
		ManualEntryRepo:       ledgerRepo,
		BalanceAdjustmentRepo: ledgerRepo,
		CategoryRepo:          ledgerRepo,
	}
}
