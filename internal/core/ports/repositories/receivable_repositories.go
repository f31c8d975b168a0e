package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
)

// ReceivableReader defines read operations for receivable data
type ReceivableReader interface {
	FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)
	ListReceivables(ctx context.Context, filter ListFilter) ([]domain.Receivable, *string, error)
}

// ReceivableWriter defines write operations for receivable data
type ReceivableWriter interface {
	SaveReceivable(ctx context.Context, receivable domain.Receivable) error
	UpdateReceivable(ctx context.Context, receivable domain.Receivable) error
	MarkReceivableReceived(ctx context.Context, receivable domain.Receivable) error
	DeactivateReceivable(ctx context.Context, receivableID string, userID string, at time.Time) error
}

// ReceivableRepositoryFacade combines all receivable-related repository interfaces
type ReceivableRepositoryFacade interface {
	ReceivableReader
	ReceivableWriter
}
