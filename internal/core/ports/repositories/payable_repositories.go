package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
)

// PayableReader defines read operations for payable data
type PayableReader interface {
	// FindPayableByID retrieves a payable by its ID. Returns apperrors.ErrNotFound if missing.
	FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error)

	// ListPayables retrieves payables ordered by due date using token-based pagination.
	// It returns the payables, a token for the next page, and an error.
	ListPayables(ctx context.Context, filter ListFilter) ([]domain.Payable, *string, error)
}

// PayableWriter defines write operations for payable data
type PayableWriter interface {
	SavePayable(ctx context.Context, payable domain.Payable) error

	// UpdatePayable overwrites the editable fields of an existing payable.
	UpdatePayable(ctx context.Context, payable domain.Payable) error

	// MarkPayablePaid settles a payable, recording the final late fees and discount.
	MarkPayablePaid(ctx context.Context, payable domain.Payable) error

	// DeactivatePayable soft-deletes a payable.
	DeactivatePayable(ctx context.Context, payableID string, userID string, at time.Time) error

	// SaveRecurrenceInstances inserts instances generated from originID and
	// advances the origin's expanded-through watermark, atomically. Instances
	// whose due date is at or before the stored watermark are skipped, so
	// concurrent or repeated expansions never insert the same period twice.
	// It returns the number of rows inserted.
	SaveRecurrenceInstances(ctx context.Context, originID string, instances []domain.Payable) (int, error)
}

// PayableRepositoryFacade combines all payable-related repository interfaces
type PayableRepositoryFacade interface {
	PayableReader
	PayableWriter
}
