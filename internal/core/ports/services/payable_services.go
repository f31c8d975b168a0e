package services

import (
	"context"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
)

// PayableReaderSvc defines read operations for payables
type PayableReaderSvc interface {
	GetPayableByID(ctx context.Context, payableID string) (*domain.Payable, error)
	ListPayables(ctx context.Context, params dto.ListRecordsParams) (*dto.ListPayablesResponse, error)
}

// PayableWriterSvc defines write operations for payables.
// Create and update expand a recurring payable as a best-effort side effect.
type PayableWriterSvc interface {
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest, creatorUserID string) (*domain.Payable, error)
	UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest, userID string) (*domain.Payable, error)
	PayPayable(ctx context.Context, payableID string, req dto.PayPayableRequest, userID string) (*domain.Payable, error)
	DeactivatePayable(ctx context.Context, payableID string, userID string) error
}

// PayableSvcFacade combines all payable-related service interfaces
type PayableSvcFacade interface {
	PayableReaderSvc
	PayableWriterSvc
}

// RecurrenceSvc expands recurring payables into concrete future payables.
type RecurrenceSvc interface {
	// ExpandPayable generates and stores the missing instances of a recurring
	// payable and returns how many were created. Expansion is idempotent.
	ExpandPayable(ctx context.Context, payableID string, userID string) (int, error)
}
