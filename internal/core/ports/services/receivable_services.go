package services

import (
	"context"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
)

// ReceivableSvcFacade defines operations on receivables
type ReceivableSvcFacade interface {
	CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest, creatorUserID string) (*domain.Receivable, error)
	GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)
	ListReceivables(ctx context.Context, params dto.ListRecordsParams) (*dto.ListReceivablesResponse, error)
	UpdateReceivable(ctx context.Context, receivableID string, req dto.UpdateReceivableRequest, userID string) (*domain.Receivable, error)
	ReceiveReceivable(ctx context.Context, receivableID string, req dto.ReceiveReceivableRequest, userID string) (*domain.Receivable, error)
	DeactivateReceivable(ctx context.Context, receivableID string, userID string) error
}
