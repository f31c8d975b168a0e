package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
)

// receivableService implements portssvc.ReceivableSvcFacade.
// Receivable recurrence is stored as a marker only and never expanded.
type receivableService struct {
	BaseService
	receivableRepo portsrepo.ReceivableRepositoryFacade
}

// NewReceivableService creates a receivable service.
func NewReceivableService(repo portsrepo.ReceivableRepositoryFacade, opts ...Option) portssvc.ReceivableSvcFacade {
	return &receivableService{
		BaseService:    newBase(opts),
		receivableRepo: repo,
	}
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

func validateReceivable(r domain.Receivable) error {
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.NewValidationError("description is required")
	}
	if err := requirePositive("amount", r.Amount); err != nil {
		return err
	}
	if err := requireNonNegative("discount", r.Discount); err != nil {
		return err
	}
	if err := requireDate("dueDate", r.DueDate); err != nil {
		return err
	}
	return requireOptionalDate("recurrenceEnd", r.RecurrenceEnd)
}

func (s *receivableService) CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest, creatorUserID string) (*domain.Receivable, error) {
	now := s.Now()
	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}

	receivable := domain.Receivable{
		ReceivableID:  uuid.NewString(),
		CompanyID:     req.CompanyID,
		Description:   strings.TrimSpace(req.Description),
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Status:        domain.ReceivablePending,
		Discount:      req.Discount,
		Recurrence:    recurrence,
		RecurrenceEnd: blankToNil(req.RecurrenceEnd),
		IsActive:      true,
		CategoryID:    blankToNil(req.CategoryID),
		ClientID:      blankToNil(req.ClientID),
		Notes:         blankToNil(req.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := validateReceivable(receivable); err != nil {
		return nil, err
	}

	if err := s.receivableRepo.SaveReceivable(ctx, receivable); err != nil {
		s.LogError(ctx, err, "Failed to save receivable", slog.String("company_id", receivable.CompanyID))
		return nil, fmt.Errorf("failed to save receivable: %w", err)
	}
	s.LogInfo(ctx, "Receivable created", slog.String("receivable_id", receivable.ReceivableID))
	return &receivable, nil
}

func (s *receivableService) GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receivable", slog.String("receivable_id", receivableID))
		}
		return nil, err
	}
	return receivable, nil
}

func (s *receivableService) ListReceivables(ctx context.Context, params dto.ListRecordsParams) (*dto.ListReceivablesResponse, error) {
	filter, err := listFilter(params)
	if err != nil {
		return nil, err
	}
	receivables, nextToken, err := s.receivableRepo.ListReceivables(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables", slog.String("company_id", params.CompanyID))
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	return &dto.ListReceivablesResponse{
		Receivables: dto.ToListReceivableResponse(receivables),
		NextToken:   nextToken,
	}, nil
}

func (s *receivableService) UpdateReceivable(ctx context.Context, receivableID string, req dto.UpdateReceivableRequest, userID string) (*domain.Receivable, error) {
	receivable, err := s.GetReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, err
	}
	if !receivable.IsActive {
		return nil, apperrors.NewValidationError("receivable %s is inactive", receivableID)
	}

	if req.Description != nil {
		receivable.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		receivable.Amount = *req.Amount
	}
	if req.DueDate != nil {
		receivable.DueDate = *req.DueDate
	}
	if req.Discount != nil {
		receivable.Discount = req.Discount
	}
	if req.Recurrence != nil {
		receivable.Recurrence = *req.Recurrence
	}
	if req.RecurrenceEnd != nil {
		receivable.RecurrenceEnd = blankToNil(req.RecurrenceEnd)
	}
	if req.CategoryID != nil {
		receivable.CategoryID = blankToNil(req.CategoryID)
	}
	if req.ClientID != nil {
		receivable.ClientID = blankToNil(req.ClientID)
	}
	if req.Notes != nil {
		receivable.Notes = blankToNil(req.Notes)
	}
	if err := validateReceivable(*receivable); err != nil {
		return nil, err
	}

	receivable.LastUpdatedAt = s.Now()
	receivable.LastUpdatedBy = userID
	if err := s.receivableRepo.UpdateReceivable(ctx, *receivable); err != nil {
		s.LogError(ctx, err, "Failed to update receivable", slog.String("receivable_id", receivableID))
		return nil, fmt.Errorf("failed to update receivable: %w", err)
	}
	s.LogInfo(ctx, "Receivable updated", slog.String("receivable_id", receivableID))
	return receivable, nil
}

func (s *receivableService) ReceiveReceivable(ctx context.Context, receivableID string, req dto.ReceiveReceivableRequest, userID string) (*domain.Receivable, error) {
	if err := requireDate("receivedDate", req.ReceivedDate); err != nil {
		return nil, err
	}
	if err := requireNonNegative("discount", req.Discount); err != nil {
		return nil, err
	}

	receivable, err := s.GetReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, err
	}
	if !receivable.IsActive {
		return nil, apperrors.NewValidationError("receivable %s is inactive", receivableID)
	}
	if receivable.IsSettled() {
		return nil, apperrors.NewValidationError("receivable %s is already received", receivableID)
	}

	receivedDate := req.ReceivedDate
	receivable.ReceivedDate = &receivedDate
	receivable.Status = domain.ReceivableReceived
	if req.Discount != nil {
		receivable.Discount = req.Discount
	}
	if !dates.IsBlank(req.PaymentMethod) {
		receivable.PaymentMethod = blankToNil(req.PaymentMethod)
	}
	receivable.LastUpdatedAt = s.Now()
	receivable.LastUpdatedBy = userID

	if err := s.receivableRepo.MarkReceivableReceived(ctx, *receivable); err != nil {
		s.LogError(ctx, err, "Failed to mark receivable received", slog.String("receivable_id", receivableID))
		return nil, fmt.Errorf("failed to receive receivable: %w", err)
	}
	s.LogInfo(ctx, "Receivable received", slog.String("receivable_id", receivableID), slog.String("received_date", receivedDate))
	return receivable, nil
}

func (s *receivableService) DeactivateReceivable(ctx context.Context, receivableID string, userID string) error {
	err := s.receivableRepo.DeactivateReceivable(ctx, receivableID, userID, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate receivable", slog.String("receivable_id", receivableID))
		}
		return err
	}
	s.LogInfo(ctx, "Receivable deactivated", slog.String("receivable_id", receivableID))
	return nil
}
