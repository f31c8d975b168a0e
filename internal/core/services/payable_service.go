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

// payableService implements portssvc.PayableSvcFacade.
type payableService struct {
	BaseService
	payableRepo portsrepo.PayableRepositoryFacade
	recurrence  portssvc.RecurrenceSvc
}

// NewPayableService creates a payable service. recurrence may be nil, in
// which case recurring payables are stored without generating instances.
func NewPayableService(repo portsrepo.PayableRepositoryFacade, recurrence portssvc.RecurrenceSvc, opts ...Option) portssvc.PayableSvcFacade {
	return &payableService{
		BaseService: newBase(opts),
		payableRepo: repo,
		recurrence:  recurrence,
	}
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

func validatePayable(p domain.Payable) error {
	if strings.TrimSpace(p.Description) == "" {
		return apperrors.NewValidationError("description is required")
	}
	if err := requirePositive("amount", p.Amount); err != nil {
		return err
	}
	if err := requireNonNegative("lateFees", p.LateFees); err != nil {
		return err
	}
	if err := requireNonNegative("discount", p.Discount); err != nil {
		return err
	}
	if err := requireDate("dueDate", p.DueDate); err != nil {
		return err
	}
	if err := requireOptionalDate("recurrenceEnd", p.RecurrenceEnd); err != nil {
		return err
	}
	switch p.Recurrence {
	case domain.RecurrenceNone, domain.RecurrenceWeekly, domain.RecurrenceMonthly, domain.RecurrenceYearly:
	default:
		return apperrors.NewValidationError("unknown recurrence %q", p.Recurrence)
	}
	return nil
}

func (s *payableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest, creatorUserID string) (*domain.Payable, error) {
	now := s.Now()
	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}

	payable := domain.Payable{
		PayableID:     uuid.NewString(),
		CompanyID:     req.CompanyID,
		Description:   strings.TrimSpace(req.Description),
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Status:        domain.PayablePending,
		LateFees:      req.LateFees,
		Discount:      req.Discount,
		Recurrence:    recurrence,
		RecurrenceEnd: blankToNil(req.RecurrenceEnd),
		IsActive:      true,
		CategoryID:    blankToNil(req.CategoryID),
		CostCenterID:  blankToNil(req.CostCenterID),
		SupplierID:    blankToNil(req.SupplierID),
		PaymentMethod: blankToNil(req.PaymentMethod),
		Notes:         blankToNil(req.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := validatePayable(payable); err != nil {
		return nil, err
	}

	if err := s.payableRepo.SavePayable(ctx, payable); err != nil {
		s.LogError(ctx, err, "Failed to save payable", slog.String("company_id", payable.CompanyID))
		return nil, fmt.Errorf("failed to save payable: %w", err)
	}
	s.LogInfo(ctx, "Payable created", slog.String("payable_id", payable.PayableID))

	s.expand(ctx, payable, creatorUserID)
	return &payable, nil
}

func (s *payableService) GetPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payable", slog.String("payable_id", payableID))
		}
		return nil, err
	}
	return payable, nil
}

func (s *payableService) ListPayables(ctx context.Context, params dto.ListRecordsParams) (*dto.ListPayablesResponse, error) {
	filter, err := listFilter(params)
	if err != nil {
		return nil, err
	}
	payables, nextToken, err := s.payableRepo.ListPayables(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payables", slog.String("company_id", params.CompanyID))
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	s.LogDebug(ctx, "Payables listed", slog.Int("count", len(payables)))
	return &dto.ListPayablesResponse{
		Payables:  dto.ToListPayableResponse(payables),
		NextToken: nextToken,
	}, nil
}

func (s *payableService) UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest, userID string) (*domain.Payable, error) {
	payable, err := s.GetPayableByID(ctx, payableID)
	if err != nil {
		return nil, err
	}
	if !payable.IsActive {
		return nil, apperrors.NewValidationError("payable %s is inactive", payableID)
	}

	if req.Description != nil {
		payable.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		payable.Amount = *req.Amount
	}
	if req.DueDate != nil {
		payable.DueDate = *req.DueDate
	}
	if req.LateFees != nil {
		payable.LateFees = req.LateFees
	}
	if req.Discount != nil {
		payable.Discount = req.Discount
	}
	if req.Recurrence != nil {
		payable.Recurrence = *req.Recurrence
	}
	if req.RecurrenceEnd != nil {
		payable.RecurrenceEnd = blankToNil(req.RecurrenceEnd)
	}
	if req.CategoryID != nil {
		payable.CategoryID = blankToNil(req.CategoryID)
	}
	if req.CostCenterID != nil {
		payable.CostCenterID = blankToNil(req.CostCenterID)
	}
	if req.SupplierID != nil {
		payable.SupplierID = blankToNil(req.SupplierID)
	}
	if req.PaymentMethod != nil {
		payable.PaymentMethod = blankToNil(req.PaymentMethod)
	}
	if req.Notes != nil {
		payable.Notes = blankToNil(req.Notes)
	}
	if err := validatePayable(*payable); err != nil {
		return nil, err
	}

	payable.LastUpdatedAt = s.Now()
	payable.LastUpdatedBy = userID
	if err := s.payableRepo.UpdatePayable(ctx, *payable); err != nil {
		s.LogError(ctx, err, "Failed to update payable", slog.String("payable_id", payableID))
		return nil, fmt.Errorf("failed to update payable: %w", err)
	}
	s.LogInfo(ctx, "Payable updated", slog.String("payable_id", payableID))

	s.expand(ctx, *payable, userID)
	return payable, nil
}

func (s *payableService) PayPayable(ctx context.Context, payableID string, req dto.PayPayableRequest, userID string) (*domain.Payable, error) {
	if err := requireDate("paymentDate", req.PaymentDate); err != nil {
		return nil, err
	}
	if err := requireNonNegative("lateFees", req.LateFees); err != nil {
		return nil, err
	}
	if err := requireNonNegative("discount", req.Discount); err != nil {
		return nil, err
	}

	payable, err := s.GetPayableByID(ctx, payableID)
	if err != nil {
		return nil, err
	}
	if !payable.IsActive {
		return nil, apperrors.NewValidationError("payable %s is inactive", payableID)
	}
	if payable.IsSettled() {
		return nil, apperrors.NewValidationError("payable %s is already paid", payableID)
	}

	paymentDate := req.PaymentDate
	payable.PaymentDate = &paymentDate
	payable.Status = domain.PayablePaid
	if req.LateFees != nil {
		payable.LateFees = req.LateFees
	}
	if req.Discount != nil {
		payable.Discount = req.Discount
	}
	if !dates.IsBlank(req.PaymentMethod) {
		payable.PaymentMethod = blankToNil(req.PaymentMethod)
	}
	payable.LastUpdatedAt = s.Now()
	payable.LastUpdatedBy = userID

	if err := s.payableRepo.MarkPayablePaid(ctx, *payable); err != nil {
		s.LogError(ctx, err, "Failed to mark payable paid", slog.String("payable_id", payableID))
		return nil, fmt.Errorf("failed to pay payable: %w", err)
	}
	s.LogInfo(ctx, "Payable paid", slog.String("payable_id", payableID), slog.String("payment_date", paymentDate))
	return payable, nil
}

func (s *payableService) DeactivatePayable(ctx context.Context, payableID string, userID string) error {
	err := s.payableRepo.DeactivatePayable(ctx, payableID, userID, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate payable", slog.String("payable_id", payableID))
		}
		return err
	}
	s.LogInfo(ctx, "Payable deactivated", slog.String("payable_id", payableID))
	return nil
}

// expand generates recurrence instances after a write. Failures never fail
// the write that triggered them.
func (s *payableService) expand(ctx context.Context, payable domain.Payable, userID string) {
	if s.recurrence == nil || !payable.Recurrence.IsRepeating() || dates.IsBlank(payable.RecurrenceEnd) {
		return
	}
	created, err := s.recurrence.ExpandPayable(ctx, payable.PayableID, userID)
	if err != nil {
		s.LogError(ctx, err, "Recurrence expansion failed", slog.String("payable_id", payable.PayableID))
		return
	}
	s.LogDebug(ctx, "Recurrence expanded", slog.String("payable_id", payable.PayableID), slog.Int("created", created))
}
