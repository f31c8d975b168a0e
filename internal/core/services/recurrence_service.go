package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/utils/accounting"
)

type recurrenceService struct {
	BaseService
	payableRepo portsrepo.PayableRepositoryFacade
	newID       func() string
}

// NewRecurrenceService creates the recurrence expander.
func NewRecurrenceService(repo portsrepo.PayableRepositoryFacade, opts ...Option) portssvc.RecurrenceSvc {
	return &recurrenceService{
		BaseService: newBase(opts),
		payableRepo: repo,
		newID:       uuid.NewString,
	}
}

var _ portssvc.RecurrenceSvc = (*recurrenceService)(nil)

func (s *recurrenceService) ExpandPayable(ctx context.Context, payableID string, userID string) (int, error) {
	origin, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return 0, err
	}
	if !origin.IsActive {
		s.LogDebug(ctx, "Skipping expansion of inactive payable", slog.String("payable_id", payableID))
		return 0, nil
	}

	instances, err := accounting.ExpandRecurrence(*origin, s.newID)
	if err != nil {
		return 0, apperrors.NewValidationError("payable %s has unparsable recurrence dates: %v", payableID, err)
	}
	if len(instances) == 0 {
		return 0, nil
	}

	now := s.Now()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	for i := range instances {
		instances[i].AuditFields = audit
	}

	created, err := s.payableRepo.SaveRecurrenceInstances(ctx, origin.PayableID, instances)
	if err != nil {
		s.LogError(ctx, err, "Failed to save recurrence instances", slog.String("payable_id", payableID))
		return 0, fmt.Errorf("failed to save recurrence instances: %w", err)
	}
	s.LogInfo(ctx, "Recurring payable expanded",
		slog.String("payable_id", payableID),
		slog.Int("created", created),
		slog.String("expanded_through", accounting.LastDueDate(instances)))
	return created, nil
}
