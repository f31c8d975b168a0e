package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
)

type manualEntryService struct {
	BaseService
	repo portsrepo.ManualEntryRepository
}

// NewManualEntryService creates the manual entry service.
func NewManualEntryService(repo portsrepo.ManualEntryRepository, opts ...Option) portssvc.ManualEntrySvc {
	return &manualEntryService{BaseService: newBase(opts), repo: repo}
}

var _ portssvc.ManualEntrySvc = (*manualEntryService)(nil)

func (s *manualEntryService) CreateManualEntry(ctx context.Context, req dto.CreateManualEntryRequest, creatorUserID string) (*domain.ManualEntry, error) {
	if err := requireDate("date", req.Date); err != nil {
		return nil, err
	}
	for field, value := range map[string]*string{"competenceDate": req.CompetenceDate, "dueDate": req.DueDate, "actualDate": req.ActualDate} {
		if err := requireOptionalDate(field, value); err != nil {
			return nil, err
		}
	}
	if req.Type != domain.MovementIncome && req.Type != domain.MovementExpense {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	if err := requireNonNegative("fees", req.Fees); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description is required")
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.KindNormal
	}
	status := req.Status
	if status == "" {
		status = domain.MovementConfirmed
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.NoCategoryLabel
	}

	now := s.Now()
	entry := domain.ManualEntry{
		EntryID:        uuid.NewString(),
		CompanyID:      req.CompanyID,
		Date:           req.Date,
		CompetenceDate: blankToNil(req.CompetenceDate),
		Type:           req.Type,
		Kind:           kind,
		Description:    strings.TrimSpace(req.Description),
		Category:       category,
		Subcategory:    blankToNil(req.Subcategory),
		Amount:         req.Amount,
		GrossAmount:    req.GrossAmount,
		Fees:           req.Fees,
		PaymentMethod:  req.PaymentMethod,
		Account:        req.Account,
		Status:         status,
		DocumentRef:    blankToNil(req.DocumentRef),
		CostCenter:     blankToNil(req.CostCenter),
		Recurrence:     blankToNil(req.Recurrence),
		DueDate:        blankToNil(req.DueDate),
		ActualDate:     blankToNil(req.ActualDate),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveManualEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save manual entry", slog.String("company_id", entry.CompanyID))
		return nil, fmt.Errorf("failed to save manual entry: %w", err)
	}
	s.LogInfo(ctx, "Manual entry created", slog.String("entry_id", entry.EntryID), slog.String("type", string(entry.Type)))
	return &entry, nil
}

func (s *manualEntryService) ListManualEntries(ctx context.Context, params dto.ListRecordsParams) (*dto.ListManualEntriesResponse, error) {
	filter, err := listFilter(params)
	if err != nil {
		return nil, err
	}
	entries, nextToken, err := s.repo.ListManualEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list manual entries", slog.String("company_id", params.CompanyID))
		return nil, fmt.Errorf("failed to list manual entries: %w", err)
	}
	if entries == nil {
		entries = []domain.ManualEntry{}
	}
	return &dto.ListManualEntriesResponse{ManualEntries: entries, NextToken: nextToken}, nil
}

type balanceAdjustmentService struct {
	BaseService
	repo portsrepo.BalanceAdjustmentRepository
}

// NewBalanceAdjustmentService creates the balance adjustment service.
func NewBalanceAdjustmentService(repo portsrepo.BalanceAdjustmentRepository, opts ...Option) portssvc.BalanceAdjustmentSvc {
	return &balanceAdjustmentService{BaseService: newBase(opts), repo: repo}
}

var _ portssvc.BalanceAdjustmentSvc = (*balanceAdjustmentService)(nil)

func (s *balanceAdjustmentService) CreateBalanceAdjustment(ctx context.Context, req dto.CreateBalanceAdjustmentRequest, creatorUserID string) (*domain.BalanceAdjustment, error) {
	if err := requireDate("date", req.Date); err != nil {
		return nil, err
	}
	if req.Type != domain.AdjustmentInitial && req.Type != domain.AdjustmentFinal {
		return nil, apperrors.NewValidationError("type must be initial or final")
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}

	now := s.Now()
	adjustment := domain.BalanceAdjustment{
		AdjustmentID: uuid.NewString(),
		CompanyID:    req.CompanyID,
		Date:         req.Date,
		Type:         req.Type,
		Description:  strings.TrimSpace(req.Description),
		Amount:       req.Amount,
		Account:      req.Account,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.repo.SaveBalanceAdjustment(ctx, adjustment); err != nil {
		s.LogError(ctx, err, "Failed to save balance adjustment", slog.String("company_id", adjustment.CompanyID))
		return nil, fmt.Errorf("failed to save balance adjustment: %w", err)
	}
	s.LogInfo(ctx, "Balance adjustment created", slog.String("adjustment_id", adjustment.AdjustmentID))
	return &adjustment, nil
}

func (s *balanceAdjustmentService) ListBalanceAdjustments(ctx context.Context, companyID, from, to string) ([]domain.BalanceAdjustment, error) {
	if err := requireRange(from, to); err != nil {
		return nil, err
	}
	adjustments, err := s.repo.ListBalanceAdjustments(ctx, portsrepo.ListFilter{CompanyID: companyID, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance adjustments", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list balance adjustments: %w", err)
	}
	if adjustments == nil {
		return []domain.BalanceAdjustment{}, nil
	}
	return adjustments, nil
}

type categoryService struct {
	BaseService
	repo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepository, opts ...Option) portssvc.CategorySvc {
	return &categoryService{BaseService: newBase(opts), repo: repo}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if req.Kind != domain.MovementIncome && req.Kind != domain.MovementExpense {
		return nil, apperrors.NewValidationError("kind must be income or expense")
	}
	tag := domain.NormalizeDRECategory(strings.TrimSpace(req.DRECategory))
	if tag == domain.DREUntagged && strings.TrimSpace(req.DRECategory) != "" {
		return nil, apperrors.NewValidationError("unknown dreCategory %q", req.DRECategory)
	}

	now := s.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		CompanyID:   req.CompanyID,
		Name:        name,
		Kind:        req.Kind,
		DRECategory: tag,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
