package services

import (
	"context"
	"log/slog"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// financeService implements FinanceSvcFacade over the tenant store. It needs
// the church collection too, for the summary's currency field.
type financeService struct {
	BaseService
	store portsrepo.TenantStoreFacade
}

// NewFinanceService creates a new bookkeeping service backed by the tenant store.
func NewFinanceService(store portsrepo.TenantStoreFacade) portssvc.FinanceSvcFacade {
	return &financeService{store: store}
}

func (s *financeService) RecordTransaction(ctx context.Context, churchID, recordedBy string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, apperrors.ErrValidation
	}
	tx := s.store.AddTransaction(domain.Transaction{
		ChurchID:    churchID,
		Type:        domain.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		RecordedBy:  recordedBy,
	})
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", tx.ID),
		slog.String("church_id", churchID),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.String()))
	return &tx, nil
}

func (s *financeService) ListTransactionsByChurch(ctx context.Context, churchID string) ([]domain.Transaction, error) {
	return s.store.ListTransactionsByChurch(churchID), nil
}

func (s *financeService) CreateBudget(ctx context.Context, churchID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.AllocatedAmount.IsNegative() {
		return nil, apperrors.ErrValidation
	}
	budget := s.store.AddBudget(domain.Budget{
		ChurchID:        churchID,
		Category:        req.Category,
		AllocatedAmount: req.AllocatedAmount,
		Period:          req.Period,
	})
	s.LogInfo(ctx, "Budget created",
		slog.String("budget_id", budget.ID),
		slog.String("church_id", churchID),
		slog.String("category", budget.Category))
	return &budget, nil
}

// DeleteBudget removes the allocation if present; misses are not reported.
func (s *financeService) DeleteBudget(ctx context.Context, budgetID string) error {
	s.store.DeleteBudget(budgetID)
	return nil
}

func (s *financeService) ListBudgetsByChurch(ctx context.Context, churchID string) ([]domain.Budget, error) {
	return s.store.ListBudgetsByChurch(churchID), nil
}

func (s *financeService) Summary(ctx context.Context, churchID string) (*dto.FinanceSummaryResponse, error) {
	church := s.store.FindChurchByID(churchID)
	if church == nil {
		return nil, apperrors.ErrNotFound
	}

	income := s.store.SumTransactionsByType(churchID, domain.Income)
	expense := s.store.SumTransactionsByType(churchID, domain.Expense)

	return &dto.FinanceSummaryResponse{
		Currency:     string(church.Currency),
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}
