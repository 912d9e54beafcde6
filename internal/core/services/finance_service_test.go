package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	store *snapshot.Store
	svc   portssvc.FinanceSvcFacade
	ctx   context.Context
}

func (s *FinanceServiceTestSuite) SetupTest() {
	s.store = newTestStore()
	s.svc = services.NewFinanceService(s.store)
	s.ctx = context.Background()
}

func (s *FinanceServiceTestSuite) TestRecordTransactionStampsRecorder() {
	tx, err := s.svc.RecordTransaction(s.ctx, "c1", "u2", dto.CreateTransactionRequest{
		Type:     "INCOME",
		Category: "Offering",
		Amount:   decimal.RequireFromString("100.00"),
		Date:     "2024-06-02",
	})

	s.Require().NoError(err)
	s.Equal("u2", tx.RecordedBy)
	s.Equal("c1", tx.ChurchID)
	s.NotEmpty(tx.ID)
}

func (s *FinanceServiceTestSuite) TestRecordTransactionRejectsNegativeAmount() {
	_, err := s.svc.RecordTransaction(s.ctx, "c1", "u2", dto.CreateTransactionRequest{
		Type:     "EXPENSE",
		Category: "Outreach",
		Amount:   decimal.RequireFromString("-5.00"),
		Date:     "2024-06-02",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Empty(s.store.ListTransactionsByChurch("c1"))
}

func (s *FinanceServiceTestSuite) TestCreateBudgetRejectsNegativeAllocation() {
	_, err := s.svc.CreateBudget(s.ctx, "c1", dto.CreateBudgetRequest{
		Category:        "Outreach",
		AllocatedAmount: decimal.RequireFromString("-100.00"),
		Period:          "Monthly - June 2024",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FinanceServiceTestSuite) TestSummary() {
	_, err := s.svc.RecordTransaction(s.ctx, "c1", "u2", dto.CreateTransactionRequest{
		Type: "INCOME", Category: "Offering",
		Amount: decimal.RequireFromString("100.00"), Date: "2024-06-02",
	})
	s.Require().NoError(err)
	_, err = s.svc.RecordTransaction(s.ctx, "c1", "u2", dto.CreateTransactionRequest{
		Type: "EXPENSE", Category: "Outreach",
		Amount: decimal.RequireFromString("30.50"), Date: "2024-06-03",
	})
	s.Require().NoError(err)

	summary, err := s.svc.Summary(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("USD", summary.Currency)
	s.Equal("100.00", summary.TotalIncome.StringFixed(2))
	s.Equal("30.50", summary.TotalExpense.StringFixed(2))
	s.Equal("69.50", summary.Balance.StringFixed(2))
}

func (s *FinanceServiceTestSuite) TestSummaryUnknownChurch() {
	_, err := s.svc.Summary(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
