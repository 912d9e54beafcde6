package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse is one ledger entry, denominated in the church's
// current display currency.
type TransactionResponse struct {
	ID          string          `json:"id"`
	ChurchID    string          `json:"churchId"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	RecordedBy  string          `json:"recordedBy"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		ChurchID:    tx.ChurchID,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		RecordedBy:  tx.RecordedBy,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
func ToListTransactionResponse(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = ToTransactionResponse(&txs[i])
	}
	return out
}

// CreateTransactionRequest defines the data for a new ledger entry.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,dateonly"`
	Description string          `json:"description"`
}

// BudgetResponse is one category allocation with its accrued spend.
type BudgetResponse struct {
	ID              string          `json:"id"`
	ChurchID        string          `json:"churchId"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	Period          string          `json:"period"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:              budget.ID,
		ChurchID:        budget.ChurchID,
		Category:        budget.Category,
		AllocatedAmount: budget.AllocatedAmount,
		SpentAmount:     budget.SpentAmount,
		Period:          budget.Period,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to response DTOs.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return out
}

// CreateBudgetRequest defines the data for a new budget allocation.
type CreateBudgetRequest struct {
	Category        string          `json:"category" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" binding:"required"`
	Period          string          `json:"period" binding:"required"`
}

// FinanceSummaryResponse aggregates a church's ledger into the headline
// dashboard figures.
type FinanceSummaryResponse struct {
	Currency     string          `json:"currency"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}
