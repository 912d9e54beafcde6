package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddTransaction prepends the ledger entry. Recording an expense increments
// the SpentAmount of every budget in the same church whose category matches
// the transaction's category byte-for-byte; income never touches budgets.
// Multiple matching budgets all accrue the full amount, with no split.
func (s *Store) AddTransaction(tx domain.Transaction) domain.Transaction {
	tx.ID = uuid.NewString()
	s.mutate(func(next *domain.Snapshot) bool {
		next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)
		if tx.Type == domain.Expense {
			budgets := append([]domain.Budget{}, next.Budgets...)
			for i := range budgets {
				if budgets[i].ChurchID == tx.ChurchID && budgets[i].Category == tx.Category {
					budgets[i].SpentAmount = budgets[i].SpentAmount.Add(tx.Amount)
				}
			}
			next.Budgets = budgets
		}
		return true
	})
	return tx
}

func (s *Store) AddBudget(budget domain.Budget) domain.Budget {
	budget.ID = uuid.NewString()
	s.mutate(func(next *domain.Snapshot) bool {
		next.Budgets = append(append([]domain.Budget{}, next.Budgets...), budget)
		return true
	})
	return budget
}

func (s *Store) DeleteBudget(budgetID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		budgets := make([]domain.Budget, 0, len(next.Budgets))
		for _, b := range next.Budgets {
			if b.ID != budgetID {
				budgets = append(budgets, b)
			}
		}
		next.Budgets = budgets
		return true
	})
}

func (s *Store) ListTransactionsByChurch(churchID string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Transaction{}
	for _, tx := range s.snap.Transactions {
		if tx.ChurchID == churchID {
			out = append(out, tx)
		}
	}
	return out
}

func (s *Store) ListBudgetsByChurch(churchID string) []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Budget{}
	for _, b := range s.snap.Budgets {
		if b.ChurchID == churchID {
			out = append(out, b)
		}
	}
	return out
}

// SumTransactionsByType totals one side of the ledger for a church, in the
// church's current display currency.
func (s *Store) SumTransactionsByType(churchID string, txType domain.TransactionType) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := decimal.Zero
	for _, tx := range s.snap.Transactions {
		if tx.ChurchID == churchID && tx.Type == txType {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}
