package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is one ledger entry. Amount is denominated in the church's
// current currency at time of read: amounts are physically rewritten when the
// church's display currency changes.
type Transaction struct {
	ID          string          `json:"id"`
	ChurchID    string          `json:"churchId"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	RecordedBy  string          `json:"recordedBy"` // user ID
}

// Budget allocates an amount to a spending category for a period.
// SpentAmount accrues automatically whenever an expense transaction with a
// matching category (case-sensitive, same church) is recorded.
type Budget struct {
	ID              string          `json:"id"`
	ChurchID        string          `json:"churchId"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	Period          string          `json:"period"` // e.g. "Monthly - May 2024"
}
