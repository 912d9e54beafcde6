package snapshot

import (
	"time"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/ecclesia-hq/ecclesia_backend/internal/utils"
	"github.com/google/uuid"
)

// AddChurch registers a new tenant. The id, creation date, derived location
// string and defaults (USD, ACTIVE) are assigned here.
func (s *Store) AddChurch(church domain.Church) domain.Church {
	church.ID = uuid.NewString()
	church.CreatedAt = time.Now().Format("2006-01-02")
	church.Location = church.City + ", " + church.State
	if church.Currency == "" {
		church.Currency = domain.CurrencyUSD
	}
	if church.Status == "" {
		church.Status = domain.ChurchActive
	}

	s.mutate(func(next *domain.Snapshot) bool {
		next.Churches = append(append([]domain.Church{}, next.Churches...), church)
		return true
	})
	return church
}

// UpdateChurch shallow-merges the non-nil fields. Returns nil on a lookup
// miss; the miss itself is a silent no-op.
func (s *Store) UpdateChurch(churchID string, update domain.ChurchUpdate) *domain.Church {
	var updated *domain.Church
	s.mutate(func(next *domain.Snapshot) bool {
		churches := append([]domain.Church{}, next.Churches...)
		for i := range churches {
			if churches[i].ID != churchID {
				continue
			}
			c := churches[i]
			if update.Name != nil {
				c.Name = *update.Name
			}
			if update.City != nil {
				c.City = *update.City
			}
			if update.State != nil {
				c.State = *update.State
			}
			if update.Country != nil {
				c.Country = *update.Country
			}
			if update.Phone != nil {
				c.Phone = *update.Phone
			}
			if update.AdminID != nil {
				c.AdminID = *update.AdminID
			}
			if update.Status != nil {
				c.Status = *update.Status
			}
			c.Location = c.City + ", " + c.State
			churches[i] = c
			updated = &c
			next.Churches = churches
			return true
		}
		return false
	})
	return updated
}

func (s *Store) FindChurchByID(churchID string) *domain.Church {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findChurch(s.snap.Churches, churchID)
}

func (s *Store) ListChurches() []domain.Church {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Church{}, s.snap.Churches...)
}

// SetChurchCurrency switches the tenant's display currency and rewrites every
// transaction and budget amount of that church by rate(target)/rate(source),
// rounding each field to 2 decimal places independently. When the target
// equals the current currency (or either rate is unknown) nothing changes and
// nothing is persisted. The whole rewrite lands in one snapshot swap, so no
// reader observes mixed-currency amounts.
func (s *Store) SetChurchCurrency(churchID string, target domain.CurrencyCode) *domain.Church {
	var updated *domain.Church
	s.mutate(func(next *domain.Snapshot) bool {
		church := findChurch(next.Churches, churchID)
		if church == nil {
			return false
		}
		source := church.Currency
		if source == "" {
			source = domain.CurrencyUSD
		}
		if source == target {
			c := *church
			updated = &c
			return false
		}
		targetRate, okTarget := domain.Rate(target)
		sourceRate, okSource := domain.Rate(source)
		if !okTarget || !okSource {
			c := *church
			updated = &c
			return false
		}
		factor := targetRate.Div(sourceRate)

		churches := append([]domain.Church{}, next.Churches...)
		for i := range churches {
			if churches[i].ID == churchID {
				churches[i].Currency = target
				c := churches[i]
				updated = &c
			}
		}

		transactions := append([]domain.Transaction{}, next.Transactions...)
		for i := range transactions {
			if transactions[i].ChurchID == churchID {
				transactions[i].Amount = utils.Round2(transactions[i].Amount.Mul(factor))
			}
		}

		budgets := append([]domain.Budget{}, next.Budgets...)
		for i := range budgets {
			if budgets[i].ChurchID == churchID {
				budgets[i].AllocatedAmount = utils.Round2(budgets[i].AllocatedAmount.Mul(factor))
				budgets[i].SpentAmount = utils.Round2(budgets[i].SpentAmount.Mul(factor))
			}
		}

		next.Churches = churches
		next.Transactions = transactions
		next.Budgets = budgets
		return true
	})
	return updated
}
