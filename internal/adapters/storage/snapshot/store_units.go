package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

func (s *Store) AddUnit(unit domain.Unit) domain.Unit {
	unit.ID = uuid.NewString()
	if unit.HeadIDs == nil {
		unit.HeadIDs = []string{}
	}
	s.mutate(func(next *domain.Snapshot) bool {
		next.Units = append(append([]domain.Unit{}, next.Units...), unit)
		return true
	})
	return unit
}

func (s *Store) UpdateUnit(unitID string, update domain.UnitUpdate) *domain.Unit {
	var updated *domain.Unit
	s.mutate(func(next *domain.Snapshot) bool {
		units := append([]domain.Unit{}, next.Units...)
		for i := range units {
			if units[i].ID != unitID {
				continue
			}
			u := units[i]
			if update.Name != nil {
				u.Name = *update.Name
			}
			if update.HeadIDs != nil {
				u.HeadIDs = *update.HeadIDs
			}
			units[i] = u
			updated = &u
			next.Units = units
			return true
		}
		return false
	})
	return updated
}

// DeleteUnit does not reassign properties or tasks that reference the unit;
// the absence of cascading deletes is a design property of the store.
func (s *Store) DeleteUnit(unitID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		units := make([]domain.Unit, 0, len(next.Units))
		for _, u := range next.Units {
			if u.ID != unitID {
				units = append(units, u)
			}
		}
		next.Units = units
		return true
	})
}

func (s *Store) FindUnitByID(unitID string) *domain.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.snap.Units {
		if s.snap.Units[i].ID == unitID {
			u := s.snap.Units[i]
			return &u
		}
	}
	return nil
}

func (s *Store) ListUnitsByChurch(churchID string) []domain.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Unit{}
	for _, u := range s.snap.Units {
		if u.ChurchID == churchID {
			out = append(out, u)
		}
	}
	return out
}
