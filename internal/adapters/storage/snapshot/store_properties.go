package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

func (s *Store) AddProperty(prop domain.Property) domain.Property {
	prop.ID = uuid.NewString()
	prop.Quantity = prop.FunctionalQty + prop.MaintenanceQty + prop.DamagedQty
	s.mutate(func(next *domain.Snapshot) bool {
		next.Properties = append(append([]domain.Property{}, next.Properties...), prop)
		return true
	})
	return prop
}

func (s *Store) UpdateProperty(propertyID string, update domain.PropertyUpdate) *domain.Property {
	var updated *domain.Property
	s.mutate(func(next *domain.Snapshot) bool {
		properties := append([]domain.Property{}, next.Properties...)
		for i := range properties {
			if properties[i].ID != propertyID {
				continue
			}
			p := properties[i]
			if update.UnitID != nil {
				p.UnitID = *update.UnitID
			}
			if update.Name != nil {
				p.Name = *update.Name
			}
			if update.FunctionalQty != nil {
				p.FunctionalQty = *update.FunctionalQty
			}
			if update.MaintenanceQty != nil {
				p.MaintenanceQty = *update.MaintenanceQty
			}
			if update.DamagedQty != nil {
				p.DamagedQty = *update.DamagedQty
			}
			p.Quantity = p.FunctionalQty + p.MaintenanceQty + p.DamagedQty
			properties[i] = p
			updated = &p
			next.Properties = properties
			return true
		}
		return false
	})
	return updated
}

func (s *Store) DeleteProperty(propertyID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		properties := make([]domain.Property, 0, len(next.Properties))
		for _, p := range next.Properties {
			if p.ID != propertyID {
				properties = append(properties, p)
			}
		}
		next.Properties = properties
		return true
	})
}

func (s *Store) ListPropertiesByChurch(churchID string) []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Property{}
	for _, p := range s.snap.Properties {
		if p.ChurchID == churchID {
			out = append(out, p)
		}
	}
	return out
}
