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

// propertyService implements PropertySvcFacade over the tenant store.
type propertyService struct {
	BaseService
	store portsrepo.PropertyStoreFacade
}

// NewPropertyService creates a new inventory service backed by the tenant store.
func NewPropertyService(store portsrepo.PropertyStoreFacade) portssvc.PropertySvcFacade {
	return &propertyService{store: store}
}

func (s *propertyService) CreateProperty(ctx context.Context, churchID string, req dto.CreatePropertyRequest) (*domain.Property, error) {
	prop := s.store.AddProperty(domain.Property{
		ChurchID:       churchID,
		UnitID:         req.UnitID,
		Name:           req.Name,
		FunctionalQty:  req.FunctionalQty,
		MaintenanceQty: req.MaintenanceQty,
		DamagedQty:     req.DamagedQty,
	})
	s.LogInfo(ctx, "Property recorded",
		slog.String("property_id", prop.ID),
		slog.String("church_id", churchID))
	return &prop, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	prop := s.store.UpdateProperty(propertyID, req.ToDomainPropertyUpdate())
	if prop == nil {
		return nil, apperrors.ErrNotFound
	}
	return prop, nil
}

// DeleteProperty removes the asset if present; misses are not reported.
func (s *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	s.store.DeleteProperty(propertyID)
	return nil
}

func (s *propertyService) ListPropertiesByChurch(ctx context.Context, churchID string) ([]domain.Property, error) {
	return s.store.ListPropertiesByChurch(churchID), nil
}
