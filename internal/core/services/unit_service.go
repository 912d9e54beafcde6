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

// unitService implements UnitSvcFacade over the tenant store.
type unitService struct {
	BaseService
	store portsrepo.UnitStoreFacade
}

// NewUnitService creates a new unit service backed by the tenant store.
func NewUnitService(store portsrepo.UnitStoreFacade) portssvc.UnitSvcFacade {
	return &unitService{store: store}
}

func (s *unitService) CreateUnit(ctx context.Context, churchID string, req dto.CreateUnitRequest) (*domain.Unit, error) {
	unit := s.store.AddUnit(domain.Unit{
		ChurchID: churchID,
		Name:     req.Name,
		HeadIDs:  req.HeadIDs,
	})
	s.LogInfo(ctx, "Unit created", slog.String("unit_id", unit.ID), slog.String("church_id", churchID))
	return &unit, nil
}

func (s *unitService) UpdateUnit(ctx context.Context, unitID string, req dto.UpdateUnitRequest) (*domain.Unit, error) {
	unit := s.store.UpdateUnit(unitID, req.ToDomainUnitUpdate())
	if unit == nil {
		return nil, apperrors.ErrNotFound
	}
	return unit, nil
}

func (s *unitService) DeleteUnit(ctx context.Context, unitID string) error {
	if s.store.FindUnitByID(unitID) == nil {
		return apperrors.ErrNotFound
	}
	s.store.DeleteUnit(unitID)
	return nil
}

func (s *unitService) GetUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	unit := s.store.FindUnitByID(unitID)
	if unit == nil {
		return nil, apperrors.ErrNotFound
	}
	return unit, nil
}

func (s *unitService) ListUnitsByChurch(ctx context.Context, churchID string) ([]domain.Unit, error) {
	return s.store.ListUnitsByChurch(churchID), nil
}
