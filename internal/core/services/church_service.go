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

// churchService implements ChurchSvcFacade over the tenant store.
type churchService struct {
	BaseService
	store portsrepo.TenantStoreFacade
}

// NewChurchService creates a new church service backed by the tenant store.
func NewChurchService(store portsrepo.TenantStoreFacade) portssvc.ChurchSvcFacade {
	return &churchService{store: store}
}

func (s *churchService) GetChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	church := s.store.FindChurchByID(churchID)
	if church == nil {
		return nil, apperrors.ErrNotFound
	}
	return church, nil
}

func (s *churchService) ListChurches(ctx context.Context) ([]domain.Church, error) {
	return s.store.ListChurches(), nil
}

func (s *churchService) PlatformOverview(ctx context.Context) (*dto.PlatformOverviewResponse, error) {
	snap := s.store.Snapshot()

	overview := &dto.PlatformOverviewResponse{
		TotalChurches: len(snap.Churches),
		Churches:      make([]dto.ChurchOverviewSummary, 0, len(snap.Churches)),
	}

	usersByChurch := make(map[string]int, len(snap.Churches))
	for i := range snap.Users {
		user := &snap.Users[i]
		if user.ChurchID == domain.PlatformChurchID {
			continue
		}
		overview.TotalUsers++
		usersByChurch[user.ChurchID]++
		if user.Status == domain.UserPending {
			overview.PendingApprovals++
		}
	}

	for i := range snap.Churches {
		church := &snap.Churches[i]
		if church.Status == domain.ChurchActive {
			overview.ActiveChurches++
		}
		overview.Churches = append(overview.Churches, dto.ChurchOverviewSummary{
			Church:    dto.ToChurchResponse(church),
			UserCount: usersByChurch[church.ID],
		})
	}

	return overview, nil
}

func (s *churchService) UpdateChurch(ctx context.Context, churchID string, req dto.UpdateChurchRequest) (*domain.Church, error) {
	church := s.store.UpdateChurch(churchID, req.ToDomainChurchUpdate())
	if church == nil {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Church profile updated", slog.String("church_id", churchID))
	return church, nil
}

func (s *churchService) SetCurrency(ctx context.Context, churchID string, target domain.CurrencyCode) (*domain.Church, error) {
	if !domain.IsSupportedCurrency(target) {
		return nil, apperrors.ErrValidation
	}
	church := s.store.SetChurchCurrency(churchID, target)
	if church == nil {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Church currency set",
		slog.String("church_id", churchID),
		slog.String("currency", string(target)))
	return church, nil
}

func (s *churchService) SuspendChurch(ctx context.Context, churchID string) (*domain.Church, error) {
	return s.setStatus(ctx, churchID, domain.ChurchSuspended)
}

func (s *churchService) ActivateChurch(ctx context.Context, churchID string) (*domain.Church, error) {
	return s.setStatus(ctx, churchID, domain.ChurchActive)
}

func (s *churchService) setStatus(ctx context.Context, churchID string, status domain.ChurchStatus) (*domain.Church, error) {
	church := s.store.UpdateChurch(churchID, domain.ChurchUpdate{Status: &status})
	if church == nil {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Church status changed",
		slog.String("church_id", churchID),
		slog.String("status", string(status)))
	return church, nil
}
