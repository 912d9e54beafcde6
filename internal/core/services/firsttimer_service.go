package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// firstTimerService implements FirstTimerSvcFacade over the tenant store,
// with the AI advisor as an optional outbound collaborator.
type firstTimerService struct {
	BaseService
	store   portsrepo.FirstTimerStoreFacade
	advisor portssvc.AdvisorSvcFacade
}

// NewFirstTimerService creates a new visitor service backed by the tenant
// store. The advisor may be nil when the advisory integration is not
// configured.
func NewFirstTimerService(store portsrepo.FirstTimerStoreFacade, advisor portssvc.AdvisorSvcFacade) portssvc.FirstTimerSvcFacade {
	return &firstTimerService{store: store, advisor: advisor}
}

func (s *firstTimerService) CreateFirstTimer(ctx context.Context, churchID string, req dto.CreateFirstTimerRequest) (*domain.FirstTimer, error) {
	ft := s.store.AddFirstTimer(domain.FirstTimer{
		ChurchID:    churchID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		DateVisited: req.DateVisited,
		InvitedBy:   req.InvitedBy,
		AssignedTo:  req.AssignedTo,
		Status:      domain.FollowUpNeeded,
		Notes:       req.Notes,
	})
	s.LogInfo(ctx, "First timer recorded",
		slog.String("first_timer_id", ft.ID),
		slog.String("church_id", churchID))
	return &ft, nil
}

func (s *firstTimerService) UpdateFirstTimer(ctx context.Context, firstTimerID string, req dto.UpdateFirstTimerRequest) (*domain.FirstTimer, error) {
	ft := s.store.UpdateFirstTimer(firstTimerID, req.ToDomainFirstTimerUpdate())
	if ft == nil {
		return nil, apperrors.ErrNotFound
	}
	return ft, nil
}

func (s *firstTimerService) DeleteFirstTimer(ctx context.Context, firstTimerID string) error {
	if s.store.FindFirstTimerByID(firstTimerID) == nil {
		return apperrors.ErrNotFound
	}
	s.store.DeleteFirstTimer(firstTimerID)
	return nil
}

func (s *firstTimerService) GetFirstTimerByID(ctx context.Context, firstTimerID string) (*domain.FirstTimer, error) {
	ft := s.store.FindFirstTimerByID(firstTimerID)
	if ft == nil {
		return nil, apperrors.ErrNotFound
	}
	return ft, nil
}

func (s *firstTimerService) ListFirstTimersByChurch(ctx context.Context, churchID string) ([]domain.FirstTimer, error) {
	return s.store.ListFirstTimersByChurch(churchID), nil
}

func (s *firstTimerService) LogFollowUp(ctx context.Context, firstTimerID, action, performedBy string) (*domain.FirstTimer, error) {
	ft := s.store.AppendFollowUpLog(firstTimerID, domain.FollowUpLog{
		Date:        time.Now().Format("2006-01-02"),
		Action:      action,
		PerformedBy: performedBy,
	})
	if ft == nil {
		return nil, apperrors.ErrNotFound
	}
	return ft, nil
}

func (s *firstTimerService) SuggestFollowUp(ctx context.Context, firstTimerID string) (string, error) {
	ft := s.store.FindFirstTimerByID(firstTimerID)
	if ft == nil {
		return "", apperrors.ErrNotFound
	}
	if s.advisor == nil {
		return "", apperrors.ErrValidation
	}

	suggestion, err := s.advisor.SuggestFollowUp(ctx, ft.FullName, ft.Notes)
	if err != nil {
		s.LogError(ctx, err, "Advisory suggestion failed", slog.String("first_timer_id", firstTimerID))
		return "", err
	}
	return suggestion, nil
}
