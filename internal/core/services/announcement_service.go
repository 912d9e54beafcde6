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

// announcementService implements AnnouncementSvcFacade over the tenant store.
type announcementService struct {
	BaseService
	store portsrepo.AnnouncementStoreFacade
}

// NewAnnouncementService creates a new announcement service backed by the tenant store.
func NewAnnouncementService(store portsrepo.AnnouncementStoreFacade) portssvc.AnnouncementSvcFacade {
	return &announcementService{store: store}
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, churchID string, req dto.CreateAnnouncementRequest) (*domain.Announcement, error) {
	ann := s.store.AddAnnouncement(domain.Announcement{
		ChurchID:   churchID,
		UnitID:     req.UnitID,
		Title:      req.Title,
		Body:       req.Body,
		ExpiryDate: req.ExpiryDate,
	})
	s.LogInfo(ctx, "Announcement posted",
		slog.String("announcement_id", ann.ID),
		slog.String("church_id", churchID))
	return &ann, nil
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, announcementID string, req dto.UpdateAnnouncementRequest) (*domain.Announcement, error) {
	ann := s.store.UpdateAnnouncement(announcementID, req.ToDomainAnnouncementUpdate())
	if ann == nil {
		return nil, apperrors.ErrNotFound
	}
	return ann, nil
}

// DeleteAnnouncement removes the notice if present; misses are not reported.
func (s *announcementService) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	s.store.DeleteAnnouncement(announcementID)
	return nil
}

func (s *announcementService) ListAnnouncementsByChurch(ctx context.Context, churchID string) ([]domain.Announcement, error) {
	return s.store.ListAnnouncementsByChurch(churchID), nil
}
