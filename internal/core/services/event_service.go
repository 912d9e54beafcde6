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

// eventService implements EventSvcFacade over the tenant store.
type eventService struct {
	BaseService
	store portsrepo.EventStoreFacade
}

// NewEventService creates a new calendar service backed by the tenant store.
func NewEventService(store portsrepo.EventStoreFacade) portssvc.EventSvcFacade {
	return &eventService{store: store}
}

func (s *eventService) CreateEvent(ctx context.Context, churchID string, req dto.CreateEventRequest) (*domain.ChurchEvent, error) {
	event := s.store.AddEvent(domain.ChurchEvent{
		ChurchID:    churchID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	})
	s.LogInfo(ctx, "Event created", slog.String("event_id", event.ID), slog.String("church_id", churchID))
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.ChurchEvent, error) {
	event := s.store.UpdateEvent(eventID, req.ToDomainEventUpdate())
	if event == nil {
		return nil, apperrors.ErrNotFound
	}
	return event, nil
}

// DeleteEvent removes the calendar entry if present; misses are not reported.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	s.store.DeleteEvent(eventID)
	return nil
}

func (s *eventService) ListEventsByChurch(ctx context.Context, churchID string) ([]domain.ChurchEvent, error) {
	return s.store.ListEventsByChurch(churchID), nil
}
