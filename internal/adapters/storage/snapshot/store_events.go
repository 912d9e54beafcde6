package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

func (s *Store) AddEvent(event domain.ChurchEvent) domain.ChurchEvent {
	event.ID = uuid.NewString()
	s.mutate(func(next *domain.Snapshot) bool {
		next.Events = append([]domain.ChurchEvent{event}, next.Events...)
		return true
	})
	return event
}

func (s *Store) UpdateEvent(eventID string, update domain.ChurchEventUpdate) *domain.ChurchEvent {
	var updated *domain.ChurchEvent
	s.mutate(func(next *domain.Snapshot) bool {
		events := append([]domain.ChurchEvent{}, next.Events...)
		for i := range events {
			if events[i].ID != eventID {
				continue
			}
			e := events[i]
			if update.Title != nil {
				e.Title = *update.Title
			}
			if update.Description != nil {
				e.Description = *update.Description
			}
			if update.Date != nil {
				e.Date = *update.Date
			}
			if update.Location != nil {
				e.Location = *update.Location
			}
			events[i] = e
			updated = &e
			next.Events = events
			return true
		}
		return false
	})
	return updated
}

func (s *Store) DeleteEvent(eventID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		events := make([]domain.ChurchEvent, 0, len(next.Events))
		for _, e := range next.Events {
			if e.ID != eventID {
				events = append(events, e)
			}
		}
		next.Events = events
		return true
	})
}

func (s *Store) ListEventsByChurch(churchID string) []domain.ChurchEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ChurchEvent{}
	for _, e := range s.snap.Events {
		if e.ChurchID == churchID {
			out = append(out, e)
		}
	}
	return out
}
