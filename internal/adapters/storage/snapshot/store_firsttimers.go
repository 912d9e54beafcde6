package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

// AddFirstTimer prepends so that the newest visitor appears first in lists.
func (s *Store) AddFirstTimer(ft domain.FirstTimer) domain.FirstTimer {
	ft.ID = uuid.NewString()
	if ft.Status == "" {
		ft.Status = domain.FollowUpNeeded
	}
	if ft.History == nil {
		ft.History = []domain.FollowUpLog{}
	}
	s.mutate(func(next *domain.Snapshot) bool {
		next.FirstTimers = append([]domain.FirstTimer{ft}, next.FirstTimers...)
		return true
	})
	return ft
}

func (s *Store) UpdateFirstTimer(firstTimerID string, update domain.FirstTimerUpdate) *domain.FirstTimer {
	var updated *domain.FirstTimer
	s.mutate(func(next *domain.Snapshot) bool {
		firstTimers := append([]domain.FirstTimer{}, next.FirstTimers...)
		for i := range firstTimers {
			if firstTimers[i].ID != firstTimerID {
				continue
			}
			ft := firstTimers[i]
			if update.FullName != nil {
				ft.FullName = *update.FullName
			}
			if update.Phone != nil {
				ft.Phone = *update.Phone
			}
			if update.Email != nil {
				ft.Email = *update.Email
			}
			if update.InvitedBy != nil {
				ft.InvitedBy = *update.InvitedBy
			}
			if update.AssignedTo != nil {
				ft.AssignedTo = *update.AssignedTo
			}
			if update.Status != nil {
				ft.Status = *update.Status
			}
			if update.Notes != nil {
				ft.Notes = *update.Notes
			}
			firstTimers[i] = ft
			updated = &ft
			next.FirstTimers = firstTimers
			return true
		}
		return false
	})
	return updated
}

func (s *Store) DeleteFirstTimer(firstTimerID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		firstTimers := make([]domain.FirstTimer, 0, len(next.FirstTimers))
		for _, ft := range next.FirstTimers {
			if ft.ID != firstTimerID {
				firstTimers = append(firstTimers, ft)
			}
		}
		next.FirstTimers = firstTimers
		return true
	})
}

// AppendFollowUpLog records a follow-up action in the visitor's history.
func (s *Store) AppendFollowUpLog(firstTimerID string, entry domain.FollowUpLog) *domain.FirstTimer {
	entry.ID = uuid.NewString()
	var updated *domain.FirstTimer
	s.mutate(func(next *domain.Snapshot) bool {
		firstTimers := append([]domain.FirstTimer{}, next.FirstTimers...)
		for i := range firstTimers {
			if firstTimers[i].ID != firstTimerID {
				continue
			}
			ft := firstTimers[i]
			ft.History = append(append([]domain.FollowUpLog{}, ft.History...), entry)
			firstTimers[i] = ft
			updated = &ft
			next.FirstTimers = firstTimers
			return true
		}
		return false
	})
	return updated
}

func (s *Store) FindFirstTimerByID(firstTimerID string) *domain.FirstTimer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.snap.FirstTimers {
		if s.snap.FirstTimers[i].ID == firstTimerID {
			ft := s.snap.FirstTimers[i]
			return &ft
		}
	}
	return nil
}

func (s *Store) ListFirstTimersByChurch(churchID string) []domain.FirstTimer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.FirstTimer{}
	for _, ft := range s.snap.FirstTimers {
		if ft.ChurchID == churchID {
			out = append(out, ft)
		}
	}
	return out
}
