package snapshot

import (
	"time"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

func (s *Store) AddAnnouncement(ann domain.Announcement) domain.Announcement {
	ann.ID = uuid.NewString()
	ann.CreatedAt = time.Now().Format("2006-01-02")
	s.mutate(func(next *domain.Snapshot) bool {
		next.Announcements = append([]domain.Announcement{ann}, next.Announcements...)
		return true
	})
	return ann
}

func (s *Store) UpdateAnnouncement(announcementID string, update domain.AnnouncementUpdate) *domain.Announcement {
	var updated *domain.Announcement
	s.mutate(func(next *domain.Snapshot) bool {
		announcements := append([]domain.Announcement{}, next.Announcements...)
		for i := range announcements {
			if announcements[i].ID != announcementID {
				continue
			}
			a := announcements[i]
			if update.UnitID != nil {
				a.UnitID = *update.UnitID
			}
			if update.Title != nil {
				a.Title = *update.Title
			}
			if update.Body != nil {
				a.Body = *update.Body
			}
			if update.ExpiryDate != nil {
				a.ExpiryDate = *update.ExpiryDate
			}
			announcements[i] = a
			updated = &a
			next.Announcements = announcements
			return true
		}
		return false
	})
	return updated
}

func (s *Store) DeleteAnnouncement(announcementID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		announcements := make([]domain.Announcement, 0, len(next.Announcements))
		for _, a := range next.Announcements {
			if a.ID != announcementID {
				announcements = append(announcements, a)
			}
		}
		next.Announcements = announcements
		return true
	})
}

func (s *Store) ListAnnouncementsByChurch(churchID string) []domain.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Announcement{}
	for _, a := range s.snap.Announcements {
		if a.ChurchID == churchID {
			out = append(out, a)
		}
	}
	return out
}
