package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

// AddAttendance records one service's head count. Total is computed from the
// three segments at creation and never re-validated afterwards.
func (s *Store) AddAttendance(record domain.AttendanceRecord) domain.AttendanceRecord {
	record.ID = uuid.NewString()
	record.Total = record.Male + record.Female + record.Children
	s.mutate(func(next *domain.Snapshot) bool {
		next.Attendance = append([]domain.AttendanceRecord{record}, next.Attendance...)
		return true
	})
	return record
}

func (s *Store) DeleteAttendance(recordID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		attendance := make([]domain.AttendanceRecord, 0, len(next.Attendance))
		for _, a := range next.Attendance {
			if a.ID != recordID {
				attendance = append(attendance, a)
			}
		}
		next.Attendance = attendance
		return true
	})
}

func (s *Store) ListAttendanceByChurch(churchID string) []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.AttendanceRecord{}
	for _, a := range s.snap.Attendance {
		if a.ChurchID == churchID {
			out = append(out, a)
		}
	}
	return out
}
