package services

import (
	"context"
	"log/slog"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// attendanceService implements AttendanceSvcFacade over the tenant store.
type attendanceService struct {
	BaseService
	store portsrepo.AttendanceStoreFacade
}

// NewAttendanceService creates a new attendance service backed by the tenant store.
func NewAttendanceService(store portsrepo.AttendanceStoreFacade) portssvc.AttendanceSvcFacade {
	return &attendanceService{store: store}
}

func (s *attendanceService) RecordAttendance(ctx context.Context, churchID string, req dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error) {
	record := s.store.AddAttendance(domain.AttendanceRecord{
		ChurchID: churchID,
		Date:     req.Date,
		Male:     req.Male,
		Female:   req.Female,
		Children: req.Children,
	})
	s.LogInfo(ctx, "Attendance recorded",
		slog.String("record_id", record.ID),
		slog.String("church_id", churchID),
		slog.Int("total", record.Total))
	return &record, nil
}

// DeleteAttendance removes the record if present. Attendance deletes are not
// reported as misses; the collection has no by-id lookup.
func (s *attendanceService) DeleteAttendance(ctx context.Context, recordID string) error {
	s.store.DeleteAttendance(recordID)
	return nil
}

func (s *attendanceService) ListAttendanceByChurch(ctx context.Context, churchID string) ([]domain.AttendanceRecord, error) {
	return s.store.ListAttendanceByChurch(churchID), nil
}
