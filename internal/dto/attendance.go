package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// AttendanceResponse is one service's head count.
type AttendanceResponse struct {
	ID       string `json:"id"`
	ChurchID string `json:"churchId"`
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Male     int    `json:"male"`
	Female   int    `json:"female"`
	Children int    `json:"children"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to its response DTO.
func ToAttendanceResponse(record *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:       record.ID,
		ChurchID: record.ChurchID,
		Date:     record.Date,
		Total:    record.Total,
		Male:     record.Male,
		Female:   record.Female,
		Children: record.Children,
	}
}

// ToListAttendanceResponse converts a slice of domain.AttendanceRecord to response DTOs.
func ToListAttendanceResponse(records []domain.AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, len(records))
	for i := range records {
		out[i] = ToAttendanceResponse(&records[i])
	}
	return out
}

// CreateAttendanceRequest defines one service's count entry. The total is
// computed server-side from the three counts.
type CreateAttendanceRequest struct {
	Date     string `json:"date" binding:"required,dateonly"`
	Male     int    `json:"male" binding:"min=0"`
	Female   int    `json:"female" binding:"min=0"`
	Children int    `json:"children" binding:"min=0"`
}
