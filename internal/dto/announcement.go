package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// AnnouncementResponse is the public shape of a notice. An empty unitId means
// the announcement is church-wide.
type AnnouncementResponse struct {
	ID         string `json:"id"`
	ChurchID   string `json:"churchId"`
	UnitID     string `json:"unitId,omitempty"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// ToAnnouncementResponse converts a domain.Announcement to its response DTO.
func ToAnnouncementResponse(ann *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:         ann.ID,
		ChurchID:   ann.ChurchID,
		UnitID:     ann.UnitID,
		Title:      ann.Title,
		Body:       ann.Body,
		ExpiryDate: ann.ExpiryDate,
		CreatedAt:  ann.CreatedAt,
	}
}

// ToListAnnouncementResponse converts a slice of domain.Announcement to response DTOs.
func ToListAnnouncementResponse(anns []domain.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, len(anns))
	for i := range anns {
		out[i] = ToAnnouncementResponse(&anns[i])
	}
	return out
}

// CreateAnnouncementRequest defines the data for a new announcement. Leave
// unitId empty to address the whole church.
type CreateAnnouncementRequest struct {
	UnitID     string `json:"unitId"`
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
	ExpiryDate string `json:"expiryDate"`
}

// UpdateAnnouncementRequest defines the editable fields of an announcement.
type UpdateAnnouncementRequest struct {
	UnitID     *string `json:"unitId"`
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	ExpiryDate *string `json:"expiryDate"`
}

// ToDomainAnnouncementUpdate maps the request onto the store's partial-update shape.
func (r UpdateAnnouncementRequest) ToDomainAnnouncementUpdate() domain.AnnouncementUpdate {
	return domain.AnnouncementUpdate{
		UnitID:     r.UnitID,
		Title:      r.Title,
		Body:       r.Body,
		ExpiryDate: r.ExpiryDate,
	}
}
