package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// UnitResponse is the public shape of a department or ministry team.
type UnitResponse struct {
	ID       string   `json:"id"`
	ChurchID string   `json:"churchId"`
	Name     string   `json:"name"`
	HeadIDs  []string `json:"headIds"`
}

// ToUnitResponse converts a domain.Unit to its response DTO.
func ToUnitResponse(unit *domain.Unit) UnitResponse {
	return UnitResponse{
		ID:       unit.ID,
		ChurchID: unit.ChurchID,
		Name:     unit.Name,
		HeadIDs:  unit.HeadIDs,
	}
}

// ToListUnitResponse converts a slice of domain.Unit to response DTOs.
func ToListUnitResponse(units []domain.Unit) []UnitResponse {
	out := make([]UnitResponse, len(units))
	for i := range units {
		out[i] = ToUnitResponse(&units[i])
	}
	return out
}

// CreateUnitRequest defines the data for a new unit.
type CreateUnitRequest struct {
	Name    string   `json:"name" binding:"required"`
	HeadIDs []string `json:"headIds"`
}

// UpdateUnitRequest defines the editable fields of a unit.
type UpdateUnitRequest struct {
	Name    *string   `json:"name"`
	HeadIDs *[]string `json:"headIds"`
}

// ToDomainUnitUpdate maps the request onto the store's partial-update shape.
func (r UpdateUnitRequest) ToDomainUnitUpdate() domain.UnitUpdate {
	return domain.UnitUpdate{
		Name:    r.Name,
		HeadIDs: r.HeadIDs,
	}
}
