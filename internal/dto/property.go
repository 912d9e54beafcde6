package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// PropertyResponse is the public shape of an inventory asset.
type PropertyResponse struct {
	ID             string `json:"id"`
	ChurchID       string `json:"churchId"`
	UnitID         string `json:"unitId"`
	Name           string `json:"name"`
	FunctionalQty  int    `json:"functionalQty"`
	MaintenanceQty int    `json:"maintenanceQty"`
	DamagedQty     int    `json:"damagedQty"`
	Quantity       int    `json:"quantity"`
}

// ToPropertyResponse converts a domain.Property to its response DTO.
func ToPropertyResponse(prop *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:             prop.ID,
		ChurchID:       prop.ChurchID,
		UnitID:         prop.UnitID,
		Name:           prop.Name,
		FunctionalQty:  prop.FunctionalQty,
		MaintenanceQty: prop.MaintenanceQty,
		DamagedQty:     prop.DamagedQty,
		Quantity:       prop.Quantity,
	}
}

// ToListPropertyResponse converts a slice of domain.Property to response DTOs.
func ToListPropertyResponse(props []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(props))
	for i := range props {
		out[i] = ToPropertyResponse(&props[i])
	}
	return out
}

// CreatePropertyRequest defines the data for a new inventory asset. The
// aggregate quantity is computed server-side from the condition counts.
type CreatePropertyRequest struct {
	UnitID         string `json:"unitId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	FunctionalQty  int    `json:"functionalQty" binding:"min=0"`
	MaintenanceQty int    `json:"maintenanceQty" binding:"min=0"`
	DamagedQty     int    `json:"damagedQty" binding:"min=0"`
}

// UpdatePropertyRequest defines the editable fields of an inventory asset.
type UpdatePropertyRequest struct {
	UnitID         *string `json:"unitId"`
	Name           *string `json:"name"`
	FunctionalQty  *int    `json:"functionalQty" binding:"omitempty,min=0"`
	MaintenanceQty *int    `json:"maintenanceQty" binding:"omitempty,min=0"`
	DamagedQty     *int    `json:"damagedQty" binding:"omitempty,min=0"`
}

// ToDomainPropertyUpdate maps the request onto the store's partial-update shape.
func (r UpdatePropertyRequest) ToDomainPropertyUpdate() domain.PropertyUpdate {
	return domain.PropertyUpdate{
		UnitID:         r.UnitID,
		Name:           r.Name,
		FunctionalQty:  r.FunctionalQty,
		MaintenanceQty: r.MaintenanceQty,
		DamagedQty:     r.DamagedQty,
	}
}
