package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// ChurchResponse is the public shape of a tenant record.
type ChurchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	AdminID   string `json:"adminId"`
	CreatedAt string `json:"createdAt"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
}

// ToChurchResponse converts a domain.Church to its response DTO.
func ToChurchResponse(church *domain.Church) ChurchResponse {
	return ChurchResponse{
		ID:        church.ID,
		Name:      church.Name,
		City:      church.City,
		State:     church.State,
		Country:   church.Country,
		Phone:     church.Phone,
		Location:  church.Location,
		AdminID:   church.AdminID,
		CreatedAt: church.CreatedAt,
		Currency:  string(church.Currency),
		Status:    string(church.Status),
	}
}

// ToListChurchResponse converts a slice of domain.Church to response DTOs.
func ToListChurchResponse(churches []domain.Church) []ChurchResponse {
	out := make([]ChurchResponse, len(churches))
	for i := range churches {
		out[i] = ToChurchResponse(&churches[i])
	}
	return out
}

// UpdateChurchRequest defines the fields a church admin may edit on their
// tenant profile.
type UpdateChurchRequest struct {
	Name    *string `json:"name"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
}

// ToDomainChurchUpdate maps the request onto the store's partial-update shape.
func (r UpdateChurchRequest) ToDomainChurchUpdate() domain.ChurchUpdate {
	return domain.ChurchUpdate{
		Name:    r.Name,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
		Phone:   r.Phone,
	}
}

// SetCurrencyRequest switches the church's display currency. All stored
// monetary amounts are rescaled when the currency actually changes.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,oneof=USD NGN GBP"`
}

// PlatformOverviewResponse is the platform owner's cross-tenant summary.
type PlatformOverviewResponse struct {
	TotalChurches    int                     `json:"totalChurches"`
	ActiveChurches   int                     `json:"activeChurches"`
	TotalUsers       int                     `json:"totalUsers"`
	PendingApprovals int                     `json:"pendingApprovals"`
	Churches         []ChurchOverviewSummary `json:"churches"`
}

// ChurchOverviewSummary is one tenant's row in the platform overview.
type ChurchOverviewSummary struct {
	Church    ChurchResponse `json:"church"`
	UserCount int            `json:"userCount"`
}
