package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// UserResponse is the public shape of a user account; the password hash is
// never serialized out.
type UserResponse struct {
	ID                  string `json:"id"`
	ChurchID            string `json:"churchId"`
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	UnitID              string `json:"unitId,omitempty"`
	Status              string `json:"status"`
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	AnniversaryDate     string `json:"anniversaryDate,omitempty"`
	HasAccountingAccess bool   `json:"hasAccountingAccess"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                  user.ID,
		ChurchID:            user.ChurchID,
		FullName:            user.FullName,
		Email:               user.Email,
		Role:                string(user.Role),
		UnitID:              user.UnitID,
		Status:              string(user.Status),
		DateOfBirth:         user.DateOfBirth,
		AnniversaryDate:     user.AnniversaryDate,
		HasAccountingAccess: user.HasAccountingAccess,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName        *string `json:"fullName"`
	UnitID          *string `json:"unitId"`
	Role            *string `json:"role" binding:"omitempty,oneof=CHURCH_ADMIN UNIT_HEAD WORKER"`
	DateOfBirth     *string `json:"dateOfBirth"`
	AnniversaryDate *string `json:"anniversaryDate"`
}

// ToDomainUserUpdate maps the request onto the store's partial-update shape.
func (r UpdateUserRequest) ToDomainUserUpdate() domain.UserUpdate {
	update := domain.UserUpdate{
		FullName:        r.FullName,
		UnitID:          r.UnitID,
		DateOfBirth:     r.DateOfBirth,
		AnniversaryDate: r.AnniversaryDate,
	}
	if r.Role != nil {
		role := domain.UserRole(*r.Role)
		update.Role = &role
	}
	return update
}
