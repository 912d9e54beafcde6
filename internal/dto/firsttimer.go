package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// FollowUpLogResponse is one follow-up action on a visitor's history.
type FollowUpLogResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Action      string `json:"action"`
	PerformedBy string `json:"performedBy"`
}

// FirstTimerResponse is the public shape of a visitor record.
type FirstTimerResponse struct {
	ID          string                `json:"id"`
	ChurchID    string                `json:"churchId"`
	FullName    string                `json:"fullName"`
	Phone       string                `json:"phone"`
	Email       string                `json:"email,omitempty"`
	DateVisited string                `json:"dateVisited"`
	InvitedBy   string                `json:"invitedBy,omitempty"`
	AssignedTo  string                `json:"assignedTo,omitempty"`
	Status      string                `json:"status"`
	Notes       string                `json:"notes"`
	History     []FollowUpLogResponse `json:"history"`
}

// ToFirstTimerResponse converts a domain.FirstTimer to its response DTO.
func ToFirstTimerResponse(ft *domain.FirstTimer) FirstTimerResponse {
	history := make([]FollowUpLogResponse, len(ft.History))
	for i, entry := range ft.History {
		history[i] = FollowUpLogResponse{
			ID:          entry.ID,
			Date:        entry.Date,
			Action:      entry.Action,
			PerformedBy: entry.PerformedBy,
		}
	}
	return FirstTimerResponse{
		ID:          ft.ID,
		ChurchID:    ft.ChurchID,
		FullName:    ft.FullName,
		Phone:       ft.Phone,
		Email:       ft.Email,
		DateVisited: ft.DateVisited,
		InvitedBy:   ft.InvitedBy,
		AssignedTo:  ft.AssignedTo,
		Status:      string(ft.Status),
		Notes:       ft.Notes,
		History:     history,
	}
}

// ToListFirstTimerResponse converts a slice of domain.FirstTimer to response DTOs.
func ToListFirstTimerResponse(fts []domain.FirstTimer) []FirstTimerResponse {
	out := make([]FirstTimerResponse, len(fts))
	for i := range fts {
		out[i] = ToFirstTimerResponse(&fts[i])
	}
	return out
}

// CreateFirstTimerRequest defines the data for a new visitor record.
type CreateFirstTimerRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	DateVisited string `json:"dateVisited" binding:"required,dateonly"`
	InvitedBy   string `json:"invitedBy"`
	AssignedTo  string `json:"assignedTo"`
	Notes       string `json:"notes"`
}

// UpdateFirstTimerRequest defines the editable fields of a visitor record.
type UpdateFirstTimerRequest struct {
	FullName   *string `json:"fullName"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	InvitedBy  *string `json:"invitedBy"`
	AssignedTo *string `json:"assignedTo"`
	Status     *string `json:"status" binding:"omitempty,oneof='Needs Follow-up' Contacted 'Follow-up Scheduled' 'Joined a Unit' 'Not Interested' 'No Response' 'Converted to Member'"`
	Notes      *string `json:"notes"`
}

// ToDomainFirstTimerUpdate maps the request onto the store's partial-update shape.
func (r UpdateFirstTimerRequest) ToDomainFirstTimerUpdate() domain.FirstTimerUpdate {
	update := domain.FirstTimerUpdate{
		FullName:   r.FullName,
		Phone:      r.Phone,
		Email:      r.Email,
		InvitedBy:  r.InvitedBy,
		AssignedTo: r.AssignedTo,
		Notes:      r.Notes,
	}
	if r.Status != nil {
		status := domain.FollowUpStatus(*r.Status)
		update.Status = &status
	}
	return update
}

// LogFollowUpRequest records one follow-up action on a visitor.
type LogFollowUpRequest struct {
	Action string `json:"action" binding:"required"`
}

// SuggestionResponse carries the AI-drafted follow-up strategy.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}
