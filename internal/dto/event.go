package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// EventResponse is the public shape of a calendar entry.
type EventResponse struct {
	ID          string `json:"id"`
	ChurchID    string `json:"churchId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

// ToEventResponse converts a domain.ChurchEvent to its response DTO.
func ToEventResponse(event *domain.ChurchEvent) EventResponse {
	return EventResponse{
		ID:          event.ID,
		ChurchID:    event.ChurchID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
	}
}

// ToListEventResponse converts a slice of domain.ChurchEvent to response DTOs.
func ToListEventResponse(events []domain.ChurchEvent) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return out
}

// CreateEventRequest defines the data for a new calendar entry.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required,dateonly"`
	Location    string `json:"location"`
}

// UpdateEventRequest defines the editable fields of a calendar entry.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}

// ToDomainEventUpdate maps the request onto the store's partial-update shape.
func (r UpdateEventRequest) ToDomainEventUpdate() domain.ChurchEventUpdate {
	return domain.ChurchEventUpdate{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
	}
}
