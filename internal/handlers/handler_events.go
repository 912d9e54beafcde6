package handlers

import (
	"net/http"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// eventHandler manages a church's calendar.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers calendar routes on the per-church group.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.createEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// listEvents godoc
// @Summary List calendar events
// @Tags events
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	events, err := h.eventService.ListEventsByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventResponse(events))
}

// createEvent godoc
// @Summary Create a calendar event
// @Description Church-admin only.
// @Tags events
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	_, churchID, ok := requireChurchAdmin(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	event, err := h.eventService.CreateEvent(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update a calendar event
// @Description Church-admin only.
// @Tags events
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete a calendar event
// @Description Church-admin only.
// @Tags events
// @Param church_id path string true "Church ID"
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}
