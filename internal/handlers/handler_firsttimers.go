package handlers

import (
	"net/http"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// firstTimerHandler manages a church's visitor records.
type firstTimerHandler struct {
	firstTimerService portssvc.FirstTimerSvcFacade
}

func newFirstTimerHandler(fs portssvc.FirstTimerSvcFacade) *firstTimerHandler {
	return &firstTimerHandler{firstTimerService: fs}
}

// registerFirstTimerRoutes registers visitor routes on the per-church group.
func registerFirstTimerRoutes(rg *gin.RouterGroup, firstTimerService portssvc.FirstTimerSvcFacade) {
	h := newFirstTimerHandler(firstTimerService)

	firstTimers := rg.Group("/first-timers")
	{
		firstTimers.GET("", h.listFirstTimers)
		firstTimers.POST("", h.createFirstTimer)
		firstTimers.PUT("/:id", h.updateFirstTimer)
		firstTimers.DELETE("/:id", h.deleteFirstTimer)
		firstTimers.POST("/:id/follow-ups", h.logFollowUp)
		firstTimers.GET("/:id/suggestion", h.suggestFollowUp)
	}
}

// listFirstTimers godoc
// @Summary List visitor records
// @Tags first-timers
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.FirstTimerResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/first-timers [get]
func (h *firstTimerHandler) listFirstTimers(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	fts, err := h.firstTimerService.ListFirstTimersByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list first timers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFirstTimerResponse(fts))
}

// createFirstTimer godoc
// @Summary Record a visitor
// @Tags first-timers
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param firstTimer body dto.CreateFirstTimerRequest true "Visitor details"
// @Success 201 {object} dto.FirstTimerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/first-timers [post]
func (h *firstTimerHandler) createFirstTimer(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	var req dto.CreateFirstTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ft, err := h.firstTimerService.CreateFirstTimer(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to record visitor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFirstTimerResponse(ft))
}

// updateFirstTimer godoc
// @Summary Update a visitor record
// @Tags first-timers
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "First timer ID"
// @Param firstTimer body dto.UpdateFirstTimerRequest true "Fields to update"
// @Success 200 {object} dto.FirstTimerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/first-timers/{id} [put]
func (h *firstTimerHandler) updateFirstTimer(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	var req dto.UpdateFirstTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ft, err := h.firstTimerService.UpdateFirstTimer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update visitor record")
		return
	}
	c.JSON(http.StatusOK, dto.ToFirstTimerResponse(ft))
}

// deleteFirstTimer godoc
// @Summary Delete a visitor record
// @Tags first-timers
// @Param church_id path string true "Church ID"
// @Param id path string true "First timer ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/first-timers/{id} [delete]
func (h *firstTimerHandler) deleteFirstTimer(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	if err := h.firstTimerService.DeleteFirstTimer(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete visitor record")
		return
	}
	c.Status(http.StatusNoContent)
}

// logFollowUp godoc
// @Summary Log a follow-up action
// @Description Appends a dated follow-up entry to the visitor's history, attributed to the caller.
// @Tags first-timers
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "First timer ID"
// @Param followUp body dto.LogFollowUpRequest true "Follow-up action"
// @Success 200 {object} dto.FirstTimerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/first-timers/{id}/follow-ups [post]
func (h *firstTimerHandler) logFollowUp(c *gin.Context) {
	session, _, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	var req dto.LogFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ft, err := h.firstTimerService.LogFollowUp(c.Request.Context(), c.Param("id"), req.Action, session.User.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to log follow-up")
		return
	}
	c.JSON(http.StatusOK, dto.ToFirstTimerResponse(ft))
}

// suggestFollowUp godoc
// @Summary Draft a follow-up strategy
// @Description Asks the AI advisory service for a short follow-up strategy based on the visitor's notes. Advisory failures surface as errors, never as stored data.
// @Tags first-timers
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "First timer ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Advisory service unavailable"
// @Security BearerAuth
// @Router /churches/{church_id}/first-timers/{id}/suggestion [get]
func (h *firstTimerHandler) suggestFollowUp(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	suggestion, err := h.firstTimerService.SuggestFollowUp(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAdvisoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuggestionResponse{Suggestion: suggestion})
}
