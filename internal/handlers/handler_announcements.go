package handlers

import (
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// announcementHandler manages a church's notices.
type announcementHandler struct {
	announcementService portssvc.AnnouncementSvcFacade
}

func newAnnouncementHandler(as portssvc.AnnouncementSvcFacade) *announcementHandler {
	return &announcementHandler{announcementService: as}
}

// registerAnnouncementRoutes registers announcement routes on the per-church group.
func registerAnnouncementRoutes(rg *gin.RouterGroup, announcementService portssvc.AnnouncementSvcFacade) {
	h := newAnnouncementHandler(announcementService)

	announcements := rg.Group("/announcements")
	{
		announcements.GET("", h.listAnnouncements)
		announcements.POST("", h.createAnnouncement)
		announcements.PUT("/:id", h.updateAnnouncement)
		announcements.DELETE("/:id", h.deleteAnnouncement)
	}
}

// listAnnouncements godoc
// @Summary List announcements
// @Description Unit-scoped announcements are only visible to members of that unit; church admins see everything.
// @Tags announcements
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.AnnouncementResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/announcements [get]
func (h *announcementHandler) listAnnouncements(c *gin.Context) {
	session, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	anns, err := h.announcementService.ListAnnouncementsByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list announcements")
		return
	}

	visible := make([]domain.Announcement, 0, len(anns))
	for _, ann := range anns {
		if authz.CanViewAnnouncement(session.User, ann) || authz.IsPlatformOwner(session.User) {
			visible = append(visible, ann)
		}
	}
	c.JSON(http.StatusOK, dto.ToListAnnouncementResponse(visible))
}

// createAnnouncement godoc
// @Summary Post an announcement
// @Description Church-admin only. Leave unitId empty to address the whole church.
// @Tags announcements
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param announcement body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/announcements [post]
func (h *announcementHandler) createAnnouncement(c *gin.Context) {
	_, churchID, ok := requireChurchAdmin(c)
	if !ok {
		return
	}
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ann, err := h.announcementService.CreateAnnouncement(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to post announcement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(ann))
}

// updateAnnouncement godoc
// @Summary Update an announcement
// @Description Church-admin only.
// @Tags announcements
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "Announcement ID"
// @Param announcement body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/announcements/{id} [put]
func (h *announcementHandler) updateAnnouncement(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ann, err := h.announcementService.UpdateAnnouncement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update announcement")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(ann))
}

// deleteAnnouncement godoc
// @Summary Delete an announcement
// @Description Church-admin only.
// @Tags announcements
// @Param church_id path string true "Church ID"
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/announcements/{id} [delete]
func (h *announcementHandler) deleteAnnouncement(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete announcement")
		return
	}
	c.Status(http.StatusNoContent)
}
