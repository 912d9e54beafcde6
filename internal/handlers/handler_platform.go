package handlers

import (
	"net/http"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// platformHandler serves the platform owner's cross-tenant console.
type platformHandler struct {
	churchService portssvc.ChurchSvcFacade
}

func newPlatformHandler(cs portssvc.ChurchSvcFacade) *platformHandler {
	return &platformHandler{churchService: cs}
}

// registerPlatformRoutes registers the owner-only routes.
func registerPlatformRoutes(rg *gin.RouterGroup, churchService portssvc.ChurchSvcFacade) {
	h := newPlatformHandler(churchService)

	platform := rg.Group("/platform")
	{
		platform.GET("/overview", h.overview)
		platform.GET("/churches", h.listChurches)
		platform.POST("/churches/:church_id/suspend", h.suspendChurch)
		platform.POST("/churches/:church_id/activate", h.activateChurch)
	}
}

// overview godoc
// @Summary Platform overview
// @Description Aggregates tenant and user counts across all churches.
// @Tags platform
// @Produce json
// @Success 200 {object} dto.PlatformOverviewResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /platform/overview [get]
func (h *platformHandler) overview(c *gin.Context) {
	if _, ok := requirePlatformOwner(c); !ok {
		return
	}
	overview, err := h.churchService.PlatformOverview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// listChurches godoc
// @Summary List all churches
// @Description Lists every tenant on the platform.
// @Tags platform
// @Produce json
// @Success 200 {array} dto.ChurchResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /platform/churches [get]
func (h *platformHandler) listChurches(c *gin.Context) {
	if _, ok := requirePlatformOwner(c); !ok {
		return
	}
	churches, err := h.churchService.ListChurches(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list churches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChurchResponse(churches))
}

// suspendChurch godoc
// @Summary Suspend a church
// @Description Marks the tenant SUSPENDED; its members are locked out until reactivation.
// @Tags platform
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {object} dto.ChurchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /platform/churches/{church_id}/suspend [post]
func (h *platformHandler) suspendChurch(c *gin.Context) {
	if _, ok := requirePlatformOwner(c); !ok {
		return
	}
	church, err := h.churchService.SuspendChurch(c.Request.Context(), c.Param("church_id"))
	if err != nil {
		respondServiceError(c, err, "Failed to suspend church")
		return
	}
	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// activateChurch godoc
// @Summary Reactivate a church
// @Description Marks the tenant ACTIVE again.
// @Tags platform
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {object} dto.ChurchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /platform/churches/{church_id}/activate [post]
func (h *platformHandler) activateChurch(c *gin.Context) {
	if _, ok := requirePlatformOwner(c); !ok {
		return
	}
	church, err := h.churchService.ActivateChurch(c.Request.Context(), c.Param("church_id"))
	if err != nil {
		respondServiceError(c, err, "Failed to activate church")
		return
	}
	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}
