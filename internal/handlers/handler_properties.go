package handlers

import (
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// propertyHandler manages a church's inventory.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
}

func newPropertyHandler(ps portssvc.PropertySvcFacade) *propertyHandler {
	return &propertyHandler{propertyService: ps}
}

// registerPropertyRoutes registers inventory routes on the per-church group.
func registerPropertyRoutes(rg *gin.RouterGroup, propertyService portssvc.PropertySvcFacade) {
	h := newPropertyHandler(propertyService)

	properties := rg.Group("/properties")
	{
		properties.GET("", h.listProperties)
		properties.POST("", h.createProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
	}
}

// listProperties godoc
// @Summary List inventory
// @Description Unit heads only see assets belonging to their own unit.
// @Tags properties
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.PropertyResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	session, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	props, err := h.propertyService.ListPropertiesByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list properties")
		return
	}

	visible := make([]domain.Property, 0, len(props))
	for _, prop := range props {
		if authz.CanViewProperty(session.User, prop) || authz.IsPlatformOwner(session.User) {
			visible = append(visible, prop)
		}
	}
	c.JSON(http.StatusOK, dto.ToListPropertyResponse(visible))
}

// createProperty godoc
// @Summary Record an inventory asset
// @Description The aggregate quantity is computed server-side from the condition counts.
// @Tags properties
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param property body dto.CreatePropertyRequest true "Asset details"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	prop, err := h.propertyService.CreateProperty(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to record property")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPropertyResponse(prop))
}

// updateProperty godoc
// @Summary Update an inventory asset
// @Description The aggregate quantity is recomputed from the merged condition counts.
// @Tags properties
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "Property ID"
// @Param property body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/properties/{id} [put]
func (h *propertyHandler) updateProperty(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	prop, err := h.propertyService.UpdateProperty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update property")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyResponse(prop))
}

// deleteProperty godoc
// @Summary Delete an inventory asset
// @Tags properties
// @Param church_id path string true "Church ID"
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/properties/{id} [delete]
func (h *propertyHandler) deleteProperty(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	if err := h.propertyService.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete property")
		return
	}
	c.Status(http.StatusNoContent)
}
