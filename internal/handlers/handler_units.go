package handlers

import (
	"net/http"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// unitHandler manages a church's departments and ministry teams.
type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func newUnitHandler(us portssvc.UnitSvcFacade) *unitHandler {
	return &unitHandler{unitService: us}
}

// registerUnitRoutes registers unit routes on the per-church group.
func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := newUnitHandler(unitService)

	units := rg.Group("/units")
	{
		units.GET("", h.listUnits)
		units.POST("", h.createUnit)
		units.PUT("/:id", h.updateUnit)
		units.DELETE("/:id", h.deleteUnit)
	}
}

// listUnits godoc
// @Summary List units
// @Tags units
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.UnitResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/units [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	units, err := h.unitService.ListUnitsByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUnitResponse(units))
}

// createUnit godoc
// @Summary Create a unit
// @Description Church-admin only.
// @Tags units
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param unit body dto.CreateUnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/units [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	_, churchID, ok := requireChurchAdmin(c)
	if !ok {
		return
	}
	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	unit, err := h.unitService.CreateUnit(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create unit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// updateUnit godoc
// @Summary Update a unit
// @Description Church-admin only.
// @Tags units
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "Unit ID"
// @Param unit body dto.UpdateUnitRequest true "Fields to update"
// @Success 200 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/units/{id} [put]
func (h *unitHandler) updateUnit(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	var req dto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	unit, err := h.unitService.UpdateUnit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// deleteUnit godoc
// @Summary Delete a unit
// @Description Church-admin only. Members and records referencing the unit keep their dangling ids.
// @Tags units
// @Param church_id path string true "Church ID"
// @Param id path string true "Unit ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/units/{id} [delete]
func (h *unitHandler) deleteUnit(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	if err := h.unitService.DeleteUnit(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete unit")
		return
	}
	c.Status(http.StatusNoContent)
}
