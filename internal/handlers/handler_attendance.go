package handlers

import (
	"net/http"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// attendanceHandler manages a church's head counts.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers attendance routes on the per-church group.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.GET("", h.listAttendance)
		attendance.POST("", h.recordAttendance)
		attendance.DELETE("/:id", h.deleteAttendance)
	}
}

// listAttendance godoc
// @Summary List attendance records
// @Tags attendance
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/attendance [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	records, err := h.attendanceService.ListAttendanceByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// recordAttendance godoc
// @Summary Record a service's head count
// @Description The total is computed server-side as male+female+children.
// @Tags attendance
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param attendance body dto.CreateAttendanceRequest true "Head counts"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/attendance [post]
func (h *attendanceHandler) recordAttendance(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	record, err := h.attendanceService.RecordAttendance(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to record attendance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// deleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Param church_id path string true "Church ID"
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/attendance/{id} [delete]
func (h *attendanceHandler) deleteAttendance(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete attendance record")
		return
	}
	c.Status(http.StatusNoContent)
}
