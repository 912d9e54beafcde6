package handlers

import (
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// taskHandler manages a church's action plans.
type taskHandler struct {
	planService portssvc.PlanSvcFacade
}

func newTaskHandler(ps portssvc.PlanSvcFacade) *taskHandler {
	return &taskHandler{planService: ps}
}

// registerTaskRoutes registers action-plan routes on the per-church group.
func registerTaskRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newTaskHandler(planService)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// listTasks godoc
// @Summary List action plans
// @Description Unit heads only see plans belonging to their own unit.
// @Tags tasks
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.TaskResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	session, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	tasks, err := h.planService.ListTasksByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list tasks")
		return
	}

	visible := make([]domain.ActionPlan, 0, len(tasks))
	for _, task := range tasks {
		if authz.CanViewTask(session.User, task) || authz.IsPlatformOwner(session.User) {
			visible = append(visible, task)
		}
	}
	c.JSON(http.StatusOK, dto.ToListTaskResponse(visible))
}

// createTask godoc
// @Summary Create an action plan
// @Tags tasks
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param task body dto.CreateTaskRequest true "Plan details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	task, err := h.planService.CreateTask(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update an action plan
// @Tags tasks
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	task, err := h.planService.UpdateTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete an action plan
// @Tags tasks
// @Param church_id path string true "Church ID"
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	if _, _, ok := requireChurchAccess(c); !ok {
		return
	}
	if err := h.planService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}
