package dto

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// TaskResponse is the public shape of an action plan.
type TaskResponse struct {
	ID          string `json:"id"`
	ChurchID    string `json:"churchId"`
	UnitID      string `json:"unitId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	AssignedTo  string `json:"assignedTo"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// ToTaskResponse converts a domain.ActionPlan to its response DTO.
func ToTaskResponse(task *domain.ActionPlan) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		ChurchID:    task.ChurchID,
		UnitID:      task.UnitID,
		Title:       task.Title,
		Description: task.Description,
		StartDate:   task.StartDate,
		EndDate:     task.EndDate,
		AssignedTo:  task.AssignedTo,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
	}
}

// ToListTaskResponse converts a slice of domain.ActionPlan to response DTOs.
func ToListTaskResponse(tasks []domain.ActionPlan) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}

// CreateTaskRequest defines the data for a new action plan.
type CreateTaskRequest struct {
	UnitID      string `json:"unitId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required,dateonly"`
	EndDate     string `json:"endDate" binding:"required,dateonly"`
	AssignedTo  string `json:"assignedTo"`
	Priority    string `json:"priority" binding:"required,oneof=High Medium Low"`
}

// UpdateTaskRequest defines the editable fields of an action plan.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	AssignedTo  *string `json:"assignedTo"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Status      *string `json:"status" binding:"omitempty,oneof='In Progress' Done Suspended"`
}

// ToDomainTaskUpdate maps the request onto the store's partial-update shape.
func (r UpdateTaskRequest) ToDomainTaskUpdate() domain.ActionPlanUpdate {
	update := domain.ActionPlanUpdate{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		AssignedTo:  r.AssignedTo,
	}
	if r.Priority != nil {
		priority := domain.Priority(*r.Priority)
		update.Priority = &priority
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		update.Status = &status
	}
	return update
}
