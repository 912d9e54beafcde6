package services

import (
	"context"
	"log/slog"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// planService implements PlanSvcFacade over the tenant store.
type planService struct {
	BaseService
	store portsrepo.PlanStoreFacade
}

// NewPlanService creates a new action-plan service backed by the tenant store.
func NewPlanService(store portsrepo.PlanStoreFacade) portssvc.PlanSvcFacade {
	return &planService{store: store}
}

func (s *planService) CreateTask(ctx context.Context, churchID string, req dto.CreateTaskRequest) (*domain.ActionPlan, error) {
	task := s.store.AddTask(domain.ActionPlan{
		ChurchID:    churchID,
		UnitID:      req.UnitID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AssignedTo:  req.AssignedTo,
		Priority:    domain.Priority(req.Priority),
		Status:      domain.TaskInProgress,
	})
	s.LogInfo(ctx, "Task created", slog.String("task_id", task.ID), slog.String("church_id", churchID))
	return &task, nil
}

func (s *planService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.ActionPlan, error) {
	task := s.store.UpdateTask(taskID, req.ToDomainTaskUpdate())
	if task == nil {
		return nil, apperrors.ErrNotFound
	}
	return task, nil
}

func (s *planService) DeleteTask(ctx context.Context, taskID string) error {
	if s.store.FindTaskByID(taskID) == nil {
		return apperrors.ErrNotFound
	}
	s.store.DeleteTask(taskID)
	return nil
}

func (s *planService) GetTaskByID(ctx context.Context, taskID string) (*domain.ActionPlan, error) {
	task := s.store.FindTaskByID(taskID)
	if task == nil {
		return nil, apperrors.ErrNotFound
	}
	return task, nil
}

func (s *planService) ListTasksByChurch(ctx context.Context, churchID string) ([]domain.ActionPlan, error) {
	return s.store.ListTasksByChurch(churchID), nil
}
