package snapshot

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

func (s *Store) AddTask(task domain.ActionPlan) domain.ActionPlan {
	task.ID = uuid.NewString()
	if task.Status == "" {
		task.Status = domain.TaskInProgress
	}
	s.mutate(func(next *domain.Snapshot) bool {
		next.Tasks = append([]domain.ActionPlan{task}, next.Tasks...)
		return true
	})
	return task
}

// UpdateTask overwrites whatever fields are set, including status. Illegal
// status transitions (e.g. out of Done) are not blocked here; the UI hides
// the controls instead.
func (s *Store) UpdateTask(taskID string, update domain.ActionPlanUpdate) *domain.ActionPlan {
	var updated *domain.ActionPlan
	s.mutate(func(next *domain.Snapshot) bool {
		tasks := append([]domain.ActionPlan{}, next.Tasks...)
		for i := range tasks {
			if tasks[i].ID != taskID {
				continue
			}
			t := tasks[i]
			if update.Title != nil {
				t.Title = *update.Title
			}
			if update.Description != nil {
				t.Description = *update.Description
			}
			if update.StartDate != nil {
				t.StartDate = *update.StartDate
			}
			if update.EndDate != nil {
				t.EndDate = *update.EndDate
			}
			if update.AssignedTo != nil {
				t.AssignedTo = *update.AssignedTo
			}
			if update.Priority != nil {
				t.Priority = *update.Priority
			}
			if update.Status != nil {
				t.Status = *update.Status
			}
			tasks[i] = t
			updated = &t
			next.Tasks = tasks
			return true
		}
		return false
	})
	return updated
}

func (s *Store) DeleteTask(taskID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		tasks := make([]domain.ActionPlan, 0, len(next.Tasks))
		for _, t := range next.Tasks {
			if t.ID != taskID {
				tasks = append(tasks, t)
			}
		}
		next.Tasks = tasks
		return true
	})
}

func (s *Store) FindTaskByID(taskID string) *domain.ActionPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.snap.Tasks {
		if s.snap.Tasks[i].ID == taskID {
			t := s.snap.Tasks[i]
			return &t
		}
	}
	return nil
}

func (s *Store) ListTasksByChurch(churchID string) []domain.ActionPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ActionPlan{}
	for _, t := range s.snap.Tasks {
		if t.ChurchID == churchID {
			out = append(out, t)
		}
	}
	return out
}
