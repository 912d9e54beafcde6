package domain

// TaskStatus is the three-state machine for action plans:
// IN_PROGRESS <-> SUSPENDED, either -> DONE. The store does not block illegal
// transitions; only the presentation layer hides the controls.
type TaskStatus string

const (
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
	TaskSuspended  TaskStatus = "Suspended"
)

// Priority ranks action plans for display.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ActionPlan is a task assigned to a user within a unit.
type ActionPlan struct {
	ID          string     `json:"id"`
	ChurchID    string     `json:"churchId"`
	UnitID      string     `json:"unitId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	AssignedTo  string     `json:"assignedTo"` // user ID
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
}

// ActionPlanUpdate carries a partial update of an ActionPlan (shallow merge).
type ActionPlanUpdate struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	StartDate   *string     `json:"startDate"`
	EndDate     *string     `json:"endDate"`
	AssignedTo  *string     `json:"assignedTo"`
	Priority    *Priority   `json:"priority"`
	Status      *TaskStatus `json:"status"`
}
