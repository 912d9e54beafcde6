package services

import (
	"context"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// UnitSvcFacade manages departments and ministry teams within a church.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, churchID string, req dto.CreateUnitRequest) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, unitID string, req dto.UpdateUnitRequest) (*domain.Unit, error)
	DeleteUnit(ctx context.Context, unitID string) error
	GetUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)
	ListUnitsByChurch(ctx context.Context, churchID string) ([]domain.Unit, error)
}

// FirstTimerSvcFacade manages visitor records and their follow-up workflow.
type FirstTimerSvcFacade interface {
	CreateFirstTimer(ctx context.Context, churchID string, req dto.CreateFirstTimerRequest) (*domain.FirstTimer, error)
	UpdateFirstTimer(ctx context.Context, firstTimerID string, req dto.UpdateFirstTimerRequest) (*domain.FirstTimer, error)
	DeleteFirstTimer(ctx context.Context, firstTimerID string) error
	GetFirstTimerByID(ctx context.Context, firstTimerID string) (*domain.FirstTimer, error)
	ListFirstTimersByChurch(ctx context.Context, churchID string) ([]domain.FirstTimer, error)

	// LogFollowUp appends a dated follow-up action to the visitor's history.
	LogFollowUp(ctx context.Context, firstTimerID, action, performedBy string) (*domain.FirstTimer, error)

	// SuggestFollowUp drafts a follow-up strategy for the visitor via the
	// external advisory service.
	SuggestFollowUp(ctx context.Context, firstTimerID string) (string, error)
}

// AttendanceSvcFacade manages per-service head counts.
type AttendanceSvcFacade interface {
	RecordAttendance(ctx context.Context, churchID string, req dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error)
	DeleteAttendance(ctx context.Context, recordID string) error
	ListAttendanceByChurch(ctx context.Context, churchID string) ([]domain.AttendanceRecord, error)
}

// PlanSvcFacade manages action plans (tasks) assigned within units.
type PlanSvcFacade interface {
	CreateTask(ctx context.Context, churchID string, req dto.CreateTaskRequest) (*domain.ActionPlan, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.ActionPlan, error)
	DeleteTask(ctx context.Context, taskID string) error
	GetTaskByID(ctx context.Context, taskID string) (*domain.ActionPlan, error)
	ListTasksByChurch(ctx context.Context, churchID string) ([]domain.ActionPlan, error)
}

// AnnouncementSvcFacade manages church-wide and unit-scoped notices.
type AnnouncementSvcFacade interface {
	CreateAnnouncement(ctx context.Context, churchID string, req dto.CreateAnnouncementRequest) (*domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcementID string, req dto.UpdateAnnouncementRequest) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, announcementID string) error
	ListAnnouncementsByChurch(ctx context.Context, churchID string) ([]domain.Announcement, error)
}

// PropertySvcFacade manages unit inventory.
type PropertySvcFacade interface {
	CreateProperty(ctx context.Context, churchID string, req dto.CreatePropertyRequest) (*domain.Property, error)
	UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error)
	DeleteProperty(ctx context.Context, propertyID string) error
	ListPropertiesByChurch(ctx context.Context, churchID string) ([]domain.Property, error)
}

// EventSvcFacade manages the church calendar.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, churchID string, req dto.CreateEventRequest) (*domain.ChurchEvent, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.ChurchEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListEventsByChurch(ctx context.Context, churchID string) ([]domain.ChurchEvent, error)
}

// FinanceSvcFacade manages the bookkeeping ledger and budgets.
type FinanceSvcFacade interface {
	// RecordTransaction appends a ledger entry. Expense entries accrue onto
	// every budget of the church whose category matches exactly.
	RecordTransaction(ctx context.Context, churchID, recordedBy string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactionsByChurch(ctx context.Context, churchID string) ([]domain.Transaction, error)

	CreateBudget(ctx context.Context, churchID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
	ListBudgetsByChurch(ctx context.Context, churchID string) ([]domain.Budget, error)

	// Summary aggregates the headline income/expense/balance figures.
	Summary(ctx context.Context, churchID string) (*dto.FinanceSummaryResponse, error)
}
