package repositories

import (
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// The tenant store is the single source of truth for all entities. Every
// mutation is a total function over the current snapshot: lookup misses are
// silent no-ops, adds assign fresh opaque ids, updates shallow-merge, deletes
// filter without existence checks. Update operations return the updated
// entity, or nil when the id did not match; callers decide whether that is an
// error. The store performs no authorization on reads or writes; that trust
// boundary lives in the presentation layer.

// ChurchStoreFacade covers tenant records and the one non-trivial operation,
// currency rescaling.
type ChurchStoreFacade interface {
	AddChurch(church domain.Church) domain.Church
	UpdateChurch(churchID string, update domain.ChurchUpdate) *domain.Church
	FindChurchByID(churchID string) *domain.Church
	ListChurches() []domain.Church

	// SetChurchCurrency atomically rewrites the church's currency plus every
	// transaction and budget amount of that church by rate(target)/rate(source),
	// each field rounded to 2dp independently. A no-op (including persistence)
	// when target equals the current currency or either rate is unknown.
	SetChurchCurrency(churchID string, target domain.CurrencyCode) *domain.Church
}

// UserStoreFacade covers accounts and the single-device session the original
// snapshot carries.
type UserStoreFacade interface {
	RegisterUser(user domain.User) domain.User
	UpdateUser(userID string, update domain.UserUpdate) *domain.User
	DeleteUser(userID string)
	FindUserByID(userID string) *domain.User
	FindUserByEmail(email string) *domain.User // case-insensitive
	ListUsersByChurch(churchID string) []domain.User

	// ApproveUser unconditionally sets status APPROVED; idempotent.
	ApproveUser(userID string) *domain.User
	// ToggleAccountingAccess flips the flag; it cannot be set to an explicit value.
	ToggleAccountingAccess(userID string) *domain.User

	// Login matches by email (case-insensitive) and sets the snapshot's
	// current user and church. A miss leaves the session unchanged and is not
	// reported; callers pre-check existence and account state.
	Login(email string) *domain.User
	Logout()
}

type UnitStoreFacade interface {
	AddUnit(unit domain.Unit) domain.Unit
	UpdateUnit(unitID string, update domain.UnitUpdate) *domain.Unit
	DeleteUnit(unitID string)
	FindUnitByID(unitID string) *domain.Unit
	ListUnitsByChurch(churchID string) []domain.Unit
}

type FirstTimerStoreFacade interface {
	AddFirstTimer(ft domain.FirstTimer) domain.FirstTimer
	UpdateFirstTimer(firstTimerID string, update domain.FirstTimerUpdate) *domain.FirstTimer
	DeleteFirstTimer(firstTimerID string)
	AppendFollowUpLog(firstTimerID string, entry domain.FollowUpLog) *domain.FirstTimer
	FindFirstTimerByID(firstTimerID string) *domain.FirstTimer
	ListFirstTimersByChurch(churchID string) []domain.FirstTimer
}

type AttendanceStoreFacade interface {
	// AddAttendance computes Total as male+female+children.
	AddAttendance(record domain.AttendanceRecord) domain.AttendanceRecord
	DeleteAttendance(recordID string)
	ListAttendanceByChurch(churchID string) []domain.AttendanceRecord
}

type PlanStoreFacade interface {
	AddTask(task domain.ActionPlan) domain.ActionPlan
	UpdateTask(taskID string, update domain.ActionPlanUpdate) *domain.ActionPlan
	DeleteTask(taskID string)
	FindTaskByID(taskID string) *domain.ActionPlan
	ListTasksByChurch(churchID string) []domain.ActionPlan
}

type AnnouncementStoreFacade interface {
	AddAnnouncement(ann domain.Announcement) domain.Announcement
	UpdateAnnouncement(announcementID string, update domain.AnnouncementUpdate) *domain.Announcement
	DeleteAnnouncement(announcementID string)
	ListAnnouncementsByChurch(churchID string) []domain.Announcement
}

type PropertyStoreFacade interface {
	// Add and update recompute Quantity from the three condition counts.
	AddProperty(prop domain.Property) domain.Property
	UpdateProperty(propertyID string, update domain.PropertyUpdate) *domain.Property
	DeleteProperty(propertyID string)
	ListPropertiesByChurch(churchID string) []domain.Property
}

type EventStoreFacade interface {
	AddEvent(event domain.ChurchEvent) domain.ChurchEvent
	UpdateEvent(eventID string, update domain.ChurchEventUpdate) *domain.ChurchEvent
	DeleteEvent(eventID string)
	ListEventsByChurch(churchID string) []domain.ChurchEvent
}

type FinanceStoreFacade interface {
	// AddTransaction prepends the entry; when it is an expense, every budget
	// of the same church whose category matches byte-for-byte has its
	// SpentAmount incremented by the transaction amount.
	AddTransaction(tx domain.Transaction) domain.Transaction
	AddBudget(budget domain.Budget) domain.Budget
	DeleteBudget(budgetID string)
	ListTransactionsByChurch(churchID string) []domain.Transaction
	ListBudgetsByChurch(churchID string) []domain.Budget
	SumTransactionsByType(churchID string, txType domain.TransactionType) decimal.Decimal
}

// TenantStoreFacade is the full store contract consumed by the service layer.
type TenantStoreFacade interface {
	ChurchStoreFacade
	UserStoreFacade
	UnitStoreFacade
	FirstTimerStoreFacade
	AttendanceStoreFacade
	PlanStoreFacade
	AnnouncementStoreFacade
	PropertyStoreFacade
	EventStoreFacade
	FinanceStoreFacade

	// Snapshot returns the current immutable snapshot. Callers must not
	// mutate it; the platform owner's aggregate views read across tenants
	// through it.
	Snapshot() *domain.Snapshot
}
