package services

import (
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. Every domain service shares the one tenant
// store; the advisor is an optional external collaborator.
func NewServiceContainer(cfg *config.Config, store portsrepo.TenantStoreFacade, advisor portssvc.AdvisorSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Church = NewChurchService(store)
	container.User = NewUserService(store)
	container.Unit = NewUnitService(store)
	container.FirstTimer = NewFirstTimerService(store, advisor)
	container.Attendance = NewAttendanceService(store)
	container.Plan = NewPlanService(store)
	container.Announcement = NewAnnouncementService(store)
	container.Property = NewPropertyService(store)
	container.Event = NewEventService(store)
	container.Finance = NewFinanceService(store)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Interface implementation checks.
var (
	_ portssvc.ChurchSvcFacade     = (*churchService)(nil)
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.FirstTimerSvcFacade = (*firstTimerService)(nil)
	_ portssvc.FinanceSvcFacade    = (*financeService)(nil)
)
