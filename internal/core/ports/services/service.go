package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Church       ChurchSvcFacade
	User         UserSvcFacade
	Unit         UnitSvcFacade
	FirstTimer   FirstTimerSvcFacade
	Attendance   AttendanceSvcFacade
	Plan         PlanSvcFacade
	Announcement AnnouncementSvcFacade
	Property     PropertySvcFacade
	Event        EventSvcFacade
	Finance      FinanceSvcFacade

	Token              TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
