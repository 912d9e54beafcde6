package snapshot

import "github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"

// SeedSnapshot builds the demo dataset used on first run, so the application
// is usable without any external setup. Ids here are fixed, not generated, so
// the records can reference each other.
func SeedSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Churches: []domain.Church{
			{
				ID: "c1", Name: "Grace Fellowship Center",
				City: "Lagos", State: "Nigeria", Country: "Nigeria",
				Phone: "+234 000 000 0000", Location: "Lagos, Nigeria",
				AdminID: "u2", CreatedAt: "2023-01-10",
				Currency: domain.CurrencyUSD, Status: domain.ChurchActive,
			},
			{
				ID: "c2", Name: "Victory Chapel Int'l",
				City: "Houston", State: "TX", Country: "USA",
				Phone: "+1 000 000 0000", Location: "Houston, TX",
				AdminID: "u5", CreatedAt: "2023-05-20",
				Currency: domain.CurrencyUSD, Status: domain.ChurchActive,
			},
		},
		Users: []domain.User{
			{ID: "u1", ChurchID: domain.PlatformChurchID, FullName: "Super Admin", Email: "platform@ecclesia.com", Role: domain.RolePlatformOwner, Status: domain.UserApproved},
			{ID: "u2", ChurchID: "c1", FullName: "Admin John Doe", Email: "pastor@grace.com", Role: domain.RoleChurchAdmin, Status: domain.UserApproved, DateOfBirth: "1980-05-15"},
			{ID: "u3", ChurchID: "c1", FullName: "Sarah Smith", Email: "sarah@grace.com", Role: domain.RoleUnitHead, UnitID: "un1", Status: domain.UserApproved},
			{ID: "u4", ChurchID: "c1", FullName: "David King", Email: "david@grace.com", Role: domain.RoleWorker, UnitID: "un1", Status: domain.UserApproved, DateOfBirth: "1995-12-01"},
			{ID: "u5", ChurchID: "c1", FullName: "New Worker", Email: "new@grace.com", Role: domain.RoleWorker, UnitID: "un2", Status: domain.UserPending},
		},
		Units: []domain.Unit{
			{ID: "un1", ChurchID: "c1", Name: "Media & IT", HeadIDs: []string{"u3"}},
			{ID: "un2", ChurchID: "c1", Name: "Hospitality", HeadIDs: []string{}},
			{ID: "un3", ChurchID: "c1", Name: "Choir", HeadIDs: []string{}},
		},
		FirstTimers: []domain.FirstTimer{
			{
				ID: "ft1", ChurchID: "c1", FullName: "Alice Johnson", Phone: "+2348012345678", Email: "alice@test.com",
				DateVisited: "2024-05-10", InvitedBy: "Member X", AssignedTo: "u4",
				Status: domain.FollowUpNeeded, Notes: "Very interested in joining the choir.",
				History: []domain.FollowUpLog{},
			},
			{
				ID: "ft2", ChurchID: "c1", FullName: "Robert Brown", Phone: "+2348088889999",
				DateVisited: "2024-05-11", InvitedBy: "Self", AssignedTo: "u4",
				Status: domain.FollowUpContacted, Notes: "Sent a welcome SMS.",
				History: []domain.FollowUpLog{
					{ID: "h1", Date: "2024-05-12", Action: "Called and welcomed", PerformedBy: "u4"},
				},
			},
		},
		Attendance: []domain.AttendanceRecord{
			{ID: "a1", ChurchID: "c1", Date: "2024-04-07", Total: 450, Male: 200, Female: 150, Children: 100},
			{ID: "a2", ChurchID: "c1", Date: "2024-04-14", Total: 480, Male: 210, Female: 160, Children: 110},
			{ID: "a3", ChurchID: "c1", Date: "2024-04-21", Total: 420, Male: 190, Female: 140, Children: 90},
			{ID: "a4", ChurchID: "c1", Date: "2024-04-28", Total: 510, Male: 230, Female: 170, Children: 110},
			{ID: "a5", ChurchID: "c1", Date: "2024-05-05", Total: 550, Male: 250, Female: 180, Children: 120},
		},
		Tasks: []domain.ActionPlan{
			{ID: "t1", ChurchID: "c1", UnitID: "un1", Title: "Stream Sunday Service", Description: "Ensure the YouTube stream is active by 8:45 AM", StartDate: "2024-05-19", EndDate: "2024-05-19", AssignedTo: "u4", Priority: domain.PriorityHigh, Status: domain.TaskInProgress},
			{ID: "t2", ChurchID: "c1", UnitID: "un1", Title: "Edit Testimonial Video", Description: "Edit the 3-minute video for church website", StartDate: "2024-05-15", EndDate: "2024-05-25", AssignedTo: "u4", Priority: domain.PriorityMedium, Status: domain.TaskDone},
		},
		Announcements: []domain.Announcement{
			{ID: "an1", ChurchID: "c1", Title: "Workers Meeting", Body: "All workers must be present by 7:30 AM this Sunday.", CreatedAt: "2024-05-15"},
			{ID: "an2", ChurchID: "c1", UnitID: "un1", Title: "New Camera Gear", Body: "We have received new 4K cameras. Training session on Saturday.", CreatedAt: "2024-05-16"},
		},
		Properties: []domain.Property{
			{ID: "p1", ChurchID: "c1", UnitID: "un1", Name: "Canon R5 Camera", FunctionalQty: 2, Quantity: 2},
			{ID: "p2", ChurchID: "c1", UnitID: "un1", Name: "Video Switcher", FunctionalQty: 1, Quantity: 1},
		},
		Events: []domain.ChurchEvent{
			{ID: "e1", ChurchID: "c1", Title: "Worship Night", Description: "An evening of deep worship and encounter.", Date: "2024-05-30", Location: "Main Auditorium"},
		},
		Transactions: []domain.Transaction{},
		Budgets:      []domain.Budget{},
	}
}
