package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

var (
	platformOwner = &domain.User{ID: "u1", ChurchID: domain.PlatformChurchID, Role: domain.RolePlatformOwner, Status: domain.UserApproved}
	admin         = &domain.User{ID: "u2", ChurchID: "c1", Role: domain.RoleChurchAdmin, Status: domain.UserApproved}
	unitHead      = &domain.User{ID: "u3", ChurchID: "c1", Role: domain.RoleUnitHead, UnitID: "un1", Status: domain.UserApproved}
	worker        = &domain.User{ID: "u4", ChurchID: "c1", Role: domain.RoleWorker, UnitID: "un1", Status: domain.UserApproved}
)

func TestCanAccessChurch(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		churchID string
		want     bool
	}{
		{"nil user", nil, "c1", false},
		{"own church", worker, "c1", true},
		{"foreign church", worker, "c2", false},
		{"admin foreign church", admin, "c2", false},
		{"platform owner any church", platformOwner, "c2", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanAccessChurch(tt.user, tt.churchID))
		})
	}
}

func TestCanViewAnnouncement(t *testing.T) {
	global := domain.Announcement{ID: "an1", ChurchID: "c1"}
	unitScoped := domain.Announcement{ID: "an2", ChurchID: "c1", UnitID: "un1"}
	otherUnit := domain.Announcement{ID: "an3", ChurchID: "c1", UnitID: "un2"}
	foreign := domain.Announcement{ID: "an4", ChurchID: "c2"}

	tests := []struct {
		name string
		user *domain.User
		ann  domain.Announcement
		want bool
	}{
		{"worker sees global", worker, global, true},
		{"worker sees own unit", worker, unitScoped, true},
		{"worker blocked from other unit", worker, otherUnit, false},
		{"unit head blocked from other unit", unitHead, otherUnit, false},
		{"admin sees every unit", admin, otherUnit, true},
		{"foreign tenant hidden even from admin", admin, foreign, false},
		{"platform owner not in tenant", platformOwner, global, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanViewAnnouncement(tt.user, tt.ann))
		})
	}
}

func TestCanViewTask(t *testing.T) {
	ownUnit := domain.ActionPlan{ID: "t1", ChurchID: "c1", UnitID: "un1"}
	otherUnit := domain.ActionPlan{ID: "t2", ChurchID: "c1", UnitID: "un2"}

	assert.True(t, authz.CanViewTask(worker, ownUnit))
	assert.True(t, authz.CanViewTask(worker, otherUnit))
	assert.True(t, authz.CanViewTask(admin, otherUnit))
	assert.True(t, authz.CanViewTask(unitHead, ownUnit))
	assert.False(t, authz.CanViewTask(unitHead, otherUnit))
	assert.False(t, authz.CanViewTask(worker, domain.ActionPlan{ChurchID: "c2"}))
}

func TestCanViewProperty(t *testing.T) {
	ownUnit := domain.Property{ID: "p1", ChurchID: "c1", UnitID: "un1"}
	otherUnit := domain.Property{ID: "p2", ChurchID: "c1", UnitID: "un2"}

	assert.True(t, authz.CanViewProperty(admin, otherUnit))
	assert.True(t, authz.CanViewProperty(worker, otherUnit))
	assert.True(t, authz.CanViewProperty(unitHead, ownUnit))
	assert.False(t, authz.CanViewProperty(unitHead, otherUnit))
}

func TestCanAccessAccounting(t *testing.T) {
	grantedWorker := &domain.User{ID: "u6", ChurchID: "c1", Role: domain.RoleWorker, HasAccountingAccess: true}

	assert.True(t, authz.CanAccessAccounting(admin))
	assert.True(t, authz.CanAccessAccounting(grantedWorker))
	assert.False(t, authz.CanAccessAccounting(worker))
	assert.False(t, authz.CanAccessAccounting(unitHead))
	assert.False(t, authz.CanAccessAccounting(nil))
}

func TestIsChurchAdmin(t *testing.T) {
	assert.True(t, authz.IsChurchAdmin(admin, "c1"))
	assert.False(t, authz.IsChurchAdmin(admin, "c2"))
	assert.False(t, authz.IsChurchAdmin(worker, "c1"))
	assert.False(t, authz.IsChurchAdmin(nil, "c1"))
}

func TestGate(t *testing.T) {
	active := &domain.Church{ID: "c1", Status: domain.ChurchActive}
	suspended := &domain.Church{ID: "c1", Status: domain.ChurchSuspended}
	pending := &domain.User{ID: "u5", ChurchID: "c1", Role: domain.RoleWorker, Status: domain.UserPending}

	tests := []struct {
		name   string
		user   *domain.User
		church *domain.Church
		want   authz.GateState
	}{
		{"no user", nil, active, authz.GateNoSession},
		{"pending user", pending, active, authz.GatePendingApproval},
		{"pending wins over suspension", pending, suspended, authz.GatePendingApproval},
		{"approved user active church", worker, active, authz.GateActive},
		{"approved user suspended church", worker, suspended, authz.GateSuspended},
		{"admin suspended church", admin, suspended, authz.GateSuspended},
		{"platform owner bypasses suspension", platformOwner, suspended, authz.GateActive},
		{"no church record", worker, nil, authz.GateActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.Gate(tt.user, tt.church))
		})
	}
}
