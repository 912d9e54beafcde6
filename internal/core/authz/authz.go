// Package authz centralizes the role-based visibility rules that the
// presentation layer applies on every read. The tenant store itself performs
// no authorization: any caller holding the store can mutate any tenant's
// data, and these predicates are the trust boundary in front of it.
package authz

import "github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"

// SameTenant is the first filter on every list view: an entity is only
// visible inside its own church. The platform owner sees across tenants
// through dedicated aggregate views, not through this check.
func SameTenant(user *domain.User, churchID string) bool {
	if user == nil {
		return false
	}
	return user.ChurchID == churchID
}

// CanAccessChurch reports whether the user may read a tenant's pages at all.
func CanAccessChurch(user *domain.User, churchID string) bool {
	if user == nil {
		return false
	}
	if user.Role == domain.RolePlatformOwner {
		return true
	}
	return user.ChurchID == churchID
}

// CanViewAnnouncement: global announcements are visible to the whole church,
// unit announcements only to members of that unit, and church admins see
// everything in their church.
func CanViewAnnouncement(user *domain.User, ann domain.Announcement) bool {
	if !SameTenant(user, ann.ChurchID) {
		return false
	}
	if user.Role == domain.RoleChurchAdmin {
		return true
	}
	return ann.UnitID == "" || ann.UnitID == user.UnitID
}

// CanViewTask restricts unit heads to their own unit's action plans.
func CanViewTask(user *domain.User, task domain.ActionPlan) bool {
	if !SameTenant(user, task.ChurchID) {
		return false
	}
	if user.Role == domain.RoleUnitHead {
		return task.UnitID == user.UnitID
	}
	return true
}

// CanViewProperty restricts unit heads to their own unit's inventory.
func CanViewProperty(user *domain.User, prop domain.Property) bool {
	if !SameTenant(user, prop.ChurchID) {
		return false
	}
	if user.Role == domain.RoleUnitHead {
		return prop.UnitID == user.UnitID
	}
	return true
}

// CanViewFirstTimer applies plain tenant scoping; visitor records are not
// unit-partitioned.
func CanViewFirstTimer(user *domain.User, ft domain.FirstTimer) bool {
	return SameTenant(user, ft.ChurchID)
}

// CanAccessAccounting: church admins always; workers only when the admin has
// toggled accounting access for them.
func CanAccessAccounting(user *domain.User) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case domain.RoleChurchAdmin:
		return true
	case domain.RoleWorker:
		return user.HasAccountingAccess
	default:
		return false
	}
}

// IsChurchAdmin reports whether the user administers the given church.
func IsChurchAdmin(user *domain.User, churchID string) bool {
	if user == nil {
		return false
	}
	return user.Role == domain.RoleChurchAdmin && user.ChurchID == churchID
}

// IsPlatformOwner reports whether the user is the platform-wide super-user.
func IsPlatformOwner(user *domain.User) bool {
	return user != nil && user.Role == domain.RolePlatformOwner
}
