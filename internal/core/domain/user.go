package domain

// UserRole determines which views and operations a user may reach.
type UserRole string

const (
	RolePlatformOwner UserRole = "PLATFORM_OWNER"
	RoleChurchAdmin   UserRole = "CHURCH_ADMIN"
	RoleUnitHead      UserRole = "UNIT_HEAD"
	RoleWorker        UserRole = "WORKER"
)

// UserStatus tracks the approval lifecycle of a user account.
type UserStatus string

const (
	UserPending  UserStatus = "PENDING"
	UserApproved UserStatus = "APPROVED"
)

// PlatformChurchID is the sentinel churchId carried by platform-wide
// super-users instead of a real tenant id.
const PlatformChurchID = "all"

// User represents an account scoped to a church, or a platform-wide
// super-user when ChurchID is the PlatformChurchID sentinel.
type User struct {
	ID                  string     `json:"id"`
	ChurchID            string     `json:"churchId"`
	FullName            string     `json:"fullName"`
	Email               string     `json:"email"` // unique across the store, used as login key
	PasswordHash        string     `json:"passwordHash,omitempty"`
	Role                UserRole   `json:"role"`
	UnitID              string     `json:"unitId,omitempty"`
	Status              UserStatus `json:"status"`
	DateOfBirth         string     `json:"dateOfBirth,omitempty"`
	AnniversaryDate     string     `json:"anniversaryDate,omitempty"`
	HasAccountingAccess bool       `json:"hasAccountingAccess,omitempty"`
}

// UserUpdate carries a partial update of a User (shallow merge).
type UserUpdate struct {
	FullName        *string     `json:"fullName"`
	UnitID          *string     `json:"unitId"`
	Role            *UserRole   `json:"role"`
	Status          *UserStatus `json:"status"`
	DateOfBirth     *string     `json:"dateOfBirth"`
	AnniversaryDate *string     `json:"anniversaryDate"`
}
