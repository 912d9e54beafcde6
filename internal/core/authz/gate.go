package authz

import "github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"

// GateState is the session gate evaluated before any tenant page renders.
type GateState string

const (
	GateNoSession       GateState = "NO_SESSION"
	GatePendingApproval GateState = "PENDING_APPROVAL"
	GateSuspended       GateState = "SUSPENDED"
	GateActive          GateState = "ACTIVE"
)

// Gate classifies a session. Pending users are blocked until approved;
// members of a suspended church are blocked unless they are the platform
// owner. Transitions happen only through mutations of the user or church
// record; there is no timeout.
func Gate(user *domain.User, church *domain.Church) GateState {
	if user == nil {
		return GateNoSession
	}
	if user.Status == domain.UserPending {
		return GatePendingApproval
	}
	if church != nil && church.Status == domain.ChurchSuspended && user.Role != domain.RolePlatformOwner {
		return GateSuspended
	}
	return GateActive
}
