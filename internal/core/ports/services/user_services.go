package services

import (
	"context"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByChurch retrieves every account of one church.
	ListUsersByChurch(ctx context.Context, churchID string) ([]domain.User, error)
}

// UserRegistrationSvc defines the two sign-up paths plus OAuth provisioning.
type UserRegistrationSvc interface {
	// RegisterChurch creates a new tenant together with its founding admin.
	// The admin is APPROVED immediately and becomes the church's AdminID.
	RegisterChurch(ctx context.Context, req dto.RegisterChurchRequest) (*domain.User, *domain.Church, error)

	// JoinChurch registers a worker against an existing church via its join
	// link. The account starts PENDING.
	JoinChurch(ctx context.Context, req dto.JoinChurchRequest) (*domain.User, error)

	// CreateOAuthUser finds or provisions an account for a verified external
	// identity. New accounts land PENDING with no church until they join one.
	CreateOAuthUser(ctx context.Context, fullName, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// UpdateUser applies a partial update to a user's profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ApproveUser moves a pending account to APPROVED; idempotent.
	ApproveUser(ctx context.Context, userID string) (*domain.User, error)

	// ToggleAccountingAccess flips a worker's bookkeeping visibility.
	ToggleAccountingAccess(ctx context.Context, userID string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for removing accounts.
type UserLifecycleSvc interface {
	// DeleteUser removes the account. References from other records are left
	// dangling on purpose.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies credentials and the account's gate state:
	// PENDING accounts and members of suspended churches are refused before
	// a session is established. The platform owner bypasses suspension.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// Logout clears the store's persisted session.
	Logout(ctx context.Context) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserRegistrationSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
