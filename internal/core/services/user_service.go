package services

import (
	"context"
	"log/slog"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/ecclesia-hq/ecclesia_backend/internal/utils"
)

// userService implements UserSvcFacade over the tenant store.
type userService struct {
	BaseService
	store portsrepo.TenantStoreFacade
}

// NewUserService creates a new user service backed by the tenant store.
func NewUserService(store portsrepo.TenantStoreFacade) portssvc.UserSvcFacade {
	return &userService{store: store}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user := s.store.FindUserByID(userID)
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := s.store.FindUserByEmail(email)
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) ListUsersByChurch(ctx context.Context, churchID string) ([]domain.User, error) {
	return s.store.ListUsersByChurch(churchID), nil
}

// RegisterChurch creates the tenant and its founding admin in one step. The
// admin account is approved immediately and the church's AdminID points back
// at it.
func (s *userService) RegisterChurch(ctx context.Context, req dto.RegisterChurchRequest) (*domain.User, *domain.Church, error) {
	if existing := s.store.FindUserByEmail(req.Email); existing != nil {
		return nil, nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during church registration")
		return nil, nil, err
	}

	church := s.store.AddChurch(domain.Church{
		Name:    req.ChurchName,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Phone:   req.Phone,
	})

	admin := s.store.RegisterUser(domain.User{
		ChurchID:     church.ID,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleChurchAdmin,
		Status:       domain.UserApproved,
	})

	updated := s.store.UpdateChurch(church.ID, domain.ChurchUpdate{AdminID: &admin.ID})
	if updated != nil {
		church = *updated
	}

	s.store.Login(admin.Email)

	s.LogInfo(ctx, "Church registered",
		slog.String("church_id", church.ID),
		slog.String("admin_id", admin.ID))
	return &admin, &church, nil
}

// JoinChurch registers a worker against an existing church via its join link.
// The account stays PENDING until a church admin approves it.
func (s *userService) JoinChurch(ctx context.Context, req dto.JoinChurchRequest) (*domain.User, error) {
	if existing := s.store.FindUserByEmail(req.Email); existing != nil {
		return nil, apperrors.ErrDuplicate
	}
	church := s.store.FindChurchByID(req.ChurchID)
	if church == nil {
		return nil, apperrors.ErrNotFound
	}
	if church.Status == domain.ChurchSuspended {
		return nil, apperrors.ErrChurchSuspended
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during join registration")
		return nil, err
	}

	user := s.store.RegisterUser(domain.User{
		ChurchID:     church.ID,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleWorker,
		UnitID:       req.UnitID,
		Status:       domain.UserPending,
	})

	s.LogInfo(ctx, "Worker registration pending approval",
		slog.String("church_id", church.ID),
		slog.String("user_id", user.ID))
	return &user, nil
}

// CreateOAuthUser finds or provisions an account for a verified external
// identity. New accounts have no church yet and stay PENDING until they join
// one and get approved.
func (s *userService) CreateOAuthUser(ctx context.Context, fullName, email string) (*domain.User, error) {
	if existing := s.store.FindUserByEmail(email); existing != nil {
		return existing, nil
	}

	user := s.store.RegisterUser(domain.User{
		FullName: fullName,
		Email:    email,
		Role:     domain.RoleWorker,
		Status:   domain.UserPending,
	})

	s.LogInfo(ctx, "OAuth user provisioned", slog.String("user_id", user.ID))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user := s.store.UpdateUser(userID, req.ToDomainUserUpdate())
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) ApproveUser(ctx context.Context, userID string) (*domain.User, error) {
	user := s.store.ApproveUser(userID)
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "User approved", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) ToggleAccountingAccess(ctx context.Context, userID string) (*domain.User, error) {
	user := s.store.ToggleAccountingAccess(userID)
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Accounting access toggled",
		slog.String("user_id", userID),
		slog.Bool("has_access", user.HasAccountingAccess))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if s.store.FindUserByID(userID) == nil {
		return apperrors.ErrNotFound
	}
	s.store.DeleteUser(userID)
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies credentials and refuses accounts that would fail
// the session gate: PENDING accounts and members of suspended churches never
// get a token. The platform owner bypasses the suspension check.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user := s.store.FindUserByEmail(email)
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if user.Status == domain.UserPending {
		return nil, apperrors.ErrPendingApproval
	}
	if user.Role != domain.RolePlatformOwner {
		church := s.store.FindChurchByID(user.ChurchID)
		if church != nil && church.Status == domain.ChurchSuspended {
			return nil, apperrors.ErrChurchSuspended
		}
	}

	s.store.Login(user.Email)
	return user, nil
}

func (s *userService) Logout(ctx context.Context) error {
	s.store.Logout()
	return nil
}
