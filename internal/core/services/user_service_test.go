package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// memPersister keeps the snapshot in memory so service tests run against a
// real store without touching disk.
type memPersister struct {
	snap *domain.Snapshot
}

func (p *memPersister) Load(_ context.Context) (*domain.Snapshot, error) {
	if p.snap == nil {
		return nil, apperrors.ErrNotFound
	}
	return p.snap, nil
}

func (p *memPersister) Save(_ context.Context, snap *domain.Snapshot) error {
	p.snap = snap
	return nil
}

// newTestStore builds a seeded store for service tests.
func newTestStore() *snapshot.Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return snapshot.New(context.Background(), &memPersister{}, logger)
}

type UserServiceTestSuite struct {
	suite.Suite
	store *snapshot.Store
	svc   portssvc.UserSvcFacade
	ctx   context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.store = newTestStore()
	s.svc = services.NewUserService(s.store)
	s.ctx = context.Background()
}

func registerReq() dto.RegisterChurchRequest {
	return dto.RegisterChurchRequest{
		ChurchName: "Hope Assembly",
		City:       "Ibadan",
		State:      "Oyo",
		Country:    "Nigeria",
		Phone:      "+234 111 222 3333",
		FullName:   "Pastor Femi",
		Email:      "femi@hope.org",
		Password:   "supersecret",
	}
}

func (s *UserServiceTestSuite) TestRegisterChurchCreatesApprovedAdmin() {
	admin, church, err := s.svc.RegisterChurch(s.ctx, registerReq())

	s.Require().NoError(err)
	s.Equal(domain.RoleChurchAdmin, admin.Role)
	s.Equal(domain.UserApproved, admin.Status)
	s.Equal(church.ID, admin.ChurchID)
	s.Equal(admin.ID, church.AdminID)
	s.NotEqual("supersecret", admin.PasswordHash)

	snap := s.store.Snapshot()
	s.Require().NotNil(snap.CurrentUser)
	s.Equal(admin.ID, snap.CurrentUser.ID)
}

func (s *UserServiceTestSuite) TestRegisterChurchRejectsDuplicateEmail() {
	req := registerReq()
	req.Email = "pastor@grace.com" // already seeded

	_, _, err := s.svc.RegisterChurch(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestJoinChurchCreatesPendingWorker() {
	user, err := s.svc.JoinChurch(s.ctx, dto.JoinChurchRequest{
		ChurchID: "c1",
		FullName: "Tola Ade",
		Email:    "tola@grace.com",
		Password: "supersecret",
		UnitID:   "un2",
	})

	s.Require().NoError(err)
	s.Equal(domain.RoleWorker, user.Role)
	s.Equal(domain.UserPending, user.Status)
	s.Equal("un2", user.UnitID)
	s.Equal("c1", user.ChurchID)
}

func (s *UserServiceTestSuite) TestJoinChurchUnknownChurch() {
	_, err := s.svc.JoinChurch(s.ctx, dto.JoinChurchRequest{
		ChurchID: "nope", FullName: "X", Email: "x@y.com", Password: "supersecret",
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestJoinChurchSuspendedChurch() {
	status := domain.ChurchSuspended
	s.store.UpdateChurch("c1", domain.ChurchUpdate{Status: &status})

	_, err := s.svc.JoinChurch(s.ctx, dto.JoinChurchRequest{
		ChurchID: "c1", FullName: "X", Email: "x@y.com", Password: "supersecret",
	})
	s.ErrorIs(err, apperrors.ErrChurchSuspended)
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	admin, _, err := s.svc.RegisterChurch(s.ctx, registerReq())
	s.Require().NoError(err)

	got, err := s.svc.AuthenticateUser(s.ctx, "femi@hope.org", "supersecret")
	s.Require().NoError(err)
	s.Equal(admin.ID, got.ID)
}

func (s *UserServiceTestSuite) TestAuthenticateUserWrongPassword() {
	_, _, err := s.svc.RegisterChurch(s.ctx, registerReq())
	s.Require().NoError(err)

	_, err = s.svc.AuthenticateUser(s.ctx, "femi@hope.org", "wrongpassword")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUnknownEmail() {
	_, err := s.svc.AuthenticateUser(s.ctx, "ghost@nowhere.com", "whatever")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticatePendingUserBlocked() {
	_, err := s.svc.JoinChurch(s.ctx, dto.JoinChurchRequest{
		ChurchID: "c1", FullName: "Tola Ade", Email: "tola@grace.com", Password: "supersecret",
	})
	s.Require().NoError(err)

	_, err = s.svc.AuthenticateUser(s.ctx, "tola@grace.com", "supersecret")
	s.ErrorIs(err, apperrors.ErrPendingApproval)
}

func (s *UserServiceTestSuite) TestAuthenticateSuspendedChurchBlocked() {
	_, church, err := s.svc.RegisterChurch(s.ctx, registerReq())
	s.Require().NoError(err)

	status := domain.ChurchSuspended
	s.store.UpdateChurch(church.ID, domain.ChurchUpdate{Status: &status})

	_, err = s.svc.AuthenticateUser(s.ctx, "femi@hope.org", "supersecret")
	s.ErrorIs(err, apperrors.ErrChurchSuspended)
}

func (s *UserServiceTestSuite) TestCreateOAuthUserProvisionsChurchlessPending() {
	user, err := s.svc.CreateOAuthUser(s.ctx, "G User", "guser@gmail.com")

	s.Require().NoError(err)
	s.Empty(user.ChurchID)
	s.Equal(domain.RoleWorker, user.Role)
	s.Equal(domain.UserPending, user.Status)
}

func (s *UserServiceTestSuite) TestCreateOAuthUserReturnsExistingAccount() {
	user, err := s.svc.CreateOAuthUser(s.ctx, "whatever", "pastor@grace.com")

	s.Require().NoError(err)
	s.Equal("u2", user.ID)
}

func (s *UserServiceTestSuite) TestDeleteUserNotFound() {
	s.ErrorIs(s.svc.DeleteUser(s.ctx, "nope"), apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestApproveUser() {
	user, err := s.svc.ApproveUser(s.ctx, "u5")
	s.Require().NoError(err)
	s.Equal(domain.UserApproved, user.Status)

	_, err = s.svc.ApproveUser(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
