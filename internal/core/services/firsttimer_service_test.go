package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) SuggestFollowUp(ctx context.Context, visitorName, notes string) (string, error) {
	args := m.Called(ctx, visitorName, notes)
	return args.String(0), args.Error(1)
}

type FirstTimerServiceTestSuite struct {
	suite.Suite
	store   *snapshot.Store
	advisor *MockAdvisor
	svc     portssvc.FirstTimerSvcFacade
	ctx     context.Context
}

func (s *FirstTimerServiceTestSuite) SetupTest() {
	s.store = newTestStore()
	s.advisor = new(MockAdvisor)
	s.svc = services.NewFirstTimerService(s.store, s.advisor)
	s.ctx = context.Background()
}

func (s *FirstTimerServiceTestSuite) TestCreateFirstTimerStartsAtNeedsFollowUp() {
	ft, err := s.svc.CreateFirstTimer(s.ctx, "c1", dto.CreateFirstTimerRequest{
		FullName:    "Grace Obi",
		Phone:       "+2348000000000",
		DateVisited: "2024-06-02",
		InvitedBy:   "Member Y",
	})

	s.Require().NoError(err)
	s.Equal(domain.FollowUpNeeded, ft.Status)
	s.Equal("c1", ft.ChurchID)
	s.Empty(ft.History)
}

func (s *FirstTimerServiceTestSuite) TestLogFollowUpStampsTodayAndActor() {
	ft, err := s.svc.LogFollowUp(s.ctx, "ft1", "Called and prayed together", "u2")

	s.Require().NoError(err)
	s.Require().Len(ft.History, 1)
	entry := ft.History[0]
	s.Equal("Called and prayed together", entry.Action)
	s.Equal("u2", entry.PerformedBy)
	s.Equal(time.Now().Format("2006-01-02"), entry.Date)
	s.NotEmpty(entry.ID)
}

func (s *FirstTimerServiceTestSuite) TestLogFollowUpUnknownVisitor() {
	_, err := s.svc.LogFollowUp(s.ctx, "nope", "Called", "u2")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *FirstTimerServiceTestSuite) TestSuggestFollowUp() {
	s.advisor.On("SuggestFollowUp", mock.Anything, "Alice Johnson", "Very interested in joining the choir.").
		Return("Invite her to the Thursday choir rehearsal.", nil).Once()

	suggestion, err := s.svc.SuggestFollowUp(s.ctx, "ft1")

	s.Require().NoError(err)
	s.Equal("Invite her to the Thursday choir rehearsal.", suggestion)
	s.advisor.AssertExpectations(s.T())
}

func (s *FirstTimerServiceTestSuite) TestSuggestFollowUpUnknownVisitor() {
	_, err := s.svc.SuggestFollowUp(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.advisor.AssertNotCalled(s.T(), "SuggestFollowUp")
}

func (s *FirstTimerServiceTestSuite) TestSuggestFollowUpWithoutAdvisorConfigured() {
	svc := services.NewFirstTimerService(s.store, nil)

	_, err := svc.SuggestFollowUp(s.ctx, "ft1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FirstTimerServiceTestSuite) TestSuggestFollowUpPropagatesAdvisorFailure() {
	advisorErr := errors.New("upstream timeout")
	s.advisor.On("SuggestFollowUp", mock.Anything, mock.Anything, mock.Anything).
		Return("", advisorErr).Once()

	_, err := s.svc.SuggestFollowUp(s.ctx, "ft1")
	s.ErrorIs(err, advisorErr)
}

func (s *FirstTimerServiceTestSuite) TestDeleteFirstTimer() {
	s.Require().NoError(s.svc.DeleteFirstTimer(s.ctx, "ft1"))
	s.ErrorIs(s.svc.DeleteFirstTimer(s.ctx, "ft1"), apperrors.ErrNotFound)
}

func TestFirstTimerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FirstTimerServiceTestSuite))
}
