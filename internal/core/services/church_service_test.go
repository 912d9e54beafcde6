package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

type ChurchServiceTestSuite struct {
	suite.Suite
	store *snapshot.Store
	svc   portssvc.ChurchSvcFacade
	ctx   context.Context
}

func (s *ChurchServiceTestSuite) SetupTest() {
	s.store = newTestStore()
	s.svc = services.NewChurchService(s.store)
	s.ctx = context.Background()
}

func (s *ChurchServiceTestSuite) TestGetChurchByID() {
	church, err := s.svc.GetChurchByID(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Grace Fellowship Center", church.Name)

	_, err = s.svc.GetChurchByID(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ChurchServiceTestSuite) TestSetCurrencyRejectsUnsupportedCode() {
	_, err := s.svc.SetCurrency(s.ctx, "c1", domain.CurrencyCode("EUR"))
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ChurchServiceTestSuite) TestSetCurrencyUnknownChurch() {
	_, err := s.svc.SetCurrency(s.ctx, "nope", domain.CurrencyNGN)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ChurchServiceTestSuite) TestSetCurrencyRescalesLedger() {
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Income, Category: "Offering",
		Amount: decimal.RequireFromString("20.00"), Date: "2024-06-01",
	})

	church, err := s.svc.SetCurrency(s.ctx, "c1", domain.CurrencyNGN)
	s.Require().NoError(err)
	s.Equal(domain.CurrencyNGN, church.Currency)
	s.Equal("30000.00", s.store.ListTransactionsByChurch("c1")[0].Amount.StringFixed(2))
}

func (s *ChurchServiceTestSuite) TestSetCurrencySameCodeSucceedsUnchanged() {
	church, err := s.svc.SetCurrency(s.ctx, "c1", domain.CurrencyUSD)
	s.Require().NoError(err)
	s.Equal(domain.CurrencyUSD, church.Currency)
}

func (s *ChurchServiceTestSuite) TestSuspendAndActivate() {
	church, err := s.svc.SuspendChurch(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(domain.ChurchSuspended, church.Status)

	church, err = s.svc.ActivateChurch(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(domain.ChurchActive, church.Status)

	_, err = s.svc.SuspendChurch(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ChurchServiceTestSuite) TestPlatformOverview() {
	overview, err := s.svc.PlatformOverview(s.ctx)
	s.Require().NoError(err)

	// Seed data: two active churches, four tenant users (one pending); the
	// platform owner account is not counted.
	s.Equal(2, overview.TotalChurches)
	s.Equal(2, overview.ActiveChurches)
	s.Equal(4, overview.TotalUsers)
	s.Equal(1, overview.PendingApprovals)

	s.Require().Len(overview.Churches, 2)
	counts := map[string]int{}
	for _, c := range overview.Churches {
		counts[c.Church.ID] = c.UserCount
	}
	s.Equal(4, counts["c1"])
	s.Equal(0, counts["c2"])
}

func (s *ChurchServiceTestSuite) TestUpdateChurchRecomputesLocation() {
	city := "Abuja"
	state := "FCT"
	church, err := s.svc.UpdateChurch(s.ctx, "c1", dto.UpdateChurchRequest{City: &city, State: &state})
	s.Require().NoError(err)
	s.Equal("Abuja, FCT", church.Location)
}

func TestChurchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChurchServiceTestSuite))
}
