package snapshot_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// stubPersister records Save calls so tests can assert which mutations
// actually reach persistence.
type stubPersister struct {
	loadSnap *domain.Snapshot
	loadErr  error
	saves    int
	last     *domain.Snapshot
}

func (p *stubPersister) Load(_ context.Context) (*domain.Snapshot, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.loadSnap, nil
}

func (p *stubPersister) Save(_ context.Context, snap *domain.Snapshot) error {
	p.saves++
	p.last = snap
	return nil
}

type StoreTestSuite struct {
	suite.Suite
	persister *stubPersister
	store     *snapshot.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.persister = &stubPersister{loadErr: apperrors.ErrNotFound}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.store = snapshot.New(context.Background(), s.persister, logger)
}

func (s *StoreTestSuite) TestNewSeedsAndPersistsWhenNothingStored() {
	snap := s.store.Snapshot()
	s.Require().NotNil(snap)
	s.Len(snap.Churches, 2)
	s.Equal("Grace Fellowship Center", snap.Churches[0].Name)
	s.Equal(1, s.persister.saves)
}

func (s *StoreTestSuite) TestNewUsesPersistedSnapshot() {
	persisted := &domain.Snapshot{
		Churches: []domain.Church{{ID: "x1", Name: "Stored Church"}},
	}
	persister := &stubPersister{loadSnap: persisted}
	store := snapshot.New(context.Background(), persister, slog.New(slog.NewTextHandler(io.Discard, nil)))

	snap := store.Snapshot()
	s.Require().Len(snap.Churches, 1)
	s.Equal("Stored Church", snap.Churches[0].Name)
	s.Equal(0, persister.saves)
}

func (s *StoreTestSuite) TestNewFallsBackToSeedOnLoadFailure() {
	persister := &stubPersister{loadErr: errors.New("disk unreadable")}
	store := snapshot.New(context.Background(), persister, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.Len(store.Snapshot().Churches, 2)
	s.Equal(0, persister.saves)
}

func (s *StoreTestSuite) TestListsAreScopedToChurch() {
	s.store.AddAttendance(domain.AttendanceRecord{ChurchID: "c2", Date: "2024-06-02", Male: 10, Female: 12, Children: 3})

	s.Len(s.store.ListAttendanceByChurch("c1"), 5)
	s.Len(s.store.ListAttendanceByChurch("c2"), 1)
	s.Empty(s.store.ListUsersByChurch("c2"))
	s.Empty(s.store.ListFirstTimersByChurch("c2"))
}

func (s *StoreTestSuite) TestAddAttendanceComputesTotalAndPrepends() {
	rec := s.store.AddAttendance(domain.AttendanceRecord{
		ChurchID: "c1", Date: "2024-06-02", Male: 200, Female: 180, Children: 95,
		// A lying total from the caller must be overwritten.
		Total: 1,
	})

	s.Equal(475, rec.Total)
	s.NotEmpty(rec.ID)

	list := s.store.ListAttendanceByChurch("c1")
	s.Require().Len(list, 6)
	s.Equal(rec.ID, list[0].ID)
}

func (s *StoreTestSuite) TestPropertyQuantityIsDerived() {
	prop := s.store.AddProperty(domain.Property{
		ChurchID: "c1", UnitID: "un1", Name: "Stage Lights",
		FunctionalQty: 4, MaintenanceQty: 1, DamagedQty: 2,
	})
	s.Equal(7, prop.Quantity)

	qty := 10
	updated := s.store.UpdateProperty(prop.ID, domain.PropertyUpdate{FunctionalQty: &qty})
	s.Require().NotNil(updated)
	s.Equal(13, updated.Quantity)
}

func (s *StoreTestSuite) TestSetChurchCurrencyRescalesOnlyThatChurch() {
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Income, Category: "Offering",
		Amount: decimal.RequireFromString("100.00"), Date: "2024-06-01",
	})
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c2", Type: domain.Income, Category: "Offering",
		Amount: decimal.RequireFromString("250.00"), Date: "2024-06-01",
	})
	s.store.AddBudget(domain.Budget{
		ChurchID: "c1", Category: "Outreach",
		AllocatedAmount: decimal.RequireFromString("500.00"),
		SpentAmount:     decimal.RequireFromString("120.50"),
		Period:          "Monthly - June 2024",
	})

	updated := s.store.SetChurchCurrency("c1", domain.CurrencyNGN)
	s.Require().NotNil(updated)
	s.Equal(domain.CurrencyNGN, updated.Currency)

	txs := s.store.ListTransactionsByChurch("c1")
	s.Require().Len(txs, 1)
	s.Equal("150000.00", txs[0].Amount.StringFixed(2))

	budgets := s.store.ListBudgetsByChurch("c1")
	s.Require().Len(budgets, 1)
	s.Equal("750000.00", budgets[0].AllocatedAmount.StringFixed(2))
	s.Equal("180750.00", budgets[0].SpentAmount.StringFixed(2))

	other := s.store.ListTransactionsByChurch("c2")
	s.Require().Len(other, 1)
	s.Equal("250.00", other[0].Amount.StringFixed(2))
	s.Equal(domain.CurrencyUSD, s.store.FindChurchByID("c2").Currency)
}

func (s *StoreTestSuite) TestSetChurchCurrencySameCurrencyIsANoOp() {
	before := s.store.Snapshot()
	saves := s.persister.saves

	updated := s.store.SetChurchCurrency("c1", domain.CurrencyUSD)
	s.Require().NotNil(updated)
	s.Equal(domain.CurrencyUSD, updated.Currency)

	s.Same(before, s.store.Snapshot())
	s.Equal(saves, s.persister.saves)
}

func (s *StoreTestSuite) TestSetChurchCurrencyUnknownChurch() {
	saves := s.persister.saves
	s.Nil(s.store.SetChurchCurrency("nope", domain.CurrencyNGN))
	s.Equal(saves, s.persister.saves)
}

func (s *StoreTestSuite) TestCurrencyRoundTripRestoresWholeAmounts() {
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Income, Category: "Offering",
		Amount: decimal.RequireFromString("100.00"), Date: "2024-06-01",
	})
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Expense, Category: "Outreach",
		Amount: decimal.RequireFromString("500.00"), Date: "2024-06-02",
	})

	s.store.SetChurchCurrency("c1", domain.CurrencyNGN)
	s.store.SetChurchCurrency("c1", domain.CurrencyUSD)

	txs := s.store.ListTransactionsByChurch("c1")
	s.Require().Len(txs, 2)
	s.Equal("500.00", txs[0].Amount.StringFixed(2))
	s.Equal("100.00", txs[1].Amount.StringFixed(2))
}

// Each amount is rounded to 2 decimal places on every conversion, so small
// amounts can collapse to zero and never come back. This pins that the loss
// is accepted behavior rather than accidentally "fixed" with deferred
// rounding.
func (s *StoreTestSuite) TestCurrencyRoundTripLosesSubCentAmounts() {
	s.store.SetChurchCurrency("c1", domain.CurrencyNGN)
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Income, Category: "Offering",
		Amount: decimal.RequireFromString("1.00"), Date: "2024-06-01",
	})

	s.store.SetChurchCurrency("c1", domain.CurrencyUSD)
	txs := s.store.ListTransactionsByChurch("c1")
	s.Require().Len(txs, 1)
	s.Equal("0.00", txs[0].Amount.StringFixed(2))

	s.store.SetChurchCurrency("c1", domain.CurrencyNGN)
	s.Equal("0.00", s.store.ListTransactionsByChurch("c1")[0].Amount.StringFixed(2))
}

func (s *StoreTestSuite) TestExpenseAccruesIntoMatchingBudgets() {
	s.store.AddBudget(domain.Budget{ChurchID: "c1", Category: "Outreach", AllocatedAmount: decimal.RequireFromString("500.00")})
	s.store.AddBudget(domain.Budget{ChurchID: "c1", Category: "Outreach", AllocatedAmount: decimal.RequireFromString("300.00")})
	s.store.AddBudget(domain.Budget{ChurchID: "c1", Category: "outreach", AllocatedAmount: decimal.RequireFromString("200.00")})
	s.store.AddBudget(domain.Budget{ChurchID: "c2", Category: "Outreach", AllocatedAmount: decimal.RequireFromString("400.00")})

	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Expense, Category: "Outreach",
		Amount: decimal.RequireFromString("40.00"), Date: "2024-06-03",
	})

	budgets := s.store.ListBudgetsByChurch("c1")
	s.Require().Len(budgets, 3)
	// Every byte-equal match accrues the full amount, no splitting.
	s.Equal("40.00", budgets[0].SpentAmount.StringFixed(2))
	s.Equal("40.00", budgets[1].SpentAmount.StringFixed(2))
	// Category matching is case-sensitive.
	s.Equal("0.00", budgets[2].SpentAmount.StringFixed(2))
	// Other tenants never accrue.
	s.Equal("0.00", s.store.ListBudgetsByChurch("c2")[0].SpentAmount.StringFixed(2))
}

func (s *StoreTestSuite) TestIncomeNeverAccruesIntoBudgets() {
	s.store.AddBudget(domain.Budget{ChurchID: "c1", Category: "Offering", AllocatedAmount: decimal.RequireFromString("500.00")})
	s.store.AddTransaction(domain.Transaction{
		ChurchID: "c1", Type: domain.Income, Category: "Offering",
		Amount: decimal.RequireFromString("75.00"), Date: "2024-06-03",
	})

	s.Equal("0.00", s.store.ListBudgetsByChurch("c1")[0].SpentAmount.StringFixed(2))
}

func (s *StoreTestSuite) TestTransactionsAreNewestFirst() {
	first := s.store.AddTransaction(domain.Transaction{ChurchID: "c1", Type: domain.Income, Category: "Offering", Amount: decimal.RequireFromString("10.00"), Date: "2024-06-01"})
	second := s.store.AddTransaction(domain.Transaction{ChurchID: "c1", Type: domain.Income, Category: "Offering", Amount: decimal.RequireFromString("20.00"), Date: "2024-06-02"})

	txs := s.store.ListTransactionsByChurch("c1")
	s.Require().Len(txs, 2)
	s.Equal(second.ID, txs[0].ID)
	s.Equal(first.ID, txs[1].ID)
}

func (s *StoreTestSuite) TestSumTransactionsByType() {
	s.store.AddTransaction(domain.Transaction{ChurchID: "c1", Type: domain.Income, Category: "Offering", Amount: decimal.RequireFromString("100.00"), Date: "2024-06-01"})
	s.store.AddTransaction(domain.Transaction{ChurchID: "c1", Type: domain.Income, Category: "Tithe", Amount: decimal.RequireFromString("55.25"), Date: "2024-06-02"})
	s.store.AddTransaction(domain.Transaction{ChurchID: "c1", Type: domain.Expense, Category: "Outreach", Amount: decimal.RequireFromString("30.00"), Date: "2024-06-03"})
	s.store.AddTransaction(domain.Transaction{ChurchID: "c2", Type: domain.Income, Category: "Offering", Amount: decimal.RequireFromString("999.00"), Date: "2024-06-03"})

	s.Equal("155.25", s.store.SumTransactionsByType("c1", domain.Income).StringFixed(2))
	s.Equal("30.00", s.store.SumTransactionsByType("c1", domain.Expense).StringFixed(2))
}

func (s *StoreTestSuite) TestApproveUserIsIdempotent() {
	approved := s.store.ApproveUser("u5")
	s.Require().NotNil(approved)
	s.Equal(domain.UserApproved, approved.Status)

	again := s.store.ApproveUser("u5")
	s.Require().NotNil(again)
	s.Equal(domain.UserApproved, again.Status)
}

func (s *StoreTestSuite) TestToggleAccountingAccessFlips() {
	on := s.store.ToggleAccountingAccess("u4")
	s.Require().NotNil(on)
	s.True(on.HasAccountingAccess)

	off := s.store.ToggleAccountingAccess("u4")
	s.Require().NotNil(off)
	s.False(off.HasAccountingAccess)
}

func (s *StoreTestSuite) TestUpdateMissesAreSilentNoOps() {
	saves := s.persister.saves
	name := "Ghost"

	s.Nil(s.store.UpdateUser("nope", domain.UserUpdate{FullName: &name}))
	s.Nil(s.store.UpdateChurch("nope", domain.ChurchUpdate{Name: &name}))
	s.Nil(s.store.ToggleAccountingAccess("nope"))
	s.Equal(saves, s.persister.saves)
}

func (s *StoreTestSuite) TestLoginMatchesEmailCaseInsensitively() {
	matched := s.store.Login("PASTOR@GRACE.COM")
	s.Require().NotNil(matched)
	s.Equal("u2", matched.ID)

	snap := s.store.Snapshot()
	s.Require().NotNil(snap.CurrentUser)
	s.Equal("u2", snap.CurrentUser.ID)
	s.Require().NotNil(snap.CurrentChurch)
	s.Equal("c1", snap.CurrentChurch.ID)
}

func (s *StoreTestSuite) TestLoginMissLeavesSessionUnchanged() {
	s.store.Login("pastor@grace.com")
	s.Nil(s.store.Login("ghost@nowhere.com"))

	snap := s.store.Snapshot()
	s.Require().NotNil(snap.CurrentUser)
	s.Equal("u2", snap.CurrentUser.ID)
}

func (s *StoreTestSuite) TestLogoutClearsSession() {
	s.store.Login("pastor@grace.com")
	s.store.Logout()

	snap := s.store.Snapshot()
	s.Nil(snap.CurrentUser)
	s.Nil(snap.CurrentChurch)
}

func (s *StoreTestSuite) TestMutationsRefreshSessionViews() {
	s.store.Login("pastor@grace.com")

	name := "Grace Fellowship Cathedral"
	s.store.UpdateChurch("c1", domain.ChurchUpdate{Name: &name})
	s.Equal(name, s.store.Snapshot().CurrentChurch.Name)

	s.store.DeleteUser("u2")
	s.Nil(s.store.Snapshot().CurrentUser)
}

func (s *StoreTestSuite) TestDeleteUserLeavesDanglingReferences() {
	s.store.DeleteUser("u4")

	s.Nil(s.store.FindUserByID("u4"))
	ft := s.store.FindFirstTimerByID("ft1")
	s.Require().NotNil(ft)
	s.Equal("u4", ft.AssignedTo)
	tasks := s.store.ListTasksByChurch("c1")
	s.Require().NotEmpty(tasks)
	s.Equal("u4", tasks[0].AssignedTo)
}

func (s *StoreTestSuite) TestTaskStatusTransitionsAreUnrestricted() {
	// t2 is seeded as Done; moving it back is allowed, the store does not
	// police the status lifecycle.
	status := domain.TaskInProgress
	updated := s.store.UpdateTask("t2", domain.ActionPlanUpdate{Status: &status})
	s.Require().NotNil(updated)
	s.Equal(domain.TaskInProgress, updated.Status)

	status = domain.TaskDone
	updated = s.store.UpdateTask("t2", domain.ActionPlanUpdate{Status: &status})
	s.Require().NotNil(updated)
	s.Equal(domain.TaskDone, updated.Status)
}

func (s *StoreTestSuite) TestAddChurchAppliesDefaults() {
	church := s.store.AddChurch(domain.Church{
		Name: "Hope Assembly", City: "Ibadan", State: "Oyo", Country: "Nigeria",
	})

	s.NotEmpty(church.ID)
	s.NotEmpty(church.CreatedAt)
	s.Equal("Ibadan, Oyo", church.Location)
	s.Equal(domain.CurrencyUSD, church.Currency)
	s.Equal(domain.ChurchActive, church.Status)
	s.Len(s.store.ListChurches(), 3)
}

func (s *StoreTestSuite) TestAppendFollowUpLog() {
	updated := s.store.AppendFollowUpLog("ft2", domain.FollowUpLog{
		Date: "2024-05-20", Action: "Visited at home", PerformedBy: "u3",
	})

	s.Require().NotNil(updated)
	s.Require().Len(updated.History, 2)
	s.Equal("Visited at home", updated.History[1].Action)
	s.NotEmpty(updated.History[1].ID)
}

func (s *StoreTestSuite) TestAddFirstTimerDefaultsAndPrepends() {
	ft := s.store.AddFirstTimer(domain.FirstTimer{
		ChurchID: "c1", FullName: "Grace Obi", Phone: "+2348000000000",
		DateVisited: "2024-06-02", InvitedBy: "u3",
	})

	s.Equal(domain.FollowUpNeeded, ft.Status)
	s.NotNil(ft.History)

	list := s.store.ListFirstTimersByChurch("c1")
	s.Require().Len(list, 3)
	s.Equal(ft.ID, list[0].ID)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
